package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		stdout, _, err := execute(t, "run", "-X", "GET", "list")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stdout, "HTTP/1.1 200 OK\r\n"))
		require.Contains(t, stdout, "Server: indigo\r\n")
		require.True(t, strings.HasSuffix(stdout, "\r\n\r\nalice\nbob\ncarol"))
	})

	t.Run("forward", func(t *testing.T) {
		stdout, _, err := execute(t, "run", "-X", "GET", "index")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(stdout, "alice\nbob\ncarol"))
	})

	t.Run("json response", func(t *testing.T) {
		stdout, _, err := execute(t, "run", "-X", "GET", "show", "2")
		require.NoError(t, err)
		require.Contains(t, stdout, "Content-Type: application/json\r\n")
		require.True(t, strings.HasSuffix(stdout, `{"id":2,"name":"bob"}`))
	})

	t.Run("not found", func(t *testing.T) {
		stdout, _, err := execute(t, "run", "-X", "GET", "show", "42")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stdout, "HTTP/1.1 404 Not Found\r\n"))
		require.True(t, strings.HasSuffix(stdout, "404 Not Found: not found"))
	})

	t.Run("missing action", func(t *testing.T) {
		stdout, _, err := execute(t, "run", "-X", "GET", "delete")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stdout, "HTTP/1.1 404 Not Found\r\n"))
	})

	t.Run("crash", func(t *testing.T) {
		stdout, _, err := execute(t, "run", "-X", "GET", "crash")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stdout, "HTTP/1.1 500 Internal Server Error\r\n"))
	})

	t.Run("head", func(t *testing.T) {
		stdout, _, err := execute(t, "run", "-X", "HEAD", "list")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(stdout, "\r\n\r\n"))
		require.Contains(t, stdout, "Content-Length: 15\r\n")
	})

	t.Run("unknown method", func(t *testing.T) {
		_, _, err := execute(t, "run", "-X", "BREW", "list")
		require.Error(t, err)
	})

	t.Run("templates", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "users"), 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "users", "greet.tpl"), []byte("Hello, {{ name }}!"), 0o644,
		))
		cfgPath := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("templates:\n  dir: "+dir+"\n"), 0o644))

		stdout, _, err := execute(t, "run", "--config", cfgPath, "-X", "GET", "greet", "gopher")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(stdout, "Hello, gopher!"))
	})

	t.Run("metrics", func(t *testing.T) {
		_, stderr, err := execute(t, "run", "--config", "", "-X", "GET", "--metrics", "list")
		require.NoError(t, err)
		require.Contains(t, stderr, "controller_dispatch_total{action=list,controller=users,outcome=body} 1")
	})
}

func TestActions(t *testing.T) {
	stdout, _, err := execute(t, "actions")
	require.NoError(t, err)
	require.Equal(t, "crash\ngreet\nindex\nlist\nshow\n", stdout)
}
