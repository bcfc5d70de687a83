package action

import (
	"fmt"
	"strconv"
)

// Args is the ordered list of positional arguments an action is invoked with. Accessors never
// panic on out-of-range indexes or mismatching types.
type Args []any

// ArgsOf is a shorthand for Args{...}.
func ArgsOf(values ...any) Args {
	return values
}

func (a Args) Len() int {
	return len(a)
}

// At returns the argument by its position.
func (a Args) At(i int) (any, bool) {
	if i < 0 || i >= len(a) {
		return nil, false
	}

	return a[i], true
}

// String returns the argument as a string. Strings, byte slices and fmt.Stringer
// implementations are accepted.
func (a Args) String(i int) (string, bool) {
	v, ok := a.At(i)
	if !ok {
		return "", false
	}

	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

// Int returns the argument as an int. Integers are converted, strings are parsed.
func (a Args) Int(i int) (int, bool) {
	v, ok := a.At(i)
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case uint:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		return parsed, err == nil
	default:
		return 0, false
	}
}
