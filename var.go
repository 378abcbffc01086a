package envgroup

import (
	"fmt"
	"strconv"
	"time"
)

// LookupFunc is the environment collaborator: it returns the value for a key
// and whether the key is set. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Var is one declared environment variable: an immutable (group, member)
// pair bound to its canonical key. Vars are created by New and never mutated.
type Var struct {
	group  string
	member string
	key    string
	lookup LookupFunc
}

// Group returns the identifier of the group this variable was declared in.
func (v Var) Group() string { return v.group }

// Member returns the member identifier this variable was declared with.
func (v Var) Member() string { return v.member }

// Key returns the canonical environment-variable name. It is computed once
// at declaration time and stable across calls.
func (v Var) Key() string { return v.key }

// String returns the canonical key.
func (v Var) String() string { return v.key }

// Lookup reads the environment once and returns the raw value and whether
// the key is set. Values are never cached; repeated calls observe the
// current process environment.
func (v Var) Lookup() (string, bool) {
	return v.lookup(v.key)
}

// Require returns the raw value or panics with "No <key> in .env file".
// Prefer Lookup; Require is the explicit fail-fast form for application
// edges.
func (v Var) Require() string {
	value, ok := v.Lookup()
	if !ok {
		panic((&AbsentError{Key: v.key}).Error())
	}
	return value
}

// Cast reads the variable and parses it as T. The result is present, absent,
// or a cast failure; it is never a mix. Supported targets are string, bool,
// the integer and float kinds below, and time.Duration.
//
// Cast is a package-level function because Go methods cannot introduce type
// parameters.
func Cast[T Castable](v Var) Result[T] {
	raw, ok := v.Lookup()
	if !ok {
		return errResult[T](&AbsentError{Key: v.key})
	}

	parsed, err := parseAs[T](raw)
	if err != nil {
		var zero T
		return errResult[T](&CastError{Key: v.key, TypeName: fmt.Sprintf("%T", zero)})
	}
	return presentResult(parsed)
}

// MustCast parses the variable as T or panics with the absent or cast-failure
// message.
func MustCast[T Castable](v Var) T {
	return Cast[T](v).Must()
}

// Castable enumerates the types Cast can parse from an environment value.
type Castable interface {
	string | bool | int | int64 | uint | uint64 | float64 | time.Duration
}

// parseAs applies T's standard textual parse rule to raw.
func parseAs[T Castable](raw string) (T, error) {
	var zero T
	switch out := any(&zero).(type) {
	case *string:
		*out = raw
	case *bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return zero, err
		}
		*out = parsed
	case *int:
		parsed, err := strconv.ParseInt(raw, 10, 0)
		if err != nil {
			return zero, err
		}
		*out = int(parsed)
	case *int64:
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return zero, err
		}
		*out = parsed
	case *uint:
		parsed, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return zero, err
		}
		*out = uint(parsed)
	case *uint64:
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return zero, err
		}
		*out = parsed
	case *float64:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return zero, err
		}
		*out = parsed
	case *time.Duration:
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return zero, err
		}
		*out = parsed
	default:
		return zero, fmt.Errorf("unsupported cast target %T", zero)
	}
	return zero, nil
}
