package envgroup

import "fmt"

// InvalidIdentifierError reports an identifier that produced no words
// (empty, or whitespace and underscores only).
type InvalidIdentifierError struct {
	Identifier string
}

// Error formats the invalid identifier message.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("envgroup: invalid identifier %q: no words after trimming", e.Identifier)
}

// AbsentError reports a key with no value in the process environment.
// Its message is the exact text Require and MustCast panic with.
type AbsentError struct {
	Key string
}

func (e *AbsentError) Error() string {
	return fmt.Sprintf("No %s in .env file", e.Key)
}

// CastError reports a present value that failed to parse as the requested
// type. Its message is the exact text MustCast panics with.
type CastError struct {
	Key      string
	TypeName string // Go name of the target type (e.g. "int", "time.Duration")
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Cannot cast %s into %s", e.Key, e.TypeName)
}
