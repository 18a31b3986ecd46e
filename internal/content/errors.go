package content

import "fmt"

// MalformedContentError reports a missing or wrongly shaped field while
// parsing a container document.
type MalformedContentError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *MalformedContentError) Error() string {
	return fmt.Sprintf("malformed %s container: field %q: %s", e.Kind, e.Field, e.Reason)
}

// UnknownKindError reports a kind value outside the closed variant set.
type UnknownKindError struct {
	Value string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown container kind %q", e.Value)
}

// InvalidMutationError reports a mutation the current container state cannot
// accept, such as an out-of-range option index or removing a word when no
// gaps are filled. Containers leave their state untouched when returning it.
type InvalidMutationError struct {
	Op     string
	Detail string
}

func (e *InvalidMutationError) Error() string {
	return fmt.Sprintf("invalid mutation %s: %s", e.Op, e.Detail)
}

func invalidIndex(op string, index, size int) *InvalidMutationError {
	return &InvalidMutationError{
		Op:     op,
		Detail: fmt.Sprintf("index %d out of range [0,%d)", index, size),
	}
}
