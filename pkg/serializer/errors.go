package serializer

import "fmt"

// DecodeError reports malformed wire data or a tag/type mismatch.
type DecodeError struct {
	Tag    string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("serializer: decode %s: %s", e.Tag, e.Reason)
	}
	return fmt.Sprintf("serializer: decode: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }
