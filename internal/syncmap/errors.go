package syncmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat reports an absent or unrecognized sync map
	// format, or a codec that lacks the requested capability.
	ErrInvalidFormat = errors.New("invalid sync map format")

	// ErrInvalidFragment reports a nil or malformed fragment passed
	// to AddFragment.
	ErrInvalidFragment = errors.New("invalid sync map fragment")

	// ErrUnreadablePath reports an input path that does not exist or
	// cannot be read.
	ErrUnreadablePath = errors.New("path cannot be read")

	// ErrUnwritablePath reports an output path that cannot be
	// written.
	ErrUnwritablePath = errors.New("path cannot be written")
)

// MissingParameterError is returned by codec constructors when a
// required configuration value is absent. It propagates unchanged
// through Read and Write.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("required parameter %q is missing", e.Param)
}
