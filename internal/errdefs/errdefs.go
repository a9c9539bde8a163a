package errdefs

import "errors"

type ErrorType int

const (
	ErrTypeHomeDirectory ErrorType = iota
	ErrTypeElevationUnavailable
	ErrTypeInstallerFailed
	ErrTypeGeneric
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeHomeDirectory:
		return "home-directory"
	case ErrTypeElevationUnavailable:
		return "elevation-unavailable"
	case ErrTypeInstallerFailed:
		return "installer-failed"
	default:
		return "generic"
	}
}

type CustomError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// Wrap attaches a type and message to an underlying error.
func Wrap(errType ErrorType, message string, err error) error {
	return &CustomError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err is, or wraps, a CustomError of the given type.
func IsType(err error, errType ErrorType) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Type == errType
}
