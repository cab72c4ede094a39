package constants

import "net/http"

// CodedError carries the HTTP status the API error handler should respond
// with. Services wrap these with fmt.Errorf("...: %w", err) so the code
// survives up the call chain.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrMalformedInput     = NewCodedError(http.StatusBadRequest, "malformed input record")
	ErrBadRequest         = NewCodedError(http.StatusBadRequest, "bad request")
	ErrUnknownRegion      = NewCodedError(http.StatusNotFound, "unknown region code")
	ErrSnapshotNotLoaded  = NewCodedError(http.StatusServiceUnavailable, "data snapshot is not loaded")
	ErrResourceNotFound   = NewCodedError(http.StatusNotFound, "dataset resource not found")
	ErrResourceUnreadable = NewCodedError(http.StatusBadGateway, "dataset resource could not be read")
)
