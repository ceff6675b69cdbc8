package client

import (
	"errors"
	"fmt"
	"strings"
)

// Kind sentinels for errors.Is. The classified business kinds wrap
// ErrAPIResponse, so errors.Is(err, ErrAPIResponse) matches any upstream
// business failure regardless of classification.
var (
	ErrNetwork     = errors.New("exchanger: network error")
	ErrAPIResponse = errors.New("exchanger: api error")

	ErrDirectionNotFound  = fmt.Errorf("%w: direction not found", ErrAPIResponse)
	ErrBidNotFound        = fmt.Errorf("%w: bid not found", ErrAPIResponse)
	ErrMethodNotSupported = fmt.Errorf("%w: method not supported", ErrAPIResponse)

	ErrValidation          = errors.New("exchanger: validation error")
	ErrPaymentNotAvailable = errors.New("exchanger: payment not available via api")
	ErrCancelNotAvailable  = errors.New("exchanger: cancel not available via api")
)

// Error is the failure type every operation returns. Kind is reachable via
// errors.Is/Unwrap; Code carries the upstream error code when one was
// reported.
type Error struct {
	kind    error
	Message string
	Code    string
	Method  string
}

func (e *Error) Error() string {
	if e.Method != "" {
		return e.Method + ": " + e.Message
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.kind
}

func newError(kind error, method, code, format string, args ...any) *Error {
	return &Error{
		kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Code:    code,
		Method:  method,
	}
}

// errorPatterns maps fragments of the upstream error_text to error kinds.
// Matched in order against the lower-cased text, first match wins; new
// upstream phrases are added here, nowhere else.
var errorPatterns = []struct {
	fragment string
	kind     error
	message  string
}{
	{"direction not found", ErrDirectionNotFound, "direction not found or not permitted for API use; check the direction's API restrictions"},
	{"method not supported", ErrMethodNotSupported, "method is not enabled for this API key"},
	{"no bid exists", ErrBidNotFound, "bid not found"},
	{"api disabled", ErrAPIResponse, "API is disabled; check the API module settings and credentials"},
}

// classifyAPIError turns a non-zero upstream error code plus its free-text
// description into the most specific error kind available. Unmatched text
// still yields a usable generic error carrying the raw text and code.
func classifyAPIError(method, code, errorText string) *Error {
	text := strings.TrimSpace(errorText)
	lower := strings.ToLower(text)
	for _, p := range errorPatterns {
		if strings.Contains(lower, p.fragment) {
			return newError(p.kind, method, code, "%s", p.message)
		}
	}
	if text == "" {
		return newError(ErrAPIResponse, method, code, "unknown error (code=%s)", code)
	}
	return newError(ErrAPIResponse, method, code, "%s", text)
}
