package opentdb

import (
	"errors"
	"fmt"
)

// Kind classifies an error returned by the Open Trivia Database client
type Kind string

const (
	// KindNone indicates no classified error
	KindNone Kind = ""

	// KindNoResults indicates the service could not satisfy the query (response code 1)
	KindNoResults Kind = "NO_RESULTS"

	// KindInvalidParameter indicates the request carried an invalid parameter (response code 2)
	KindInvalidParameter Kind = "INVALID_PARAMETER"

	// KindTokenNotFound indicates the session token is unknown to the service (response code 3)
	KindTokenNotFound Kind = "TOKEN_NOT_FOUND"

	// KindTokenEmpty indicates the session token has served every question for the query (response code 4)
	KindTokenEmpty Kind = "TOKEN_EMPTY"

	// KindUnexpectedResponseCode indicates a response code outside 0-4
	KindUnexpectedResponseCode Kind = "UNEXPECTED_RESPONSE_CODE"

	// KindHTTP indicates a non-2xx HTTP status
	KindHTTP Kind = "HTTP_ERROR"

	// KindParse indicates a response body that could not be decoded
	KindParse Kind = "PARSE_ERROR"
)

// Error is a classified failure reported by the transport. Code mirrors the
// service response code, or the HTTP status for KindHTTP.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[Code %d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[Code %d] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so the sentinels
// below match any error of their kind regardless of code or message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is. Code and Message are the defaults used when the
// service reports the matching response code.
var (
	ErrNoResults = &Error{
		Kind:    KindNoResults,
		Code:    1,
		Message: "Could not return results. The API doesn't have enough questions for your query.",
	}
	ErrInvalidParameter = &Error{
		Kind:    KindInvalidParameter,
		Code:    2,
		Message: "Contains an invalid parameter. Arguments passed in aren't valid.",
	}
	ErrTokenNotFound = &Error{
		Kind:    KindTokenNotFound,
		Code:    3,
		Message: "Session Token does not exist.",
	}
	ErrTokenEmpty = &Error{
		Kind:    KindTokenEmpty,
		Code:    4,
		Message: "Session Token has returned all possible questions for the specified query. Resetting the Token is necessary.",
	}
	ErrUnexpectedResponseCode = &Error{
		Kind:    KindUnexpectedResponseCode,
		Message: "Unexpected response code.",
	}
	ErrHTTP  = &Error{Kind: KindHTTP, Message: "HTTP request failed."}
	ErrParse = &Error{Kind: KindParse, Message: "Could not parse response."}
)

// ErrInvalidArgument is matched by every ArgumentError
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a GetQuestions argument rejected before any request is made
type ArgumentError struct {
	Argument string
	Value    any
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Argument, e.Value, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// errorForResponseCode maps a non-zero service response code to its error
func errorForResponseCode(code int) error {
	switch code {
	case 1:
		return newError(ErrNoResults)
	case 2:
		return newError(ErrInvalidParameter)
	case 3:
		return newError(ErrTokenNotFound)
	case 4:
		return newError(ErrTokenEmpty)
	default:
		return &Error{
			Kind:    KindUnexpectedResponseCode,
			Code:    code,
			Message: fmt.Sprintf("Unexpected response code %d.", code),
		}
	}
}

// newError copies a sentinel so callers can't mutate the shared value
func newError(sentinel *Error) *Error {
	e := *sentinel
	return &e
}

func newHTTPError(status int, reason string) *Error {
	return &Error{
		Kind:    KindHTTP,
		Code:    status,
		Message: reason,
	}
}

func newParseError(message string, err error) *Error {
	return &Error{
		Kind:    KindParse,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindNone
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}
