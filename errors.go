package worldbank

import "fmt"

// ========================= ERRORS =========================

// IdentityMissingError: a payload object that must carry an "id" key does
// not have one (or carries JSON null). A present-but-empty id is valid.
type IdentityMissingError struct {
	Entity string
}

func (e *IdentityMissingError) Error() string {
	return fmt.Sprintf("%s payload has no id", e.Entity)
}

// TransportError: the request never produced a usable body. Carries the
// final URL and, for HTTP-level failures, the status code.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError: the body came back but is not the JSON shape this API emits.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValueFormatError: a field that must be numeric holds a non-numeric string.
type ValueFormatError struct {
	Field string
	Raw   string
}

func (e *ValueFormatError) Error() string {
	return fmt.Sprintf("field %q: %q is not a number", e.Field, e.Raw)
}
