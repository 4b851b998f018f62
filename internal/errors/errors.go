// Package errors defines domain error values shared across services.
package errors

// DomainError is a business-condition error with a stable code that
// handlers can map to HTTP responses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
