package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// ValidationError reports malformed or missing fields, keyed by JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed on %v", names)
}

// Add records a message for field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// OrNil returns nil when no field failed so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

// NotFoundError reports a missing Event or Participant.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

func EventNotFound(id uint) *NotFoundError {
	return &NotFoundError{Resource: "Event", ID: id}
}

func ParticipantNotFound(id uint) *NotFoundError {
	return &NotFoundError{Resource: "Participant", ID: id}
}

// CapacityExceededError reports an event already holding max_participants registrations.
type CapacityExceededError struct {
	EventID uint
	Limit   int
}

func (e *CapacityExceededError) Error() string {
	return "Event has reached maximum participants"
}

// PersistenceError wraps a failed store operation. The transaction it ran in
// has already been rolled back when this error is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err unless it is nil or already one of the taxonomy errors.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomain(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsDomain reports whether err belongs to the error taxonomy.
func IsDomain(err error) bool {
	var (
		v *ValidationError
		n *NotFoundError
		c *CapacityExceededError
		p *PersistenceError
	)
	return errors.As(err, &v) || errors.As(err, &n) || errors.As(err, &c) || errors.As(err, &p)
}

// Response is the JSON error body returned to clients.
type Response struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// HTTP maps err to a status code and response body.
func HTTP(err error) (int, Response) {
	var (
		v *ValidationError
		n *NotFoundError
		c *CapacityExceededError
		p *PersistenceError
	)
	switch {
	case errors.As(err, &v):
		return http.StatusBadRequest, Response{Message: "Validation error", Errors: v.Fields}
	case errors.As(err, &n):
		return http.StatusNotFound, Response{Message: n.Error()}
	case errors.As(err, &c):
		return http.StatusBadRequest, Response{Message: c.Error()}
	case errors.As(err, &p):
		return http.StatusInternalServerError, Response{Message: "Database error"}
	default:
		return http.StatusInternalServerError, Response{Message: "Internal server error"}
	}
}
