package domain

import (
	"fmt"
	"strings"
)

// TicketError describes why one entry of a reservation request was rejected.
type TicketError struct {
	Index int
	Field string
	Issue string
	Err   error
}

func (e *TicketError) Error() string {
	return fmt.Sprintf("tickets[%d].%s: %s", e.Index, e.Field, e.Issue)
}

func (e *TicketError) Unwrap() error {
	return e.Err
}

type TicketErrors []*TicketError

func (e TicketErrors) Error() string {
	msgs := make([]string, len(e))
	for i, te := range e {
		msgs[i] = te.Error()
	}

	return strings.Join(msgs, "; ")
}

func (e TicketErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, te := range e {
		errs[i] = te
	}

	return errs
}

func NewSeatTakenError(index int) *TicketError {
	return &TicketError{
		Index: index,
		Field: "seat",
		Issue: "is already taken",
		Err:   ErrSeatAlreadyTaken,
	}
}
