package domain

import "errors"

var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrEditConflict        = errors.New("edit conflict")
	ErrInvalidReference    = errors.New("referenced record does not exist")
	ErrDuplicateRecord     = errors.New("record already exists")
	ErrNoTickets           = errors.New("at least one ticket is required")
	ErrPerformanceNotFound = errors.New("performance does not exist")
	ErrRowOutOfRange       = errors.New("row is outside of the theatre hall")
	ErrSeatOutOfRange      = errors.New("seat is outside of the theatre hall")
	ErrSeatAlreadyTaken    = errors.New("seat already taken")
)
