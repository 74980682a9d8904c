package domain

import "context"

// TheatreHall is a fixed seating grid. Valid coordinates are [1..Rows] x [1..SeatsInRow].
type TheatreHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

func (h TheatreHall) HasRow(row int) bool {
	return row >= 1 && row <= h.Rows
}

func (h TheatreHall) HasSeat(seat int) bool {
	return seat >= 1 && seat <= h.SeatsInRow
}

type TheatreHallRepository interface {
	Create(ctx context.Context, hall *TheatreHall) error
	GetAll(ctx context.Context) ([]TheatreHall, error)
	GetById(ctx context.Context, id int) (*TheatreHall, error)
}
