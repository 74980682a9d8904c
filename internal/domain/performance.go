package domain

import (
	"context"
	"time"
)

type Performance struct {
	ID            int
	PlayID        int
	PlayTitle     string
	PlayImageURL  string
	TheatreHall   TheatreHall
	ShowTime      time.Time
	BookedTickets int
}

// TicketsAvailable reports the seats left for sale, counting committed tickets only.
func (p Performance) TicketsAvailable() int {
	return p.TheatreHall.Capacity() - p.BookedTickets
}

type Seat struct {
	Row  int
	Seat int
}

type PerformanceDetail struct {
	Performance
	Play        Play
	TakenPlaces []Seat
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *Performance) error
	GetAll(ctx context.Context) ([]Performance, error)
	GetById(ctx context.Context, id int) (*PerformanceDetail, error)
	Update(ctx context.Context, performance *Performance) error
	Delete(ctx context.Context, id int) error
}
