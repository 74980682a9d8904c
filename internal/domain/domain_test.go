package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceTicketsAvailable(t *testing.T) {
	tests := []struct {
		name   string
		hall   TheatreHall
		booked int
		want   int
	}{
		{name: "empty hall", hall: TheatreHall{Rows: 10, SeatsInRow: 10}, booked: 0, want: 100},
		{name: "three booked", hall: TheatreHall{Rows: 10, SeatsInRow: 10}, booked: 3, want: 97},
		{name: "sold out", hall: TheatreHall{Rows: 2, SeatsInRow: 3}, booked: 6, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Performance{TheatreHall: tt.hall, BookedTickets: tt.booked}
			assert.Equal(t, tt.want, p.TicketsAvailable())
		})
	}
}

func TestTheatreHallBounds(t *testing.T) {
	hall := TheatreHall{Rows: 5, SeatsInRow: 8}

	assert.True(t, hall.HasRow(1))
	assert.True(t, hall.HasRow(5))
	assert.False(t, hall.HasRow(0))
	assert.False(t, hall.HasRow(6))

	assert.True(t, hall.HasSeat(8))
	assert.False(t, hall.HasSeat(9))
	assert.False(t, hall.HasSeat(-1))
}

func TestTicketErrorsUnwrap(t *testing.T) {
	err := error(TicketErrors{
		{Index: 0, Field: "row", Issue: "must be between 1 and 5", Err: ErrRowOutOfRange},
		NewSeatTakenError(2),
	})

	assert.True(t, errors.Is(err, ErrRowOutOfRange))
	assert.True(t, errors.Is(err, ErrSeatAlreadyTaken))
	assert.False(t, errors.Is(err, ErrPerformanceNotFound))
	assert.Equal(t, "tickets[0].row: must be between 1 and 5; tickets[2].seat: is already taken", err.Error())

	var ticketErrs TicketErrors
	require.True(t, errors.As(err, &ticketErrs))
	assert.Len(t, ticketErrs, 2)
}

func TestPaginationMetadata(t *testing.T) {
	p := Pagination{Page: 2, PageSize: 3}

	assert.Equal(t, 3, p.Offset())
	assert.Equal(t, &Metadata{CurrentPage: 2, FirstPage: 1, LastPage: 3, PageSize: 3, TotalRecords: 7}, p.Metadata(7))
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 3}.Metadata(0).LastPage)
}

func TestPasswordMatches(t *testing.T) {
	var u User
	require.NoError(t, u.Password.Set("testpass123"))

	ok, err := u.Password.Matches("testpass123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.Password.Matches("wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRefreshToken(t *testing.T) {
	token, err := NewRefreshToken(7, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 7, token.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Expiry, time.Minute)
	assert.Equal(t, RefreshScope, token.Scope)
	assert.Equal(t, HashToken(token.Plaintext), token.Hash)
	assert.Len(t, token.Plaintext, 43)
}
