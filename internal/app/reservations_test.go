package app

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"github.com/metinatakli/theatre-reservation-system/internal/mocks"
	"github.com/metinatakli/theatre-reservation-system/internal/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReservationsTestSuite struct {
	suite.Suite
	app             *Application
	reservationRepo *mocks.MockReservationRepo
	tx              *mocks.MockReservationTx
}

func (s *ReservationsTestSuite) SetupTest() {
	s.reservationRepo = new(mocks.MockReservationRepo)
	s.tx = new(mocks.MockReservationTx)
	s.app = newTestApplication(func(a *Application) {
		a.reservationRepo = s.reservationRepo
	})
}

func TestReservationsSuite(t *testing.T) {
	suite.Run(t, new(ReservationsTestSuite))
}

func (s *ReservationsTestSuite) expectHall() {
	hall := mainStage()
	s.reservationRepo.On("Begin", mock.Anything).Return(s.tx, nil)
	s.tx.On("GetTheatreHallByPerformanceId", mock.Anything, 1).Return(&hall, nil)
}

func (s *ReservationsTestSuite) TestCreateReservation() {
	s.expectHall()
	s.tx.On("TicketExists", mock.Anything, 1, mock.AnythingOfType("int"), mock.AnythingOfType("int")).Return(false, nil)
	s.tx.On("InsertReservation", mock.Anything, mock.MatchedBy(func(res *domain.Reservation) bool {
		return res.UserID == testUser.ID && len(res.Tickets) == 2
	})).
		Run(func(args mock.Arguments) {
			res := args.Get(1).(*domain.Reservation)
			res.ID = 7
			res.CreatedAt = opening
			for i := range res.Tickets {
				res.Tickets[i].ID = 10 + i
				res.Tickets[i].ReservationID = 7
			}
		}).
		Return(nil)
	s.tx.On("Commit", mock.Anything).Return(nil)

	input := api.CreateReservationRequest{Tickets: []api.TicketRequest{
		{Row: 1, Seat: 1, Performance: 1},
		{Row: 1, Seat: 2, Performance: 1},
	}}

	w, r := executeRequest(s.T(), http.MethodPost, "/reservations", input)
	r = authenticate(s.T(), s.app, r, testUser)
	s.app.Routes().ServeHTTP(w, r)

	s.Equal(http.StatusCreated, w.Code)

	got := decodeJSON[api.ReservationResponse](s.T(), w)
	s.Equal(7, got.Id)
	s.Equal([]api.TicketResponse{
		{Id: 10, Row: 1, Seat: 1, Performance: api.TicketPerformance{Id: 1}},
		{Id: 11, Row: 1, Seat: 2, Performance: api.TicketPerformance{Id: 1}},
	}, got.Tickets)

	s.tx.AssertNotCalled(s.T(), "Rollback", mock.Anything)
	s.tx.AssertExpectations(s.T())
}

func (s *ReservationsTestSuite) TestCreateReservationRejected() {
	tests := []struct {
		name      string
		tickets   []api.TicketRequest
		taken     bool
		insertErr error
		want      []api.TicketError
	}{
		{
			name:    "row out of range",
			tickets: []api.TicketRequest{{Row: 1, Seat: 1, Performance: 1}, {Row: 11, Seat: 1, Performance: 1}},
			want:    []api.TicketError{{Index: 1, Field: "row", Issue: "must be in range [1, 10]"}},
		},
		{
			name:    "seat out of range",
			tickets: []api.TicketRequest{{Row: 1, Seat: 0, Performance: 1}},
			want:    []api.TicketError{{Index: 0, Field: "seat", Issue: "must be in range [1, 10]"}},
		},
		{
			name:    "already sold",
			tickets: []api.TicketRequest{{Row: 2, Seat: 2, Performance: 1}},
			taken:   true,
			want:    []api.TicketError{{Index: 0, Field: "seat", Issue: "is already taken"}},
		},
		{
			name:    "same seat twice",
			tickets: []api.TicketRequest{{Row: 3, Seat: 3, Performance: 1}, {Row: 3, Seat: 3, Performance: 1}},
			want:    []api.TicketError{{Index: 1, Field: "seat", Issue: "is already requested by ticket 0"}},
		},
		{
			name:      "sold while inserting",
			tickets:   []api.TicketRequest{{Row: 4, Seat: 4, Performance: 1}},
			insertErr: domain.TicketErrors{domain.NewSeatTakenError(0)},
			want:      []api.TicketError{{Index: 0, Field: "seat", Issue: "is already taken"}},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			s.expectHall()
			s.tx.On("TicketExists", mock.Anything, 1, mock.AnythingOfType("int"), mock.AnythingOfType("int")).Return(tt.taken, nil).Maybe()
			if tt.insertErr != nil {
				s.tx.On("InsertReservation", mock.Anything, mock.Anything).Return(tt.insertErr)
			}
			s.tx.On("Rollback", mock.Anything).Return(nil)

			input := api.CreateReservationRequest{Tickets: tt.tickets}
			w, r := executeRequest(s.T(), http.MethodPost, "/reservations", input)
			r = authenticate(s.T(), s.app, r, testUser)
			s.app.Routes().ServeHTTP(w, r)

			s.Equal(http.StatusBadRequest, w.Code)

			got := decodeJSON[api.TicketErrorResponse](s.T(), w)
			s.Equal(ErrTicketsRejected, got.Message)
			s.Equal(tt.want, got.TicketErrors)

			s.tx.AssertNotCalled(s.T(), "Commit", mock.Anything)
			s.tx.AssertCalled(s.T(), "Rollback", mock.Anything)
			if tt.insertErr == nil {
				s.tx.AssertNotCalled(s.T(), "InsertReservation", mock.Anything, mock.Anything)
			}
		})
	}
}

func (s *ReservationsTestSuite) TestCreateReservationUnknownPerformance() {
	s.reservationRepo.On("Begin", mock.Anything).Return(s.tx, nil)
	s.tx.On("GetTheatreHallByPerformanceId", mock.Anything, 42).Return(nil, domain.ErrRecordNotFound)
	s.tx.On("Rollback", mock.Anything).Return(nil)

	input := api.CreateReservationRequest{Tickets: []api.TicketRequest{{Row: 1, Seat: 1, Performance: 42}}}
	w, r := executeRequest(s.T(), http.MethodPost, "/reservations", input)
	r = authenticate(s.T(), s.app, r, testUser)
	s.app.Routes().ServeHTTP(w, r)

	s.Equal(http.StatusBadRequest, w.Code)

	got := decodeJSON[api.TicketErrorResponse](s.T(), w)
	s.Equal([]api.TicketError{{Index: 0, Field: "performance", Issue: "performance 42 does not exist"}}, got.TicketErrors)
}

func (s *ReservationsTestSuite) TestCreateReservationInvalidBody() {
	tests := []struct {
		name           string
		body           any
		authenticated  bool
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "empty tickets",
			body:           api.CreateReservationRequest{Tickets: []api.TicketRequest{}},
			authenticated:  true,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "must contain at least 1 item(s)",
		},
		{
			name:           "missing tickets",
			body:           map[string]any{},
			authenticated:  true,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "unauthenticated",
			body:           api.CreateReservationRequest{Tickets: []api.TicketRequest{{Row: 1, Seat: 1, Performance: 1}}},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			w, r := executeRequest(s.T(), http.MethodPost, "/reservations", tt.body)
			if tt.authenticated {
				r = authenticate(s.T(), s.app, r, testUser)
			}
			s.app.Routes().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)
			s.reservationRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})
		})
	}
}

func (s *ReservationsTestSuite) TestGetReservations() {
	tests := []struct {
		name           string
		query          string
		wantPagination *domain.Pagination
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "defaults",
			wantPagination: &domain.Pagination{Page: 1, PageSize: 3},
			wantStatus:     http.StatusOK,
		},
		{
			name:           "explicit page",
			query:          "?page=2&page_size=5",
			wantPagination: &domain.Pagination{Page: 2, PageSize: 5},
			wantStatus:     http.StatusOK,
		},
		{
			name:           "page size capped",
			query:          "?page_size=50",
			wantPagination: &domain.Pagination{Page: 1, PageSize: 20},
			wantStatus:     http.StatusOK,
		},
		{
			name:           "non-positive page size falls back to default",
			query:          "?page_size=0",
			wantPagination: &domain.Pagination{Page: 1, PageSize: 3},
			wantStatus:     http.StatusOK,
		},
		{
			name:           "last addressable page",
			query:          fmt.Sprintf("?page=%d&page_size=%d", MaxReservationPage, MaxReservationPageSize),
			wantPagination: &domain.Pagination{Page: MaxReservationPage, PageSize: MaxReservationPageSize},
			wantStatus:     http.StatusOK,
		},
		{
			name:           "page size not a number",
			query:          "?page_size=lots",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "page_size must be an integer",
		},
		{
			name:           "page past the last addressable page",
			query:          fmt.Sprintf("?page=%d", MaxReservationPage+1),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: fmt.Sprintf("must be at most %d", MaxReservationPage),
		},
		{
			name:           "page whose offset overflows",
			query:          "?page=4611686018427387904",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: fmt.Sprintf("must be at most %d", MaxReservationPage),
		},
		{
			name:           "page below one",
			query:          "?page=0",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "must be at least 1",
		},
		{
			name:           "page not a number",
			query:          "?page=first",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "page must be an integer",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			defer s.reservationRepo.AssertExpectations(s.T())

			if tt.wantPagination != nil {
				p := *tt.wantPagination
				reservations := []domain.Reservation{{
					ID:        7,
					UserID:    testUser.ID,
					CreatedAt: opening,
					Tickets: []domain.Ticket{{
						ID:            10,
						Row:           1,
						Seat:          1,
						PerformanceID: 1,
						Performance: &domain.Performance{
							ID:          1,
							PlayTitle:   "Hamlet",
							TheatreHall: mainStage(),
							ShowTime:    opening,
						},
					}},
				}}
				s.reservationRepo.On("GetAllByUserId", mock.Anything, testUser.ID, p).
					Return(reservations, p.Metadata(1), nil)
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/reservations"+tt.query, nil)
			r = authenticate(s.T(), s.app, r, testUser)
			s.app.Routes().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				got := decodeJSON[api.ReservationListResponse](s.T(), w)
				s.Require().Len(got.Reservations, 1)
				s.Equal(tt.wantPagination.PageSize, got.Metadata.PageSize)
				s.Equal(1, got.Metadata.TotalRecords)

				ticket := got.Reservations[0].Tickets[0]
				s.Equal("Hamlet", ticket.Performance.PlayTitle)
				s.Equal("Main Stage", ticket.Performance.TheatreHallName)
				s.Require().NotNil(ticket.Performance.ShowTime)
				s.True(ticket.Performance.ShowTime.Equal(opening))
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})
		})
	}
}
