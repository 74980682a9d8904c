package validator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type input struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	Rows     int    `validate:"min=1,max=100"`
	Name     string `validate:"max=5"`
	Tickets  []int  `validate:"min=1"`
	Genres   string `validate:"omitempty,csv_ids"`
}

func validInput() input {
	return input{
		Email:    "user@example.com",
		Password: "testpass123",
		Rows:     10,
		Name:     "Blue",
		Tickets:  []int{1},
		Genres:   "1,2",
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*input)
		wantField string
		wantIssue string
	}{
		{name: "missing email", modify: func(i *input) { i.Email = "" }, wantField: "Email", wantIssue: ErrRequired},
		{name: "bad email", modify: func(i *input) { i.Email = "nope" }, wantField: "Email", wantIssue: ErrInvalidEmail},
		{name: "password without digit", modify: func(i *input) { i.Password = "onlyletters" }, wantField: "Password", wantIssue: ErrInvalidPassword},
		{name: "password too short", modify: func(i *input) { i.Password = "ab1" }, wantField: "Password", wantIssue: ErrInvalidPassword},
		{name: "rows zero", modify: func(i *input) { i.Rows = 0 }, wantField: "Rows", wantIssue: fmt.Sprintf(ErrMinValue, "1")},
		{name: "rows too many", modify: func(i *input) { i.Rows = 101 }, wantField: "Rows", wantIssue: fmt.Sprintf(ErrMaxValue, "100")},
		{name: "name too long", modify: func(i *input) { i.Name = "Crimson" }, wantField: "Name", wantIssue: fmt.Sprintf(ErrMaxLength, "5")},
		{name: "no tickets", modify: func(i *input) { i.Tickets = []int{} }, wantField: "Tickets", wantIssue: fmt.Sprintf(ErrMinItems, "1")},
		{name: "bad id list", modify: func(i *input) { i.Genres = "1,x" }, wantField: "Genres", wantIssue: ErrInvalidIDList},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			err := v.Struct(in)

			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			require.Len(t, validationErrs, 1)
			assert.Equal(t, tt.wantField, validationErrs[0].Field())
			assert.Equal(t, tt.wantIssue, ValidationMessage(validationErrs[0]))
		})
	}

	assert.NoError(t, v.Struct(validInput()))
}

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("3, 1,2")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids)

	ids, err = ParseIDList("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseIDList("1,,2")
	assert.Error(t, err)

	_, err = ParseIDList("0")
	assert.Error(t, err)
}

func TestFieldNamesFollowJSONTags(t *testing.T) {
	type body struct {
		SeatsInRow int `json:"seats_in_row" validate:"min=1"`
	}

	err := NewValidator().Struct(body{})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "seats_in_row", validationErrs[0].Field())
}
