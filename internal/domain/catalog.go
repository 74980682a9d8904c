package domain

import (
	"context"
	"fmt"
)

type Actor struct {
	ID        int
	FirstName string
	LastName  string
}

func (a Actor) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

type Genre struct {
	ID   int
	Name string
}

type ActorRepository interface {
	Create(ctx context.Context, actor *Actor) error
	GetAll(ctx context.Context) ([]Actor, error)
	GetById(ctx context.Context, id int) (*Actor, error)
}

type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	GetAll(ctx context.Context) ([]Genre, error)
}
