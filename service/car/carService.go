package carsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vivekranpara25/UrbanDrive/model"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	Create(ctx context.Context, c *model.Car) error
	Update(ctx context.Context, c *model.Car) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.Car, error)
	ByID(ctx context.Context, id int64) (*model.Car, error)
}

type Service interface {
	Create(ctx context.Context, c *model.Car) error
	Update(ctx context.Context, c *model.Car) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Car, error)
	Get(ctx context.Context, id int64) (*model.Car, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func validate(c *model.Car) error {
	if c.Name == "" || c.Model == "" || c.Category == "" || c.Transmission == "" {
		return makeErr(ErrBadInput)
	}
	if c.PricePerHour <= 0 || c.Quantity < 0 || c.Seats <= 0 {
		return makeErr(ErrBadInput)
	}
	return nil
}

// clampAvailable keeps 0 <= available <= quantity when an admin edits the
// fleet size.
func clampAvailable(c *model.Car) {
	if c.Available > c.Quantity {
		c.Available = c.Quantity
	}
	if c.Available < 0 {
		c.Available = 0
	}
}

func (s *service) Create(ctx context.Context, c *model.Car) error {
	if err := validate(c); err != nil {
		return err
	}
	clampAvailable(c)
	return s.r.Create(ctx, c)
}

func (s *service) Update(ctx context.Context, c *model.Car) error {
	if err := validate(c); err != nil {
		return err
	}
	clampAvailable(c)
	if err := s.r.Update(ctx, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]model.Car, error) { return s.r.List(ctx) }

func (s *service) Get(ctx context.Context, id int64) (*model.Car, error) {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}
