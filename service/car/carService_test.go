package carsvc_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/vivekranpara25/UrbanDrive/model"
	carsvc "github.com/vivekranpara25/UrbanDrive/service/car"
)

type repoMock struct {
	createFn func(ctx context.Context, c *model.Car) error
	updateFn func(ctx context.Context, c *model.Car) error
	deleteFn func(ctx context.Context, id int64) (bool, error)
	listFn   func(ctx context.Context) ([]model.Car, error)
	byIDFn   func(ctx context.Context, id int64) (*model.Car, error)
}

func (m *repoMock) Create(ctx context.Context, c *model.Car) error { return m.createFn(ctx, c) }
func (m *repoMock) Update(ctx context.Context, c *model.Car) error { return m.updateFn(ctx, c) }
func (m *repoMock) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleteFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context) ([]model.Car, error) { return m.listFn(ctx) }
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Car, error) {
	return m.byIDFn(ctx, id)
}

func valid() *model.Car {
	return &model.Car{
		Name: "Swift", Model: "VXi 2023", Category: "Hatchback",
		Transmission: "Manual", Seats: 5,
		PricePerHour: 150, Quantity: 4, Available: 4,
	}
}

func TestCreate_Validation(t *testing.T) {
	s := carsvc.New(&repoMock{})

	cases := map[string]func(c *model.Car){
		"empty name":     func(c *model.Car) { c.Name = "" },
		"empty model":    func(c *model.Car) { c.Model = "" },
		"zero price":     func(c *model.Car) { c.PricePerHour = 0 },
		"negative qty":   func(c *model.Car) { c.Quantity = -1 },
		"zero seats":     func(c *model.Car) { c.Seats = 0 },
		"no category":    func(c *model.Car) { c.Category = "" },
		"no gearbox":     func(c *model.Car) { c.Transmission = "" },
	}
	for name, mutate := range cases {
		c := valid()
		mutate(c)
		if err := s.Create(context.Background(), c); carsvc.Code(err) != carsvc.ErrBadInput {
			t.Fatalf("%s: expected BAD_INPUT, got %v", name, err)
		}
	}
}

func TestCreate_ClampsAvailable(t *testing.T) {
	var got *model.Car
	s := carsvc.New(&repoMock{
		createFn: func(ctx context.Context, c *model.Car) error { got = c; return nil },
	})

	c := valid()
	c.Quantity = 3
	c.Available = 10
	if err := s.Create(context.Background(), c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.Available != 3 {
		t.Fatalf("available = %d; want clamped to 3", got.Available)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	s := carsvc.New(&repoMock{
		updateFn: func(ctx context.Context, c *model.Car) error { return sql.ErrNoRows },
	})
	if err := s.Update(context.Background(), valid()); carsvc.Code(err) != carsvc.ErrNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	s := carsvc.New(&repoMock{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	})
	if err := s.Delete(context.Background(), 9); carsvc.Code(err) != carsvc.ErrNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := carsvc.New(&repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Car, error) { return nil, sql.ErrNoRows },
	})
	if _, err := s.Get(context.Background(), 9); carsvc.Code(err) != carsvc.ErrNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Car, error) { return []model.Car{*valid()}, nil },
		byIDFn: func(ctx context.Context, id int64) (*model.Car, error) { return valid(), nil },
	}
	s := carsvc.New(m)

	if cars, err := s.List(context.Background()); err != nil || len(cars) != 1 {
		t.Fatalf("List got %v %v; want 1 car", cars, err)
	}
	if _, err := s.Get(context.Background(), 1); err != nil {
		t.Fatalf("Get error: %v", err)
	}
}
