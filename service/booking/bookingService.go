package bookingsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vivekranpara25/UrbanDrive/model"
	bookingrepo "github.com/vivekranpara25/UrbanDrive/repository/booking"
	"github.com/vivekranpara25/UrbanDrive/util/database"
)

// errors used by controllers

type ErrCode string

const (
	ErrCarNotFound     ErrCode = "CAR_NOT_FOUND"
	ErrUnavailable     ErrCode = "CAR_UNAVAILABLE"
	ErrInvalidInterval ErrCode = "INVALID_INTERVAL"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrBadTransition   ErrCode = "BAD_TRANSITION"
	ErrBadStatus       ErrCode = "BAD_STATUS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type CreateReq struct {
	CarID         int64
	StartAt       time.Time
	EndAt         time.Time
	NeedDriver    bool
	DriverContact string
}

// DetailRow = repository shape
type DetailRow = bookingrepo.DetailRow

type Repo interface {
	Insert(ctx context.Context, tx *sql.Tx, b *model.Booking) error
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Booking, error)
	SetStatus(ctx context.Context, tx *sql.Tx, id int64, status model.BookingStatus) error

	ListDetailed(ctx context.Context) ([]DetailRow, error)
	GetDetailed(ctx context.Context, id int64) (*DetailRow, error)
	ListByUser(ctx context.Context, userID int64) ([]DetailRow, error)
}

type CarRepo interface {
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Car, error)
	DecrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error
	IncrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error
}

type Service interface {
	// Create: reserve one unit of the car and insert a pending booking.
	Create(ctx context.Context, userID int64, req CreateReq) (*model.Booking, error)

	// UpdateStatus: admin-driven lifecycle transition; cancellation frees a unit.
	UpdateStatus(ctx context.Context, bookingID int64, status model.BookingStatus) (*model.Booking, error)

	ListAll(ctx context.Context) ([]DetailRow, error)
	Get(ctx context.Context, id int64) (*DetailRow, error)
	ListByUser(ctx context.Context, userID int64) ([]DetailRow, error)
}

// ----- Service implementation -----

type service struct {
	tx   database.TxRunner
	r    Repo
	cars CarRepo
}

func New(tx database.TxRunner, r Repo, cars CarRepo) Service {
	return &service{tx: tx, r: r, cars: cars}
}

// Create runs the whole reservation as one transaction: the car row is
// locked, availability is checked and decremented together with the booking
// insert, so two requests racing for the last unit cannot both win.
func (s *service) Create(ctx context.Context, userID int64, req CreateReq) (*model.Booking, error) {
	var b *model.Booking
	err := s.tx.RunTx(ctx, func(tx *sql.Tx) error {
		car, err := s.cars.GetForUpdate(ctx, tx, req.CarID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return makeErr(ErrCarNotFound)
			}
			return err
		}

		if car.Available <= 0 {
			return makeErr(ErrUnavailable)
		}

		hours, total := Quote(req.StartAt, req.EndAt, car.PricePerHour, req.NeedDriver)
		if hours <= 0 {
			return makeErr(ErrInvalidInterval)
		}

		b = &model.Booking{
			UserID:        userID,
			CarID:         req.CarID,
			StartAt:       req.StartAt,
			EndAt:         req.EndAt,
			TotalAmount:   total,
			NeedDriver:    req.NeedDriver,
			DriverContact: req.DriverContact,
			Status:        model.BookingPending,
		}
		if err := s.r.Insert(ctx, tx, b); err != nil {
			return err
		}

		if err := s.cars.DecrementAvailable(ctx, tx, req.CarID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return makeErr(ErrUnavailable)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateStatus(ctx context.Context, bookingID int64, status model.BookingStatus) (*model.Booking, error) {
	if !validStatus(status) {
		return nil, makeErr(ErrBadStatus)
	}

	var b *model.Booking
	err := s.tx.RunTx(ctx, func(tx *sql.Tx) error {
		var err error
		b, err = s.r.GetForUpdate(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return makeErr(ErrNotFound)
			}
			return err
		}

		if !canTransition(b.Status, status) {
			return makeErr(ErrBadTransition)
		}

		if err := s.r.SetStatus(ctx, tx, bookingID, status); err != nil {
			return err
		}

		// Only cancellation returns the unit to the pool; confirmed and
		// completed leave availability untouched.
		if status == model.BookingCancelled {
			if err := s.cars.IncrementAvailable(ctx, tx, b.CarID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

func (s *service) ListAll(ctx context.Context) ([]DetailRow, error) {
	return s.r.ListDetailed(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*DetailRow, error) {
	d, err := s.r.GetDetailed(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]DetailRow, error) {
	return s.r.ListByUser(ctx, userID)
}
