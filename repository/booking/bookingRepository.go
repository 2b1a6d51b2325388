package bookingrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/vivekranpara25/UrbanDrive/model"
)

// DetailRow is a booking joined with car and user display info for
// dashboards and the admin console.
type DetailRow struct {
	BookingID     int64               `json:"booking_id"`
	CarID         int64               `json:"car_id"`
	CarName       string              `json:"car_name"`
	CarModel      string              `json:"car_model"`
	CarImage      string              `json:"car_image"`
	UserID        int64               `json:"user_id"`
	UserName      string              `json:"user_name"`
	UserEmail     string              `json:"user_email"`
	StartAt       time.Time           `json:"start_at"`
	EndAt         time.Time           `json:"end_at"`
	TotalAmount   float64             `json:"total_amount"`
	NeedDriver    bool                `json:"need_driver"`
	DriverContact string              `json:"driver_contact,omitempty"`
	Status        model.BookingStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}

type Repo interface {
	Insert(ctx context.Context, tx *sql.Tx, b *model.Booking) error
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Booking, error)
	SetStatus(ctx context.Context, tx *sql.Tx, id int64, status model.BookingStatus) error

	ListDetailed(ctx context.Context) ([]DetailRow, error)
	GetDetailed(ctx context.Context, id int64) (*DetailRow, error)
	ListByUser(ctx context.Context, userID int64) ([]DetailRow, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `
		INSERT INTO bookings (user_id, car_id, start_at, end_at, total_amount, need_driver, driver_contact, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at`
	return tx.QueryRowContext(ctx, q,
		b.UserID, b.CarID, b.StartAt, b.EndAt, b.TotalAmount,
		b.NeedDriver, b.DriverContact, b.Status,
	).Scan(&b.ID, &b.CreatedAt)
}

func (r *repo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Booking, error) {
	const q = `
		SELECT id, user_id, car_id, start_at, end_at, total_amount, need_driver, driver_contact, status, created_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`
	b := &model.Booking{}
	err := tx.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.UserID, &b.CarID, &b.StartAt, &b.EndAt, &b.TotalAmount,
		&b.NeedDriver, &b.DriverContact, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) SetStatus(ctx context.Context, tx *sql.Tx, id int64, status model.BookingStatus) error {
	const q = `
		UPDATE bookings
		SET status = $2
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, status)
	return err
}

const detailSelect = `
	SELECT
		b.id            AS booking_id,
		b.car_id        AS car_id,
		c.name          AS car_name,
		c.model         AS car_model,
		c.image         AS car_image,
		b.user_id       AS user_id,
		u.name          AS user_name,
		u.email         AS user_email,
		b.start_at, b.end_at, b.total_amount,
		b.need_driver, b.driver_contact, b.status, b.created_at
	FROM bookings b
	JOIN cars c  ON c.id = b.car_id
	JOIN users u ON u.id = b.user_id`

func (r *repo) ListDetailed(ctx context.Context) ([]DetailRow, error) {
	const q = detailSelect + `
	ORDER BY b.created_at DESC, b.id DESC`
	return r.queryDetails(ctx, q)
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]DetailRow, error) {
	const q = detailSelect + `
	WHERE b.user_id = $1
	ORDER BY b.created_at DESC, b.id DESC`
	return r.queryDetails(ctx, q, userID)
}

func (r *repo) GetDetailed(ctx context.Context, id int64) (*DetailRow, error) {
	const q = detailSelect + `
	WHERE b.id = $1`
	var d DetailRow
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.BookingID, &d.CarID, &d.CarName, &d.CarModel, &d.CarImage,
		&d.UserID, &d.UserName, &d.UserEmail,
		&d.StartAt, &d.EndAt, &d.TotalAmount,
		&d.NeedDriver, &d.DriverContact, &d.Status, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repo) queryDetails(ctx context.Context, q string, args ...any) ([]DetailRow, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DetailRow
	for rows.Next() {
		var d DetailRow
		if err := rows.Scan(
			&d.BookingID, &d.CarID, &d.CarName, &d.CarModel, &d.CarImage,
			&d.UserID, &d.UserName, &d.UserEmail,
			&d.StartAt, &d.EndAt, &d.TotalAmount,
			&d.NeedDriver, &d.DriverContact, &d.Status, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
