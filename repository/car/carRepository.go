package carrepo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/vivekranpara25/UrbanDrive/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Car) error
	Update(ctx context.Context, c *model.Car) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.Car, error)
	ByID(ctx context.Context, id int64) (*model.Car, error)

	// Transactional primitives used by the booking state machine.
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Car, error)
	DecrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error
	IncrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const carCols = `id, name, model, image, price_per_hour, description, quantity, available, category, transmission, seats, features`

func (r *repo) Create(ctx context.Context, c *model.Car) error {
	const q = `
		INSERT INTO cars(name, model, image, price_per_hour, description, quantity, available, category, transmission, seats, features)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id`
	feats, err := json.Marshal(c.Features)
	if err != nil {
		return err
	}
	return r.db.QueryRowContext(ctx, q,
		c.Name, c.Model, c.Image, c.PricePerHour, c.Description,
		c.Quantity, c.Available, c.Category, c.Transmission, c.Seats, feats,
	).Scan(&c.ID)
}

func (r *repo) Update(ctx context.Context, c *model.Car) error {
	const q = `
		UPDATE cars
		SET name = $2,
			model = $3,
			image = $4,
			price_per_hour = $5,
			description = $6,
			quantity = $7,
			available = $8,
			category = $9,
			transmission = $10,
			seats = $11,
			features = $12
		WHERE id = $1`
	feats, err := json.Marshal(c.Features)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q,
		c.ID, c.Name, c.Model, c.Image, c.PricePerHour, c.Description,
		c.Quantity, c.Available, c.Category, c.Transmission, c.Seats, feats,
	)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM cars WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) List(ctx context.Context) ([]model.Car, error) {
	const q = `
		SELECT ` + carCols + `
		FROM cars
		ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		c, err := scanCar(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Car, error) {
	const q = `
		SELECT ` + carCols + `
		FROM cars
		WHERE id = $1`
	return scanCar(r.db.QueryRowContext(ctx, q, id).Scan)
}

func (r *repo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Car, error) {
	const q = `
		SELECT ` + carCols + `
		FROM cars
		WHERE id = $1
		FOR UPDATE`
	return scanCar(tx.QueryRowContext(ctx, q, id).Scan)
}

func scanCar(scan func(dest ...any) error) (*model.Car, error) {
	c := &model.Car{}
	var feats []byte
	err := scan(&c.ID, &c.Name, &c.Model, &c.Image, &c.PricePerHour, &c.Description,
		&c.Quantity, &c.Available, &c.Category, &c.Transmission, &c.Seats, &feats)
	if err != nil {
		return nil, err
	}
	if len(feats) > 0 {
		if err := json.Unmarshal(feats, &c.Features); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (r *repo) DecrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error {
	// Guard: only decrement while units remain.
	const q = `
		UPDATE cars
		SET available = available - 1
		WHERE id = $1
		AND available > 0`
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) IncrementAvailable(ctx context.Context, tx *sql.Tx, id int64) error {
	// Capped so a cancel can never push available past quantity.
	const q = `
		UPDATE cars
		SET available = LEAST(available + 1, quantity)
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}
