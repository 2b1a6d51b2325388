package userrepo

import (
	"context"
	"database/sql"

	"github.com/vivekranpara25/UrbanDrive/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) (bool, error)
	AdminExists(ctx context.Context) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const userCols = `id, name, email, password_hash, role, phone, status, join_date`

func (r *repo) Create(ctx context.Context, u *model.User) error {
	const q = `
		INSERT INTO users(name, email, password_hash, role, phone, status)
		VALUES ($1, lower($2), $3, $4, $5, $6)
		RETURNING id, join_date`
	return r.db.QueryRowContext(ctx, q,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Phone, u.Status,
	).Scan(&u.ID, &u.JoinDate)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
		SELECT ` + userCols + `
		FROM users
		WHERE lower(email) = lower($1)`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT ` + userCols + `
		FROM users
		WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func scanUser(row *sql.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Phone, &u.Status, &u.JoinDate)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) List(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT ` + userCols + `
		FROM users
		ORDER BY join_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Phone, &u.Status, &u.JoinDate); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, u *model.User) error {
	const q = `
		UPDATE users
		SET name = $2,
			phone = $3,
			role = $4,
			status = $5
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Phone, u.Role, u.Status)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM users WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) AdminExists(ctx context.Context) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE role = 'admin')`
	var ok bool
	err := r.db.QueryRowContext(ctx, q).Scan(&ok)
	return ok, err
}
