package analyticsrepo

import (
	"context"
	"database/sql"
)

type MonthStat struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type CarStat struct {
	CarID    int64   `json:"car_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type WeekdayStat struct {
	Weekday  string `json:"weekday"`
	Bookings int    `json:"bookings"`
}

type CategoryStat struct {
	Category string `json:"category"`
	Cars     int    `json:"cars"`
}

type SignupStat struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

type Repo interface {
	MonthlyRevenue(ctx context.Context, months int) ([]MonthStat, error)
	TopCars(ctx context.Context, limit int) ([]CarStat, error)
	BookingsByWeekday(ctx context.Context) ([]WeekdayStat, error)
	CategoryDistribution(ctx context.Context) ([]CategoryStat, error)
	UserSignups(ctx context.Context, months int) ([]SignupStat, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

// Cancelled bookings never count toward revenue.

func (r *repo) MonthlyRevenue(ctx context.Context, months int) ([]MonthStat, error) {
	const q = `
		SELECT to_char(date_trunc('month', b.created_at), 'YYYY-MM') AS month,
			COALESCE(SUM(b.total_amount), 0)                         AS revenue,
			COUNT(*)                                                 AS bookings
		FROM bookings b
		WHERE b.status <> 'cancelled'
		AND b.created_at >= date_trunc('month', now()) - ($1 - 1) * INTERVAL '1 month'
		GROUP BY 1
		ORDER BY 1`
	rows, err := r.db.QueryContext(ctx, q, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthStat
	for rows.Next() {
		var m MonthStat
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Bookings); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repo) TopCars(ctx context.Context, limit int) ([]CarStat, error) {
	const q = `
		SELECT c.id, c.name, c.category,
			COUNT(b.id)                       AS bookings,
			COALESCE(SUM(b.total_amount), 0)  AS revenue
		FROM cars c
		LEFT JOIN bookings b ON b.car_id = c.id AND b.status <> 'cancelled'
		GROUP BY c.id
		ORDER BY revenue DESC, bookings DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CarStat
	for rows.Next() {
		var c CarStat
		if err := rows.Scan(&c.CarID, &c.Name, &c.Category, &c.Bookings, &c.Revenue); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) BookingsByWeekday(ctx context.Context) ([]WeekdayStat, error) {
	const q = `
		SELECT trim(to_char(b.created_at, 'Day')) AS weekday,
			COUNT(*)                              AS bookings
		FROM bookings b
		GROUP BY 1, extract(isodow FROM b.created_at)
		ORDER BY extract(isodow FROM b.created_at)`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WeekdayStat
	for rows.Next() {
		var w WeekdayStat
		if err := rows.Scan(&w.Weekday, &w.Bookings); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *repo) CategoryDistribution(ctx context.Context) ([]CategoryStat, error) {
	const q = `
		SELECT category, COUNT(*) AS cars
		FROM cars
		GROUP BY category
		ORDER BY cars DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryStat
	for rows.Next() {
		var c CategoryStat
		if err := rows.Scan(&c.Category, &c.Cars); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) UserSignups(ctx context.Context, months int) ([]SignupStat, error) {
	const q = `
		SELECT to_char(date_trunc('month', join_date), 'YYYY-MM') AS month,
			COUNT(*)                                              AS users
		FROM users
		WHERE join_date >= date_trunc('month', now()) - ($1 - 1) * INTERVAL '1 month'
		GROUP BY 1
		ORDER BY 1`
	rows, err := r.db.QueryContext(ctx, q, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SignupStat
	for rows.Next() {
		var s SignupStat
		if err := rows.Scan(&s.Month, &s.Users); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
