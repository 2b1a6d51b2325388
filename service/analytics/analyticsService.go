package analyticssvc

import (
	"context"

	analyticsrepo "github.com/vivekranpara25/UrbanDrive/repository/analytics"
)

// Dashboard aggregates everything the admin analytics page renders.
type Dashboard struct {
	MonthlyRevenue []analyticsrepo.MonthStat    `json:"monthly_revenue"`
	TopCars        []analyticsrepo.CarStat      `json:"top_cars"`
	Weekdays       []analyticsrepo.WeekdayStat  `json:"bookings_by_weekday"`
	Categories     []analyticsrepo.CategoryStat `json:"category_distribution"`
	UserSignups    []analyticsrepo.SignupStat   `json:"user_signups"`
}

const (
	revenueMonths = 6
	topCarLimit   = 5
)

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type service struct{ r analyticsrepo.Repo }

func New(r analyticsrepo.Repo) Service { return &service{r: r} }

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}
	var err error

	if d.MonthlyRevenue, err = s.r.MonthlyRevenue(ctx, revenueMonths); err != nil {
		return nil, err
	}
	if d.TopCars, err = s.r.TopCars(ctx, topCarLimit); err != nil {
		return nil, err
	}
	if d.Weekdays, err = s.r.BookingsByWeekday(ctx); err != nil {
		return nil, err
	}
	if d.Categories, err = s.r.CategoryDistribution(ctx); err != nil {
		return nil, err
	}
	if d.UserSignups, err = s.r.UserSignups(ctx, revenueMonths); err != nil {
		return nil, err
	}
	return d, nil
}
