package usersvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/vivekranpara25/UrbanDrive/model"
	userrepo "github.com/vivekranpara25/UrbanDrive/repository/user"
	"github.com/vivekranpara25/UrbanDrive/util/hash"
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

// UpdateReq carries the admin-editable user fields. Nil means "leave as is".
type UpdateReq struct {
	Name   *string
	Phone  *string
	Role   *model.UserRole
	Status *model.UserStatus
}

type Service interface {
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, req UpdateReq) (*model.User, error)
	Delete(ctx context.Context, id int64) error

	// EnsureDefaultAdmin seeds an active admin account when none exists.
	EnsureDefaultAdmin(ctx context.Context, email, password string) error
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur: ur} }

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.ur.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateReq) (*model.User, error) {
	u, err := s.ur.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, makeErr(ErrBadInput)
		}
		u.Name = name
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		if *req.Role != model.RoleUser && *req.Role != model.RoleAdmin {
			return nil, makeErr(ErrBadInput)
		}
		u.Role = *req.Role
	}
	if req.Status != nil {
		if *req.Status != model.UserActive && *req.Status != model.UserSuspended {
			return nil, makeErr(ErrBadInput)
		}
		u.Status = *req.Status
	}

	if err := s.ur.Update(ctx, u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.ur.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	exists, err := s.ur.AdminExists(ctx)
	if err != nil || exists {
		return err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
		Status:       model.UserActive,
	}
	return s.ur.Create(ctx, admin)
}
