package usersvc

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivekranpara25/UrbanDrive/model"
	userrepo "github.com/vivekranpara25/UrbanDrive/repository/user"
)

type mockRepo struct {
	byIDFn        func(ctx context.Context, id int64) (*model.User, error)
	updateFn      func(ctx context.Context, u *model.User) error
	deleteFn      func(ctx context.Context, id int64) (bool, error)
	adminExistsFn func(ctx context.Context) (bool, error)
	createFn      func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}
func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, sql.ErrNoRows
}
func (m *mockRepo) ByID(ctx context.Context, id int64) (*model.User, error) {
	return m.byIDFn(ctx, id)
}
func (m *mockRepo) List(ctx context.Context) ([]model.User, error) { return nil, nil }
func (m *mockRepo) Update(ctx context.Context, u *model.User) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, u)
}
func (m *mockRepo) Delete(ctx context.Context, id int64) (bool, error) { return m.deleteFn(ctx, id) }
func (m *mockRepo) AdminExists(ctx context.Context) (bool, error) {
	if m.adminExistsFn == nil {
		return false, nil
	}
	return m.adminExistsFn(ctx)
}

func strp(s string) *string                      { return &s }
func rolep(r model.UserRole) *model.UserRole     { return &r }
func statp(s model.UserStatus) *model.UserStatus { return &s }

func TestUpdate_PartialFields(t *testing.T) {
	var saved *model.User
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "Old", Phone: "111", Role: model.RoleUser, Status: model.UserActive}, nil
		},
		updateFn: func(ctx context.Context, u *model.User) error { saved = u; return nil },
	}
	svc := New(m)

	u, err := svc.Update(context.Background(), 3, UpdateReq{
		Status: statp(model.UserSuspended),
	})
	require.NoError(t, err)
	require.Equal(t, model.UserSuspended, u.Status)
	require.Equal(t, "Old", u.Name)
	require.NotNil(t, saved)
	require.Equal(t, model.UserSuspended, saved.Status)
}

func TestUpdate_PromoteToAdmin(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "U", Role: model.RoleUser, Status: model.UserActive}, nil
		},
	}
	svc := New(m)

	u, err := svc.Update(context.Background(), 3, UpdateReq{Role: rolep(model.RoleAdmin)})
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, u.Role)
}

func TestUpdate_BadRole(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "U"}, nil
		},
	}
	svc := New(m)

	_, err := svc.Update(context.Background(), 3, UpdateReq{Role: rolep("superuser")})
	require.Equal(t, ErrBadInput, Code(err))
}

func TestUpdate_EmptyName(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "U"}, nil
		},
	}
	svc := New(m)

	_, err := svc.Update(context.Background(), 3, UpdateReq{Name: strp("  ")})
	require.Equal(t, ErrBadInput, Code(err))
}

func TestUpdate_NotFound(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := New(m)

	_, err := svc.Update(context.Background(), 404, UpdateReq{Name: strp("X")})
	require.Equal(t, ErrNotFound, Code(err))
}

func TestDelete_NotFound(t *testing.T) {
	m := &mockRepo{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	svc := New(m)

	err := svc.Delete(context.Background(), 404)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestEnsureDefaultAdmin_SeedsOnce(t *testing.T) {
	var created *model.User
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error { created = u; return nil },
	}
	svc := New(m)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "admin@rentcar.com", "admin123"))
	require.NotNil(t, created)
	require.Equal(t, model.RoleAdmin, created.Role)
	require.Equal(t, model.UserActive, created.Status)
	require.NotEqual(t, "admin123", created.PasswordHash)
}

func TestEnsureDefaultAdmin_NoopWhenPresent(t *testing.T) {
	m := &mockRepo{
		adminExistsFn: func(ctx context.Context) (bool, error) { return true, nil },
		createFn: func(ctx context.Context, u *model.User) error {
			t.Fatal("should not create a second admin")
			return nil
		},
	}
	svc := New(m)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "admin@rentcar.com", "admin123"))
}
