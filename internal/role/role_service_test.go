package role_test

import (
	"context"
	"testing"

	"go-assettrack/internal/role"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	findAllFn    func(ctx context.Context) ([]role.RoleRecord, error)
	findByIDFn   func(ctx context.Context, id uint) (*role.RoleRecord, error)
	createFn     func(ctx context.Context, rec *role.RoleRecord) error
	deleteFn     func(ctx context.Context, id uint) error
	countUsersFn func(ctx context.Context, roleID uint) (int64, error)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]role.RoleRecord, error) {
	return f.findAllFn(ctx)
}

func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*role.RoleRecord, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) Create(ctx context.Context, rec *role.RoleRecord) error {
	return f.createFn(ctx, rec)
}

func (f *fakeRepo) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeRepo) CountUsers(ctx context.Context, roleID uint) (int64, error) {
	return f.countUsersFn(ctx, roleID)
}

func TestRoleService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*role.RoleRecord, error) {
				assert.Equal(t, uint(2), id)
				return &role.RoleRecord{ID: 2, RoleName: "Admin", RoleDescription: "Manages company assets"}, nil
			},
		}
		svc := role.NewService(repo)

		resp, err := svc.GetByID(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Admin", resp.RoleName)
		assert.Equal(t, "Manages company assets", resp.RoleDescription)
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*role.RoleRecord, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := role.NewService(repo)

		_, err := svc.GetByID(ctx, 99)

		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
}

func TestRoleService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, rec *role.RoleRecord) error {
			rec.ID = 4
			return nil
		},
	}
	svc := role.NewService(repo)

	resp, err := svc.Create(ctx, role.CreateRoleRequest{
		RoleName:        "Auditor",
		RoleDescription: "Read only access",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(4), resp.ID)
	assert.Equal(t, "Auditor", resp.RoleName)
	assert.Equal(t, "Read only access", resp.RoleDescription)
}

func TestRoleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deleted := false
		repo := &fakeRepo{
			countUsersFn: func(ctx context.Context, roleID uint) (int64, error) {
				return 0, nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				assert.Equal(t, uint(4), id)
				deleted = true
				return nil
			},
		}
		svc := role.NewService(repo)

		err := svc.Delete(ctx, 4)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("role still assigned -> conflict", func(t *testing.T) {
		repo := &fakeRepo{
			countUsersFn: func(ctx context.Context, roleID uint) (int64, error) {
				return 3, nil
			},
		}
		svc := role.NewService(repo)

		err := svc.Delete(ctx, 2)

		assert.ErrorIs(t, err, role.ErrRoleInUse)
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		repo := &fakeRepo{
			countUsersFn: func(ctx context.Context, roleID uint) (int64, error) {
				return 0, nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				return gorm.ErrRecordNotFound
			},
		}
		svc := role.NewService(repo)

		err := svc.Delete(ctx, 99)

		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
}
