package queries

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRow struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	IsBlocked bool
	CreatedAt time.Time
}

func (r userRow) toView() (UserView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return UserView{}, err
	}
	role, err := kernel.ParseRole(r.Role)
	if err != nil {
		return UserView{}, err
	}
	return UserView{
		ID:        id,
		Name:      r.Name,
		Email:     r.Email,
		Role:      role,
		IsBlocked: r.IsBlocked,
		CreatedAt: r.CreatedAt.UTC(),
	}, nil
}

const selectUserColumns = "id, name, email, role, is_blocked, created_at"

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Caller().RequireRole(kernel.RoleAdmin); err != nil {
		return nil, err
	}

	var rows []userRow
	err := h.db.WithContext(ctx).
		Table("users").
		Select(selectUserColumns).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	users := make([]UserView, 0, len(rows))
	for _, r := range rows {
		v, viewErr := r.toView()
		if viewErr != nil {
			return nil, viewErr
		}
		users = append(users, v)
	}

	return users, nil
}

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	var rows []userRow
	err := h.db.WithContext(ctx).
		Table("users").
		Select(selectUserColumns).
		Where("id = ?", query.UserID().Bytes()).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return UserView{}, err
	}
	if len(rows) == 0 {
		return UserView{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	return rows[0].toView()
}
