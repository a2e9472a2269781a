package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ domain.UserRepository = (*UserRepository)(nil)

// GetByUsername matches the username exactly, case included.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (_ *domain.User, err error) {
	ctx, span := startSpan(ctx, "UserRepository.GetByUsername")
	defer func() {
		if errors.Is(err, domain.ErrNotFound) {
			finish(span, nil)
			return
		}
		finish(span, err)
	}()

	var u domain.User
	if err = r.db.WithContext(ctx).Where("username = ?", username).Take(&u).Error; err != nil {
		return nil, translate("get user", err, domain.ErrUserNotFound, nil)
	}
	return &u, nil
}

// Upsert stores u, replacing the digest of an existing user with the same name.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) (err error) {
	ctx, span := startSpan(ctx, "UserRepository.Upsert")
	defer func() { finish(span, err) }()

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"password"}),
		}).
		Create(u).Error
	return translate("upsert user", err, nil, nil)
}
