package repository

import (
	"context"

	"einsatzplan/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	// List returns all users except the given usernames, ordered by
	// nachname then vorname.
	List(ctx context.Context, exclude []string) ([]model.User, error)
	ListByRole(ctx context.Context, role string) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, username string) error
	// Rename re-keys a user: insert the copy under the new name, re-point
	// all responses, delete the old row — one transaction.
	Rename(ctx context.Context, oldUsername, newUsername string) error
	SetConsent(ctx context.Context, username, name, date string) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return &u, err
}

func (r *userRepo) Exists(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

func (r *userRepo) List(ctx context.Context, exclude []string) ([]model.User, error) {
	var users []model.User
	q := r.db.WithContext(ctx).Order("nachname, vorname")
	if len(exclude) > 0 {
		q = q.Where("username NOT IN ?", exclude)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *userRepo) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) Delete(ctx context.Context, username string) error {
	// responses cascade via the FK
	return r.db.WithContext(ctx).Where("username = ?", username).
		Delete(&model.User{}).Error
}

func (r *userRepo) Rename(ctx context.Context, oldUsername, newUsername string) error {
	// The username is the primary key and the FK on responses has no
	// ON UPDATE CASCADE, so the rename is copy → re-point → delete.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old model.User
		if err := tx.Where("username = ?", oldUsername).First(&old).Error; err != nil {
			return err
		}
		clone := old
		clone.Username = newUsername
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Response{}).
			Where("username = ?", oldUsername).
			Update("username", newUsername).Error; err != nil {
			return err
		}
		return tx.Where("username = ?", oldUsername).Delete(&model.User{}).Error
	})
}

func (r *userRepo) SetConsent(ctx context.Context, username, name, date string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"consent_given": true,
			"consent_name":  name,
			"consent_date":  date,
		}).Error
}
