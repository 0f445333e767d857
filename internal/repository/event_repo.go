package repository

import (
	"context"

	"einsatzplan/internal/model"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, e *model.Event) error
	FindByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	// CreateBatch inserts all events in one transaction; either every
	// clone of a duplication lands or none does.
	CreateBatch(ctx context.Context, events []model.Event) error
	Update(ctx context.Context, e *model.Event) error
	// SetStatus returns the number of affected rows so callers can
	// distinguish "not found" from a no-op update.
	SetStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type eventRepo struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) EventRepository { return &eventRepo{db: db} }

func (r *eventRepo) Create(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepo) FindByID(ctx context.Context, id string) (*model.Event, error) {
	var e model.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	return &e, err
}

func (r *eventRepo) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Find(&events).Error
	return events, err
}

func (r *eventRepo) CreateBatch(ctx context.Context, events []model.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&events).Error
	})
}

func (r *eventRepo) Update(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *eventRepo) SetStatus(ctx context.Context, id, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	// responses cascade via the FK
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{}).Error
}
