package repository

import (
	"context"

	"einsatzplan/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository interface {
	Find(ctx context.Context, eventID, username string) (*model.Response, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Response, error)
	ListAll(ctx context.Context) ([]model.Response, error)
	Create(ctx context.Context, resp *model.Response) error
	// SetStatus updates the pair's status and returns the affected row
	// count (0 = no response row exists yet).
	SetStatus(ctx context.Context, eventID, username string, status model.ResponseStatus) (int64, error)
	SetStatusRemark(ctx context.Context, eventID, username string, status model.ResponseStatus, remark string) error
	SetEndTime(ctx context.Context, eventID, username, endTime string) error
	// EditEntry applies the manager edit: empty time values keep the prior
	// ones, remark and rate_override are overwritten.
	EditEntry(ctx context.Context, eventID, username, startTime, endTime, remark string, rateOverride *float64) error
}

type responseRepo struct{ db *gorm.DB }

func NewResponseRepository(db *gorm.DB) ResponseRepository { return &responseRepo{db: db} }

func (r *responseRepo) Find(ctx context.Context, eventID, username string) (*model.Response, error) {
	var resp model.Response
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND username = ?", eventID, username).
		First(&resp).Error
	return &resp, err
}

func (r *responseRepo) ListByEvent(ctx context.Context, eventID string) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&responses).Error
	return responses, err
}

func (r *responseRepo) ListAll(ctx context.Context) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.WithContext(ctx).Find(&responses).Error
	return responses, err
}

func (r *responseRepo) Create(ctx context.Context, resp *model.Response) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

func (r *responseRepo) SetStatus(ctx context.Context, eventID, username string, status model.ResponseStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Response{}).
		Where("event_id = ? AND username = ?", eventID, username).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *responseRepo) SetStatusRemark(ctx context.Context, eventID, username string, status model.ResponseStatus, remark string) error {
	return r.db.WithContext(ctx).Model(&model.Response{}).
		Where("event_id = ? AND username = ?", eventID, username).
		Updates(map[string]any{"status": status, "remark": remark}).Error
}

func (r *responseRepo) SetEndTime(ctx context.Context, eventID, username, endTime string) error {
	return r.db.WithContext(ctx).Model(&model.Response{}).
		Where("event_id = ? AND username = ?", eventID, username).
		Update("end_time", endTime).Error
}

func (r *responseRepo) EditEntry(ctx context.Context, eventID, username, startTime, endTime, remark string, rateOverride *float64) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE responses SET
		  start_time    = COALESCE(NULLIF(?, ''), start_time),
		  end_time      = COALESCE(NULLIF(?, ''), end_time),
		  remark        = ?,
		  rate_override = ?,
		  updated_at    = NOW()
		WHERE event_id = ? AND username = ?`,
		startTime, endTime, remark, rateOverride, eventID, username).Error
}
