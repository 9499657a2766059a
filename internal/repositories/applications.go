package repositories

import (
	"context"
	"errors"
	"github.com/maxaizer/jobboard/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

// Record stores the application once; recording it again is a no-op.
func (a Applications) Record(ctx context.Context, sessionID string, jobID string) error {
	return a.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.Application{SessionID: sessionID, JobID: jobID}).Error
}

func (a Applications) IsRecorded(ctx context.Context, sessionID string, jobID string) (bool, error) {
	var application entities.Application
	err := a.db.WithContext(ctx).
		Where("session_id = ? AND job_id = ?", sessionID, jobID).
		First(&application).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (a Applications) GetBySession(ctx context.Context, sessionID string) ([]entities.Application, error) {
	var applications []entities.Application
	if err := a.db.WithContext(ctx).Order("id").Find(&applications, "session_id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (a Applications) RemoveOldApplications(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := a.db.WithContext(ctx).Delete(&entities.Application{}, "created_at < ?", expirationTime)
	return res.RowsAffected, res.Error
}
