package repositories

import (
	"context"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Postings struct {
	db *gorm.DB
}

func NewPostingsRepository(db *gorm.DB) *Postings {
	return &Postings{db: db}
}

// Load returns every stored posting, newest first.
func (repo *Postings) Load(ctx context.Context) ([]models.JobPosting, error) {

	var records []entities.Posting
	if err := repo.db.WithContext(ctx).Order("position DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	postings := make([]models.JobPosting, 0, len(records))
	for _, record := range records {
		posting, err := record.ToModel()
		if err != nil {
			return nil, errors.Wrapf(err, "posting %s", record.ID)
		}
		postings = append(postings, posting)
	}
	return postings, nil
}

// Save stores the posting ahead of every posting saved before it.
func (repo *Postings) Save(ctx context.Context, posting models.JobPosting) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var top int64
		if err := tx.Model(&entities.Posting{}).Select("COALESCE(MAX(position), 0)").Scan(&top).Error; err != nil {
			return err
		}
		record := entities.NewPosting(posting, top+1)
		return tx.Create(&record).Error
	})
}

func (repo *Postings) GetByID(ctx context.Context, id string) (models.JobPosting, error) {

	var record entities.Posting
	if err := repo.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.JobPosting{}, errors.Wrapf(models.ErrNotFound, "id %s", id)
		}
		return models.JobPosting{}, err
	}
	return record.ToModel()
}

func (repo *Postings) Count(ctx context.Context) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&entities.Posting{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
