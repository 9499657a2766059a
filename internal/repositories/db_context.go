package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/maxaizer/jobboard/internal/seed"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.Posting{})
	if err != nil {
		return fmt.Errorf("failed to migrate Posting entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Application{})
	if err != nil {
		return fmt.Errorf("failed to migrate Application entity: %w", err)
	}

	var postingsCount int64
	if err = c.DB.Model(entities.Posting{}).Count(&postingsCount).Error; err != nil {
		return fmt.Errorf("failed to count postings: %w", err)
	}

	if postingsCount == 0 {
		if err = c.PopulatePostings(); err != nil {
			return fmt.Errorf("failed to populate postings: %w", err)
		}
	}

	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_session_job_id ON applications (session_id, job_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	return nil
}

// PopulatePostings stores the bundled demo postings, keeping their feed order.
func (c *DbContext) PopulatePostings() error {
	postings, err := seed.Postings(time.Now())
	if err != nil {
		return fmt.Errorf("failed to read bundled postings: %w", err)
	}

	var records []entities.Posting

	for i, posting := range postings {
		records = append(records, entities.NewPosting(posting, int64(len(postings)-i)))
	}

	if err = c.DB.Create(records).Error; err != nil {
		return fmt.Errorf("failed to create postings in the database: %w", err)
	}
	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
