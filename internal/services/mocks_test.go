package services

import (
	"context"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/stretchr/testify/mock"
	"time"
)

type mockPostings struct {
	mock.Mock
}

func (m *mockPostings) Save(ctx context.Context, posting models.JobPosting) error {
	args := m.Called(ctx, posting)
	return args.Error(0)
}

type mockApplications struct {
	mock.Mock
}

func (m *mockApplications) Record(ctx context.Context, sessionID string, jobID string) error {
	args := m.Called(ctx, sessionID, jobID)
	return args.Error(0)
}

func (m *mockApplications) RemoveOldApplications(ctx context.Context, expirationTime time.Time) (int64, error) {
	args := m.Called(ctx, expirationTime)
	return args.Get(0).(int64), args.Error(1)
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Load(ctx context.Context) ([]models.JobPosting, error) {
	args := m.Called(ctx)
	postings, _ := args.Get(0).([]models.JobPosting)
	return postings, args.Error(1)
}
