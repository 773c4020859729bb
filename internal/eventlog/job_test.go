package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 10*24*time.Hour)

	mockRepo.On("DeleteEventsBefore", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(100), nil)

	assert.NoError(t, job.Process(context.Background()))
	assert.Equal(t, JobNameCleanup, job.Name())
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_ProcessError(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), time.Hour)

	mockRepo.On("DeleteEventsBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	assert.Error(t, job.Process(context.Background()))
}
