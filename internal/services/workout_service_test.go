package services_test

import (
	"testing"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWorkoutRepository is a mock implementation of repositories.WorkoutRepository.
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(entry *models.WorkoutEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWorkoutRepository) ListByDate(userID uint, date string) ([]models.WorkoutEntry, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkoutEntry), args.Error(1)
}

func (m *MockWorkoutRepository) UpdateWeight(userID, id uint, weight float64) error {
	args := m.Called(userID, id, weight)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

// fixedClock pins "today" to 2024-01-02 for date-defaulting tests.
func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
}

func TestWorkoutService_LogWorkout(t *testing.T) {
	mockRepo := new(MockWorkoutRepository)
	service := services.NewWorkoutService(mockRepo, nil, fixedClock)

	// Explicit date is passed through untouched.
	mockRepo.On("Create", mock.MatchedBy(func(e *models.WorkoutEntry) bool {
		return e.UserID == 1 && e.Date == "2024-01-01" && e.WorkoutDay == 1 &&
			e.ExerciseName == "Deadlifts" && e.Weight == 100
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.WorkoutEntry).ID = 5
	}).Return(nil).Once()

	entry, err := service.LogWorkout(1, "2024-01-01", 1, "Deadlifts", 100)
	assert.NoError(t, err)
	assert.Equal(t, uint(5), entry.ID)
	mockRepo.AssertExpectations(t)

	// Empty date defaults to the injected clock's today.
	mockRepo.On("Create", mock.MatchedBy(func(e *models.WorkoutEntry) bool {
		return e.Date == "2024-01-02"
	})).Return(nil).Once()

	entry, err = service.LogWorkout(1, "", 2, "Overhead Press", 40)
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-02", entry.Date)
	mockRepo.AssertExpectations(t)
}

func TestWorkoutService_ListForDate(t *testing.T) {
	mockRepo := new(MockWorkoutRepository)
	service := services.NewWorkoutService(mockRepo, nil, fixedClock)

	expected := []models.WorkoutEntry{
		{ID: 1, UserID: 1, Date: "2024-01-02", WorkoutDay: 1, ExerciseName: "Deadlifts", Weight: 100},
	}

	// Date query defaults to today as well.
	mockRepo.On("ListByDate", uint(1), "2024-01-02").Return(expected, nil).Once()
	entries, err := service.ListForDate(1, "")
	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
	mockRepo.AssertExpectations(t)
}

func TestWorkoutService_UpdateAndDelete(t *testing.T) {
	mockRepo := new(MockWorkoutRepository)
	service := services.NewWorkoutService(mockRepo, nil, fixedClock)

	mockRepo.On("UpdateWeight", uint(1), uint(5), 105.0).Return(nil).Once()
	assert.NoError(t, service.UpdateWeight(1, 5, 105))

	// Not-found propagates unchanged, whether the id is missing or
	// owned by another user.
	mockRepo.On("UpdateWeight", uint(2), uint(5), 105.0).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.UpdateWeight(2, 5, 105), repositories.ErrNotFound)

	mockRepo.On("Delete", uint(1), uint(5)).Return(nil).Once()
	assert.NoError(t, service.Delete(1, 5))

	mockRepo.On("Delete", uint(1), uint(99)).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.Delete(1, 99), repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
