package testutil

import (
	"time"

	"englearn/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock for repository.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetItem(id int) (*domain.LearningItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearningItem), args.Error(1)
}

func (m *MockItemRepository) InsertItem(item *domain.LearningItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) ListForLearning(itemType domain.ItemType, limit int) ([]domain.LearningItem, error) {
	args := m.Called(itemType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LearningItem), args.Error(1)
}

func (m *MockItemRepository) ListRandomOutsideQueue(limit int) ([]domain.LearningItem, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LearningItem), args.Error(1)
}

func (m *MockItemRepository) CountByType(itemType domain.ItemType) (int, error) {
	args := m.Called(itemType)
	return args.Int(0), args.Error(1)
}

// MockRecordRepository is a mock for repository.RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) UpsertRecord(itemID int, correct bool) error {
	args := m.Called(itemID, correct)
	return args.Error(0)
}

func (m *MockRecordRepository) CountLearnedToday() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockRecordRepository) SumTotals() (domain.RecordTotals, error) {
	args := m.Called()
	return args.Get(0).(domain.RecordTotals), args.Error(1)
}

func (m *MockRecordRepository) SumByDate(days int) ([]domain.DailyHistory, error) {
	args := m.Called(days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyHistory), args.Error(1)
}

func (m *MockRecordRepository) SumToday() (domain.DailyHistory, error) {
	args := m.Called()
	return args.Get(0).(domain.DailyHistory), args.Error(1)
}

func (m *MockRecordRepository) ListDistinctLearnedDates() ([]time.Time, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// MockReviewRepository is a mock for repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) InsertUnreviewedIfAbsent(itemID int) (bool, error) {
	args := m.Called(itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListPending(limit int) ([]domain.PendingReview, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingReview), args.Error(1)
}

func (m *MockReviewRepository) MarkReviewed(itemID int) (bool, error) {
	args := m.Called(itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) CountPending() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(username, email, passwordHash string) (int, error) {
	args := m.Called(username, email, passwordHash)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id int) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByToken(token string) (*domain.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateToken(userID int, token string) error {
	args := m.Called(userID, token)
	return args.Error(0)
}

func (m *MockUserRepository) ClearToken(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(userID int, email, avatar string) error {
	args := m.Called(userID, email, avatar)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID int, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}
