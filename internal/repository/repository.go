package repository

import (
	"time"

	"englearn/internal/domain"
)

// ItemRepository defines learning item data operations
type ItemRepository interface {
	GetItem(id int) (*domain.LearningItem, error)
	InsertItem(item *domain.LearningItem) error
	// ListForLearning returns items without a record for today, newest
	// first. TypeAll disables the type filter.
	ListForLearning(itemType domain.ItemType, limit int) ([]domain.LearningItem, error)
	// ListRandomOutsideQueue returns a uniform random sample of items
	// that have no pending review entry.
	ListRandomOutsideQueue(limit int) ([]domain.LearningItem, error)
	CountByType(itemType domain.ItemType) (int, error)
}

// RecordRepository defines learning record data operations
type RecordRepository interface {
	// UpsertRecord atomically creates or increments the record for
	// (itemID, today).
	UpsertRecord(itemID int, correct bool) error
	CountLearnedToday() (int, error)
	SumTotals() (domain.RecordTotals, error)
	SumByDate(days int) ([]domain.DailyHistory, error)
	SumToday() (domain.DailyHistory, error)
	ListDistinctLearnedDates() ([]time.Time, error)
}

// ReviewRepository defines review queue data operations
type ReviewRepository interface {
	// InsertUnreviewedIfAbsent adds a pending entry unless one already
	// exists for the item; reports whether a row was inserted.
	InsertUnreviewedIfAbsent(itemID int) (bool, error)
	ListPending(limit int) ([]domain.PendingReview, error)
	// MarkReviewed flips the pending entry for the item and reports
	// whether a row was actually changed.
	MarkReviewed(itemID int) (bool, error)
	CountPending() (int, error)
}

// UserRepository defines user account data operations
type UserRepository interface {
	CreateUser(username, email, passwordHash string) (int, error)
	GetUserByID(id int) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByToken(token string) (*domain.User, error)
	UpdateToken(userID int, token string) error
	ClearToken(userID int) error
	UpdateProfile(userID int, email, avatar string) error
	UpdatePassword(userID int, passwordHash string) error
}
