package testutil

import (
	"time"

	"englearn/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestItem creates a test learning item
func NewTestItem(id int, itemType domain.ItemType, english, chinese string) domain.LearningItem {
	return domain.LearningItem{
		ID:        id,
		Type:      itemType,
		English:   english,
		Chinese:   chinese,
		CreatedAt: time.Now(),
	}
}

// NewTestPending creates a pending review entry wrapping a test item
func NewTestPending(id int, english string, addedDate time.Time) domain.PendingReview {
	return domain.PendingReview{
		Item:      NewTestItem(id, domain.TypeWord, english, "译文"),
		AddedDate: addedDate,
	}
}

// NewTestUser creates a test user
func NewTestUser(id int, username string, passwordHash string) *domain.User {
	return &domain.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}
