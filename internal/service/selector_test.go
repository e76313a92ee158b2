package service

import (
	"fmt"
	"testing"
	"time"

	"englearn/internal/domain"
	"englearn/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSelectorService_ForLearning(t *testing.T) {
	items := []domain.LearningItem{
		testutil.NewTestItem(2, domain.TypeWord, "banana", "香蕉"),
		testutil.NewTestItem(1, domain.TypeWord, "apple", "苹果"),
	}

	mockItems := new(testutil.MockItemRepository)
	mockItems.On("ListForLearning", domain.TypeWord, 10).Return(items, nil)

	svc := NewSelectorService(mockItems, new(testutil.MockReviewRepository))

	got, err := svc.ForLearning(domain.TypeWord, 10)

	assert.NoError(t, err)
	assert.Equal(t, items, got)
	mockItems.AssertExpectations(t)
}

func TestSelectorService_ForLearning_Defaults(t *testing.T) {
	mockItems := new(testutil.MockItemRepository)
	mockItems.On("ListForLearning", domain.TypeAll, 50).Return([]domain.LearningItem{}, nil)

	svc := NewSelectorService(mockItems, new(testutil.MockReviewRepository))

	_, err := svc.ForLearning("", 0)

	assert.NoError(t, err)
	mockItems.AssertExpectations(t)
}

func TestSelectorService_ForLearning_UnknownType(t *testing.T) {
	svc := NewSelectorService(new(testutil.MockItemRepository), new(testutil.MockReviewRepository))

	items, err := svc.ForLearning("verb", 10)

	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestSelectorService_ForTest_ReviewBias(t *testing.T) {
	now := time.Now()
	pending := []domain.PendingReview{
		testutil.NewTestPending(1, "oldest", now.AddDate(0, 0, -3)),
		testutil.NewTestPending(2, "older", now.AddDate(0, 0, -2)),
		testutil.NewTestPending(3, "old", now.AddDate(0, 0, -1)),
		testutil.NewTestPending(4, "recent", now),
	}
	fresh := []domain.LearningItem{
		testutil.NewTestItem(10, domain.TypeWord, "cat", "猫"),
		testutil.NewTestItem(11, domain.TypeWord, "dog", "狗"),
	}

	mockItems := new(testutil.MockItemRepository)
	mockReviews := new(testutil.MockReviewRepository)

	// Half the limit comes from the queue; the shortfall of one plus
	// the free half leaves six slots for the random pool.
	mockReviews.On("ListPending", 5).Return(pending, nil)
	mockItems.On("ListRandomOutsideQueue", 6).Return(fresh, nil)

	svc := NewSelectorService(mockItems, mockReviews)

	session, err := svc.ForTest(10)

	assert.NoError(t, err)
	assert.Len(t, session, 6)
	assert.Equal(t, "oldest", session[0].English)
	assert.Equal(t, "recent", session[3].English)
	assert.Equal(t, "cat", session[4].English)
	mockItems.AssertExpectations(t)
	mockReviews.AssertExpectations(t)
}

func TestSelectorService_ForTest_FullQueue(t *testing.T) {
	now := time.Now()
	pending := make([]domain.PendingReview, 5)
	for i := range pending {
		pending[i] = testutil.NewTestPending(i+1, fmt.Sprintf("item-%d", i+1), now.AddDate(0, 0, -5+i))
	}
	fresh := []domain.LearningItem{
		testutil.NewTestItem(20, domain.TypeWord, "fish", "鱼"),
	}

	mockItems := new(testutil.MockItemRepository)
	mockReviews := new(testutil.MockReviewRepository)

	mockReviews.On("ListPending", 5).Return(pending, nil)
	// With the review half full, no more than limit/2 slots go to the
	// random pool.
	mockItems.On("ListRandomOutsideQueue", 5).Return(fresh, nil)

	svc := NewSelectorService(mockItems, mockReviews)

	session, err := svc.ForTest(10)

	assert.NoError(t, err)
	assert.Len(t, session, 6)
	mockItems.AssertExpectations(t)
	mockReviews.AssertExpectations(t)
}

func TestSelectorService_ForTest_EmptyQueue(t *testing.T) {
	fresh := []domain.LearningItem{
		testutil.NewTestItem(1, domain.TypeWord, "cat", "猫"),
		testutil.NewTestItem(2, domain.TypeWord, "dog", "狗"),
	}

	mockItems := new(testutil.MockItemRepository)
	mockReviews := new(testutil.MockReviewRepository)

	mockReviews.On("ListPending", 10).Return([]domain.PendingReview{}, nil)
	mockItems.On("ListRandomOutsideQueue", 20).Return(fresh, nil)

	svc := NewSelectorService(mockItems, mockReviews)

	session, err := svc.ForTest(20)

	assert.NoError(t, err)
	assert.Len(t, session, 2)
	mockItems.AssertExpectations(t)
	mockReviews.AssertExpectations(t)
}

func TestSelectorService_ForTest_DefaultLimit(t *testing.T) {
	mockItems := new(testutil.MockItemRepository)
	mockReviews := new(testutil.MockReviewRepository)

	mockReviews.On("ListPending", 10).Return([]domain.PendingReview{}, nil)
	mockItems.On("ListRandomOutsideQueue", 20).Return([]domain.LearningItem{}, nil)

	svc := NewSelectorService(mockItems, mockReviews)

	session, err := svc.ForTest(0)

	assert.NoError(t, err)
	assert.Empty(t, session)
	mockReviews.AssertExpectations(t)
}

func TestSelectorService_ForTest_ReviewError(t *testing.T) {
	mockReviews := new(testutil.MockReviewRepository)
	mockReviews.On("ListPending", 5).Return(nil, fmt.Errorf("db error"))

	svc := NewSelectorService(new(testutil.MockItemRepository), mockReviews)

	session, err := svc.ForTest(10)

	assert.Error(t, err)
	assert.Nil(t, session)
	mockReviews.AssertExpectations(t)
}
