package service

import (
	"fmt"
	"testing"

	"englearn/internal/domain"
	"englearn/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestImportService_Import(t *testing.T) {
	mockItems := new(testutil.MockItemRepository)
	mockItems.On("InsertItem", mock.AnythingOfType("*domain.LearningItem")).Return(nil).Twice()

	svc := NewImportService(mockItems, testutil.NewTestLogger())

	count, err := svc.Import(domain.TypeWord, []domain.LearningItem{
		{English: "apple", Chinese: "苹果"},
		{English: "banana", Chinese: "香蕉"},
		{English: "", Chinese: "缺英文"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	mockItems.AssertExpectations(t)
}

func TestImportService_Import_UnknownType(t *testing.T) {
	svc := NewImportService(new(testutil.MockItemRepository), testutil.NewTestLogger())

	count, err := svc.Import("all", []domain.LearningItem{{English: "x", Chinese: "y"}})

	assert.Error(t, err)
	assert.Zero(t, count)
}

func TestImportService_Import_SkipsFailedInserts(t *testing.T) {
	mockItems := new(testutil.MockItemRepository)
	mockItems.On("InsertItem", mock.AnythingOfType("*domain.LearningItem")).
		Return(fmt.Errorf("db error")).Once()
	mockItems.On("InsertItem", mock.AnythingOfType("*domain.LearningItem")).
		Return(nil).Once()

	svc := NewImportService(mockItems, testutil.NewTestLogger())

	count, err := svc.Import(domain.TypePhrase, []domain.LearningItem{
		{English: "break the ice", Chinese: "打破僵局"},
		{English: "piece of cake", Chinese: "小菜一碟"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	mockItems.AssertExpectations(t)
}
