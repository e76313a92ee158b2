package postgres

import (
	"fmt"
	"testing"
	"time"

	"englearn/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestReviewRepo_InsertUnreviewedIfAbsent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		inserted bool
	}{
		{
			name:     "new entry inserted",
			affected: 1,
			inserted: true,
		},
		{
			name:     "pending entry already exists",
			affected: 0,
			inserted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewReviewRepo(db)

			mock.ExpectExec("INSERT INTO review_items").
				WithArgs(7).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			inserted, err := repo.InsertUnreviewedIfAbsent(7)

			assert.NoError(t, err)
			assert.Equal(t, tt.inserted, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepo_InsertUnreviewedIfAbsent_MissingItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReviewRepo(db)

	mock.ExpectExec("INSERT INTO review_items").
		WithArgs(999).
		WillReturnError(&pq.Error{Code: "23503"})

	inserted, err := repo.InsertUnreviewedIfAbsent(999)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepo_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReviewRepo(db)

	oldest := time.Now().AddDate(0, 0, -2)
	newest := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "type", "english", "chinese", "pronunciation",
		"example_en", "example_zh", "audio_path", "created_at", "added_date",
	}).
		AddRow(3, "word", "cat", "猫", nil, nil, nil, nil, time.Now(), oldest).
		AddRow(8, "phrase", "in a nutshell", "简而言之", nil, nil, nil, nil, time.Now(), newest)

	mock.ExpectQuery("INNER JOIN review_items ri").
		WithArgs(50).
		WillReturnRows(rows)

	pending, err := repo.ListPending(50)

	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, 3, pending[0].Item.ID)
	assert.Equal(t, oldest, pending[0].AddedDate)
	assert.Equal(t, "in a nutshell", pending[1].Item.English)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepo_ListPending_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReviewRepo(db)

	mock.ExpectQuery("INNER JOIN review_items ri").
		WithArgs(50).
		WillReturnError(fmt.Errorf("query error"))

	pending, err := repo.ListPending(50)

	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.Nil(t, pending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepo_MarkReviewed(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		changed  bool
	}{
		{
			name:     "pending entry flipped",
			affected: 1,
			changed:  true,
		},
		{
			name:     "nothing pending",
			affected: 0,
			changed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewReviewRepo(db)

			mock.ExpectExec("UPDATE review_items").
				WithArgs(7).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			changed, err := repo.MarkReviewed(7)

			assert.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepo_CountPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReviewRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM review_items WHERE reviewed = FALSE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountPending()

	assert.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
