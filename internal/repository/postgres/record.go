package postgres

import (
	"database/sql"
	"time"

	"englearn/internal/domain"
)

// RecordRepo implements repository.RecordRepository
type RecordRepo struct {
	db *sql.DB
}

// NewRecordRepo creates a new learning record repository
func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// UpsertRecord records one attempt on an item for today. The insert
// and the counter increment are a single statement, so concurrent
// attempts on the same (item, day) key neither race into two rows nor
// lose an increment.
func (r *RecordRepo) UpsertRecord(itemID int, correct bool) error {
	var correctInc, wrongInc int
	if correct {
		correctInc = 1
	} else {
		wrongInc = 1
	}

	query := `
		INSERT INTO learning_records (item_id, learned_date, review_count, correct_count, wrong_count)
		VALUES ($1, CURRENT_DATE, 1, $2, $3)
		ON CONFLICT (item_id, learned_date) DO UPDATE SET
			review_count = learning_records.review_count + 1,
			correct_count = learning_records.correct_count + $2,
			wrong_count = learning_records.wrong_count + $3,
			last_review = NOW()
	`
	if _, err := r.db.Exec(query, itemID, correctInc, wrongInc); err != nil {
		return mapError("upsert record", err)
	}
	return nil
}

// CountLearnedToday returns the number of distinct items with a record
// dated today
func (r *RecordRepo) CountLearnedToday() (int, error) {
	query := `
		SELECT COUNT(DISTINCT item_id)
		FROM learning_records
		WHERE learned_date = CURRENT_DATE
	`

	var count int
	if err := r.db.QueryRow(query).Scan(&count); err != nil {
		return 0, mapError("count learned today", err)
	}
	return count, nil
}

// SumTotals sums counters across all learning records
func (r *RecordRepo) SumTotals() (domain.RecordTotals, error) {
	query := `
		SELECT COALESCE(SUM(review_count), 0), COALESCE(SUM(correct_count), 0), COALESCE(SUM(wrong_count), 0)
		FROM learning_records
	`

	var totals domain.RecordTotals
	err := r.db.QueryRow(query).Scan(&totals.Reviews, &totals.Correct, &totals.Wrong)
	if err != nil {
		return domain.RecordTotals{}, mapError("sum totals", err)
	}
	return totals, nil
}

// SumByDate returns per-day aggregates for the trailing window, most
// recent day first. Days without activity produce no row.
func (r *RecordRepo) SumByDate(days int) ([]domain.DailyHistory, error) {
	query := `
		SELECT learned_date, COUNT(DISTINCT item_id), SUM(review_count), SUM(correct_count), SUM(wrong_count)
		FROM learning_records
		WHERE learned_date >= CURRENT_DATE - $1::int
		GROUP BY learned_date
		ORDER BY learned_date DESC
	`
	rows, err := r.db.Query(query, days)
	if err != nil {
		return nil, mapError("sum by date", err)
	}
	defer rows.Close()

	var history []domain.DailyHistory
	for rows.Next() {
		var h domain.DailyHistory
		if err := rows.Scan(&h.Date, &h.ItemsCount, &h.TotalReviews, &h.CorrectCount, &h.WrongCount); err != nil {
			return nil, mapError("sum by date", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("sum by date", err)
	}

	return history, nil
}

// SumToday returns the aggregate restricted to today's records
func (r *RecordRepo) SumToday() (domain.DailyHistory, error) {
	query := `
		SELECT COUNT(DISTINCT item_id), COALESCE(SUM(review_count), 0), COALESCE(SUM(correct_count), 0), COALESCE(SUM(wrong_count), 0)
		FROM learning_records
		WHERE learned_date = CURRENT_DATE
	`

	var h domain.DailyHistory
	err := r.db.QueryRow(query).Scan(&h.ItemsCount, &h.TotalReviews, &h.CorrectCount, &h.WrongCount)
	if err != nil {
		return domain.DailyHistory{}, mapError("sum today", err)
	}
	return h, nil
}

// ListDistinctLearnedDates returns every date with at least one
// record, most recent first
func (r *RecordRepo) ListDistinctLearnedDates() ([]time.Time, error) {
	query := `
		SELECT DISTINCT learned_date
		FROM learning_records
		ORDER BY learned_date DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, mapError("list learned dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, mapError("list learned dates", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list learned dates", err)
	}

	return dates, nil
}
