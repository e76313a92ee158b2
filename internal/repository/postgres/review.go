package postgres

import (
	"database/sql"

	"englearn/internal/domain"
)

// ReviewRepo implements repository.ReviewRepository
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo creates a new review queue repository
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// InsertUnreviewedIfAbsent adds a pending review entry for the item.
// The partial unique index on (item_id) WHERE NOT reviewed makes the
// existence check and the insert one atomic unit; losing the race just
// means the desired end state already holds.
func (r *ReviewRepo) InsertUnreviewedIfAbsent(itemID int) (bool, error) {
	query := `
		INSERT INTO review_items (item_id)
		VALUES ($1)
		ON CONFLICT (item_id) WHERE NOT reviewed DO NOTHING
	`
	res, err := r.db.Exec(query, itemID)
	if err != nil {
		return false, mapError("enqueue review", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, mapError("enqueue review", err)
	}
	return affected > 0, nil
}

// ListPending returns unreviewed entries joined to their items, oldest
// pending first
func (r *ReviewRepo) ListPending(limit int) ([]domain.PendingReview, error) {
	query := `
		SELECT li.id, li.type, li.english, li.chinese, li.pronunciation, li.example_en, li.example_zh, li.audio_path, li.created_at, ri.added_date
		FROM learning_items li
		INNER JOIN review_items ri ON ri.item_id = li.id
		WHERE ri.reviewed = FALSE
		ORDER BY ri.added_date ASC
		LIMIT $1
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, mapError("list pending reviews", err)
	}
	defer rows.Close()

	var pending []domain.PendingReview
	for rows.Next() {
		var (
			p             domain.PendingReview
			pronunciation sql.NullString
			exampleEN     sql.NullString
			exampleZH     sql.NullString
			audioPath     sql.NullString
		)
		err := rows.Scan(
			&p.Item.ID, &p.Item.Type, &p.Item.English, &p.Item.Chinese,
			&pronunciation, &exampleEN, &exampleZH, &audioPath,
			&p.Item.CreatedAt, &p.AddedDate,
		)
		if err != nil {
			return nil, mapError("list pending reviews", err)
		}
		p.Item.Pronunciation = pronunciation.String
		p.Item.ExampleEN = exampleEN.String
		p.Item.ExampleZH = exampleZH.String
		p.Item.AudioPath = audioPath.String
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list pending reviews", err)
	}

	return pending, nil
}

// MarkReviewed flips the pending entry for the item, keeping the row
// for history. Reports whether an entry was actually changed.
func (r *ReviewRepo) MarkReviewed(itemID int) (bool, error) {
	query := `
		UPDATE review_items
		SET reviewed = TRUE, reviewed_date = NOW()
		WHERE item_id = $1 AND reviewed = FALSE
	`
	res, err := r.db.Exec(query, itemID)
	if err != nil {
		return false, mapError("mark reviewed", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, mapError("mark reviewed", err)
	}
	return affected > 0, nil
}

// CountPending returns the number of unreviewed entries
func (r *ReviewRepo) CountPending() (int, error) {
	query := `SELECT COUNT(*) FROM review_items WHERE reviewed = FALSE`

	var count int
	if err := r.db.QueryRow(query).Scan(&count); err != nil {
		return 0, mapError("count pending reviews", err)
	}
	return count, nil
}
