package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"englearn/internal/domain"
	"englearn/internal/repository"
)

// ItemRepo implements repository.ItemRepository
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepo creates a new learning item repository
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `id, type, english, chinese, pronunciation, example_en, example_zh, audio_path, created_at`

// GetItem returns a single item by id
func (r *ItemRepo) GetItem(id int) (*domain.LearningItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM learning_items
		WHERE id = $1
	`
	item, err := scanItem(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get item %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, mapError("get item", err)
	}
	return item, nil
}

// InsertItem stores a new learning item and fills in its id
func (r *ItemRepo) InsertItem(item *domain.LearningItem) error {
	query := `
		INSERT INTO learning_items (type, english, chinese, pronunciation, example_en, example_zh, audio_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(query,
		item.Type, item.English, item.Chinese,
		item.Pronunciation, item.ExampleEN, item.ExampleZH, item.AudioPath,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return mapError("insert item", err)
	}
	return nil
}

// ListForLearning returns items with no learning record dated today,
// most recently added first
func (r *ItemRepo) ListForLearning(itemType domain.ItemType, limit int) ([]domain.LearningItem, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if itemType == domain.TypeAll {
		query := `
			SELECT li.id, li.type, li.english, li.chinese, li.pronunciation, li.example_en, li.example_zh, li.audio_path, li.created_at
			FROM learning_items li
			LEFT JOIN learning_records lr ON lr.item_id = li.id AND lr.learned_date = CURRENT_DATE
			WHERE lr.item_id IS NULL
			ORDER BY li.created_at DESC
			LIMIT $1
		`
		rows, err = r.db.Query(query, limit)
	} else {
		query := `
			SELECT li.id, li.type, li.english, li.chinese, li.pronunciation, li.example_en, li.example_zh, li.audio_path, li.created_at
			FROM learning_items li
			LEFT JOIN learning_records lr ON lr.item_id = li.id AND lr.learned_date = CURRENT_DATE
			WHERE lr.item_id IS NULL AND li.type = $1
			ORDER BY li.created_at DESC
			LIMIT $2
		`
		rows, err = r.db.Query(query, itemType, limit)
	}
	if err != nil {
		return nil, mapError("list for learning", err)
	}
	defer rows.Close()

	return collectItems(rows, "list for learning")
}

// ListRandomOutsideQueue returns a uniform random sample of items that
// have no pending review entry
func (r *ItemRepo) ListRandomOutsideQueue(limit int) ([]domain.LearningItem, error) {
	query := `
		SELECT li.id, li.type, li.english, li.chinese, li.pronunciation, li.example_en, li.example_zh, li.audio_path, li.created_at
		FROM learning_items li
		WHERE li.id NOT IN (SELECT item_id FROM review_items WHERE reviewed = FALSE)
		ORDER BY RANDOM()
		LIMIT $1
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, mapError("list random", err)
	}
	defer rows.Close()

	return collectItems(rows, "list random")
}

// CountByType returns the number of items of the given type
func (r *ItemRepo) CountByType(itemType domain.ItemType) (int, error) {
	query := `SELECT COUNT(*) FROM learning_items WHERE type = $1`

	var count int
	if err := r.db.QueryRow(query, itemType).Scan(&count); err != nil {
		return 0, mapError("count by type", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.LearningItem, error) {
	var (
		item          domain.LearningItem
		pronunciation sql.NullString
		exampleEN     sql.NullString
		exampleZH     sql.NullString
		audioPath     sql.NullString
	)

	err := row.Scan(
		&item.ID, &item.Type, &item.English, &item.Chinese,
		&pronunciation, &exampleEN, &exampleZH, &audioPath, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Pronunciation = pronunciation.String
	item.ExampleEN = exampleEN.String
	item.ExampleZH = exampleZH.String
	item.AudioPath = audioPath.String

	return &item, nil
}

func collectItems(rows *sql.Rows, op string) ([]domain.LearningItem, error) {
	var items []domain.LearningItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return items, nil
}
