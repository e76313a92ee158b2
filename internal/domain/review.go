package domain

import "time"

// ReviewEntry flags an item for priority re-study.
// At most one unreviewed entry may exist per item at any time.
type ReviewEntry struct {
	ID           int        `json:"id"`
	ItemID       int        `json:"item_id"`
	AddedDate    time.Time  `json:"added_date"`
	Reviewed     bool       `json:"reviewed"`
	ReviewedDate *time.Time `json:"reviewed_date,omitempty"`
}

// PendingReview is an unreviewed entry joined to its item
type PendingReview struct {
	Item      LearningItem `json:"item"`
	AddedDate time.Time    `json:"added_date"`
}
