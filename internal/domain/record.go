package domain

import (
	"math"
	"time"
)

// LearningRecord aggregates all attempts on one item on one calendar day
type LearningRecord struct {
	ItemID       int       `json:"item_id"`
	LearnedDate  time.Time `json:"learned_date"`
	ReviewCount  int       `json:"review_count"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	LastReview   time.Time `json:"last_review"`
}

// RecordTotals holds counter sums across all learning records
type RecordTotals struct {
	Reviews int
	Correct int
	Wrong   int
}

// DailyHistory is the per-day aggregate of learning activity.
// Days without activity produce no row.
type DailyHistory struct {
	Date         time.Time `json:"learned_date"`
	ItemsCount   int       `json:"items_count"`
	TotalReviews int       `json:"total_reviews"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
}

// Accuracy returns the correctness percentage rounded to two decimals,
// or 0 when there are no attempts
func Accuracy(correct, wrong int) float64 {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*10000) / 100
}
