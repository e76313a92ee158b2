package domain

// Summary is the top-level content overview
type Summary struct {
	WordCount     int `json:"word_count"`
	PhraseCount   int `json:"phrase_count"`
	SentenceCount int `json:"sentence_count"`
	TodayLearned  int `json:"today_learned"`
}

// DetailedStats sums counters across all learning records
type DetailedStats struct {
	TotalReviews  int     `json:"total_reviews"`
	TotalCorrect  int     `json:"total_correct"`
	TotalWrong    int     `json:"total_wrong"`
	ReviewPending int     `json:"review_pending"`
	Accuracy      float64 `json:"accuracy"`
}

// TodayProgress is the daily aggregation restricted to today
type TodayProgress struct {
	LearnedCount int     `json:"learned_count"`
	ReviewCount  int     `json:"review_count"`
	CorrectCount int     `json:"correct_count"`
	WrongCount   int     `json:"wrong_count"`
	Accuracy     float64 `json:"accuracy"`
}
