package service

import (
	"time"

	"englearn/internal/domain"
	"englearn/internal/repository"

	"go.uber.org/zap"
)

const defaultHistoryDays = 7

// StatsService provides read-only aggregation views over learning
// records and the review queue
type StatsService struct {
	items   repository.ItemRepository
	records repository.RecordRepository
	reviews repository.ReviewRepository
	logger  *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	items repository.ItemRepository,
	records repository.RecordRepository,
	reviews repository.ReviewRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		items:   items,
		records: records,
		reviews: reviews,
		logger:  logger,
	}
}

// Summary returns item counts by type plus how many distinct items
// were learned today
func (s *StatsService) Summary() (domain.Summary, error) {
	var summary domain.Summary
	var err error

	if summary.WordCount, err = s.items.CountByType(domain.TypeWord); err != nil {
		return domain.Summary{}, err
	}
	if summary.PhraseCount, err = s.items.CountByType(domain.TypePhrase); err != nil {
		return domain.Summary{}, err
	}
	if summary.SentenceCount, err = s.items.CountByType(domain.TypeSentence); err != nil {
		return domain.Summary{}, err
	}
	if summary.TodayLearned, err = s.records.CountLearnedToday(); err != nil {
		return domain.Summary{}, err
	}

	return summary, nil
}

// Detailed sums counters across all learning records and counts
// pending reviews
func (s *StatsService) Detailed() (domain.DetailedStats, error) {
	totals, err := s.records.SumTotals()
	if err != nil {
		return domain.DetailedStats{}, err
	}

	pending, err := s.reviews.CountPending()
	if err != nil {
		return domain.DetailedStats{}, err
	}

	return domain.DetailedStats{
		TotalReviews:  totals.Reviews,
		TotalCorrect:  totals.Correct,
		TotalWrong:    totals.Wrong,
		ReviewPending: pending,
		Accuracy:      domain.Accuracy(totals.Correct, totals.Wrong),
	}, nil
}

// History returns per-day aggregates for the trailing window, most
// recent day first. Days without activity are omitted.
func (s *StatsService) History(days int) ([]domain.DailyHistory, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}
	return s.records.SumByDate(days)
}

// TodayProgress returns the aggregation restricted to today
func (s *StatsService) TodayProgress() (domain.TodayProgress, error) {
	today, err := s.records.SumToday()
	if err != nil {
		return domain.TodayProgress{}, err
	}

	return domain.TodayProgress{
		LearnedCount: today.ItemsCount,
		ReviewCount:  today.TotalReviews,
		CorrectCount: today.CorrectCount,
		WrongCount:   today.WrongCount,
		Accuracy:     domain.Accuracy(today.CorrectCount, today.WrongCount),
	}, nil
}

// Streak returns the number of consecutive learning days ending today.
// A learner who studied yesterday but not yet today has a streak of 0.
func (s *StatsService) Streak() (int, error) {
	dates, err := s.records.ListDistinctLearnedDates()
	if err != nil {
		return 0, err
	}
	return domain.Streak(dates, time.Now()), nil
}
