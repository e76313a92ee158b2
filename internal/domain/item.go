package domain

import "time"

// ItemType classifies a learning item
type ItemType string

const (
	TypeWord     ItemType = "word"
	TypePhrase   ItemType = "phrase"
	TypeSentence ItemType = "sentence"

	// TypeAll is a filter value meaning "any type", never stored
	TypeAll ItemType = "all"
)

// Valid reports whether the type is storable
func (t ItemType) Valid() bool {
	switch t {
	case TypeWord, TypePhrase, TypeSentence:
		return true
	}
	return false
}

// LearningItem is a unit of study content, immutable once created
type LearningItem struct {
	ID            int       `json:"id"`
	Type          ItemType  `json:"type"`
	English       string    `json:"english"`
	Chinese       string    `json:"chinese"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	ExampleEN     string    `json:"example_en,omitempty"`
	ExampleZH     string    `json:"example_zh,omitempty"`
	AudioPath     string    `json:"audio_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
