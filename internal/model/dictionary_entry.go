package model

import "time"

// DictionaryEntry is a single definition of a word. A word may have several
// definitions, but the same (word, definition) pair is stored once.
type DictionaryEntry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Word       string    `json:"word" gorm:"size:255;not null;index;uniqueIndex:idx_word_definition"`
	Definition string    `json:"definition" gorm:"size:255;not null;uniqueIndex:idx_word_definition"`
	CreatedAt  time.Time `json:"created_at"`
}
