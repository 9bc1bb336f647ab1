package entity

import "strings"

// Word is a single learnable item. Identity is the word text, case-sensitive
// exact match; the engine treats words as immutable catalog input.
type Word struct {
	Word            string `json:"word"`
	Pos             string `json:"pos,omitempty"`
	Meaning         string `json:"meaning"`
	Level           string `json:"level,omitempty"`
	BookID          string `json:"book_id,omitempty"`
	Phonetic        string `json:"phonetic,omitempty"`
	AudioURL        string `json:"audio_url,omitempty"`
	Example         string `json:"example,omitempty"`
	ExampleAudioURL string `json:"example_audio_url,omitempty"`
}

// VocabBook is a named collection of words sharing a scope.
type VocabBook struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Words       []Word `json:"words"`
	BuiltIn     bool   `json:"built_in,omitempty"`
}

// WordCount reports the number of words in the book.
func (b *VocabBook) WordCount() int { return len(b.Words) }

// NormalizeWordText trims surrounding whitespace. Word identity stays
// case-sensitive, so no case folding happens here.
func NormalizeWordText(word string) string {
	return strings.TrimSpace(word)
}
