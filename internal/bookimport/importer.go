// Package bookimport loads vocabulary books from spreadsheet or JSON files
// into the catalog format. It only parses; persisting the book is the
// caller's job.
package bookimport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
)

// Config defines the import configuration for one book.
type Config struct {
	FilePath    string // Path to the xlsx or JSON file
	BookID      string // Catalog id for the book
	Title       string // Display title; defaults to BookID
	Description string
	SheetName   string // Sheet to read, xlsx only
	StartRow    int    // 1-based first data row, xlsx only

	WordColumn     string // Column with the word
	MeaningColumn  string // Column with the meaning
	PosColumn      string // Column with the part of speech
	PhoneticColumn string // Column with the phonetic spelling
	ExampleColumn  string // Column with the example sentence
}

// DefaultConfig returns the stock column layout.
func DefaultConfig(path, bookID string) Config {
	return Config{
		FilePath:       path,
		BookID:         bookID,
		Title:          bookID,
		SheetName:      "Sheet1",
		StartRow:       2, // skip the header row
		WordColumn:     "A",
		MeaningColumn:  "B",
		PosColumn:      "C",
		PhoneticColumn: "D",
		ExampleColumn:  "E",
	}
}

// Result holds the outcome of an import operation.
type Result struct {
	TotalRows int
	Imported  int
	Skipped   int
	Errors    []string
}

// Load parses the configured file into a vocabulary book. Rows without a word
// or meaning are skipped and reported, never fatal.
func Load(cfg Config) (*entity.VocabBook, *Result, error) {
	if cfg.BookID == "" {
		return nil, nil, fmt.Errorf("%w: book id required", entity.ErrInvalidArgument)
	}
	if strings.ToLower(filepath.Ext(cfg.FilePath)) == ".json" {
		return loadJSON(cfg)
	}
	return loadExcel(cfg)
}

func loadJSON(cfg Config) (*entity.VocabBook, *Result, error) {
	raw, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read book file: %w", err)
	}
	var words []entity.Word
	if err := json.Unmarshal(raw, &words); err != nil {
		// Allow a full book document as well as a bare word list.
		var book entity.VocabBook
		if err := json.Unmarshal(raw, &book); err != nil {
			return nil, nil, fmt.Errorf("decode book file: %w", err)
		}
		words = book.Words
	}

	result := &Result{TotalRows: len(words)}
	book := newBook(cfg)
	for i, w := range words {
		w.Word = entity.NormalizeWordText(w.Word)
		if w.Word == "" || w.Meaning == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("entry %d: word and meaning required", i+1))
			continue
		}
		w.BookID = cfg.BookID
		book.Words = append(book.Words, w)
		result.Imported++
	}
	return book, result, nil
}

func loadExcel(cfg Config) (*entity.VocabBook, *Result, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", cfg.SheetName, err)
	}

	result := &Result{}
	book := newBook(cfg)
	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		result.TotalRows++

		word := entity.Word{
			Word:     entity.NormalizeWordText(cell(row, cfg.WordColumn)),
			Meaning:  strings.TrimSpace(cell(row, cfg.MeaningColumn)),
			Pos:      strings.TrimSpace(cell(row, cfg.PosColumn)),
			Phonetic: strings.TrimSpace(cell(row, cfg.PhoneticColumn)),
			Example:  strings.TrimSpace(cell(row, cfg.ExampleColumn)),
			BookID:   cfg.BookID,
		}
		if word.Word == "" || word.Meaning == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: word and meaning required", i+1))
			continue
		}
		book.Words = append(book.Words, word)
		result.Imported++
	}
	return book, result, nil
}

func newBook(cfg Config) *entity.VocabBook {
	title := cfg.Title
	if title == "" {
		title = cfg.BookID
	}
	return &entity.VocabBook{
		ID:          cfg.BookID,
		Title:       title,
		Description: cfg.Description,
	}
}

func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// columnToIndex converts an Excel column letter to a zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
