package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/storage"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
)

type catalogRepository struct {
	store storage.Store

	mu    sync.Mutex
	books []*entity.VocabBook
	ready bool
}

// NewCatalogRepository constructs a store-backed catalog repository. The
// catalog is process-wide: one blob holding every book.
func NewCatalogRepository(store storage.Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

func (r *catalogRepository) ListBooks(ctx context.Context) ([]*entity.VocabBook, error) {
	books, err := r.ensure(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.VocabBook, len(books))
	for i, b := range books {
		copy := *b
		copy.Words = append([]entity.Word(nil), b.Words...)
		out[i] = &copy
	}
	return out, nil
}

func (r *catalogRepository) GetBook(ctx context.Context, id string) (*entity.VocabBook, error) {
	books, err := r.ensure(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if b.ID == id {
			copy := *b
			copy.Words = append([]entity.Word(nil), b.Words...)
			return &copy, nil
		}
	}
	return nil, entity.ErrBookNotFound
}

func (r *catalogRepository) ListWords(ctx context.Context) ([]entity.Word, error) {
	books, err := r.ensure(ctx)
	if err != nil {
		return nil, err
	}
	var words []entity.Word
	for _, b := range books {
		for _, w := range b.Words {
			w.BookID = b.ID
			words = append(words, w)
		}
	}
	return words, nil
}

func (r *catalogRepository) SaveBook(ctx context.Context, book *entity.VocabBook) error {
	books, err := r.ensure(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	replaced := false
	for i, b := range books {
		if b.ID == book.ID {
			books[i] = book
			replaced = true
			break
		}
	}
	if !replaced {
		books = append(books, book)
	}
	r.books = books
	r.mu.Unlock()

	return r.flush(ctx)
}

func (r *catalogRepository) DeleteBook(ctx context.Context, id string) error {
	books, err := r.ensure(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	kept := books[:0]
	found := false
	for _, b := range books {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	r.books = kept
	r.mu.Unlock()

	if !found {
		return entity.ErrBookNotFound
	}
	return r.flush(ctx)
}

func (r *catalogRepository) ensure(ctx context.Context) ([]*entity.VocabBook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		return r.books, nil
	}

	raw, err := r.store.Load(ctx, catalogKey)
	if errors.Is(err, storage.ErrNotFound) {
		r.ready = true
		return r.books, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := json.Unmarshal(raw, &r.books); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	r.ready = true
	return r.books, nil
}

func (r *catalogRepository) flush(ctx context.Context) error {
	r.mu.Lock()
	raw, err := json.Marshal(r.books)
	r.mu.Unlock()
	if err != nil {
		return persistErr(err)
	}
	if err := r.store.Save(ctx, catalogKey, raw); err != nil {
		return persistErr(err)
	}
	return nil
}
