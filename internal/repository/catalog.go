package repository

import (
	"context"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
)

// CatalogRepository provides the process-wide word catalog: built-in books
// plus user-authored ones. The engine treats the catalog as read-only input;
// writes only happen through the import surface.
type CatalogRepository interface {
	ListBooks(ctx context.Context) ([]*entity.VocabBook, error)
	GetBook(ctx context.Context, id string) (*entity.VocabBook, error)
	// ListWords flattens every book into a single slice with BookID stamped
	// on each word.
	ListWords(ctx context.Context) ([]entity.Word, error)
	SaveBook(ctx context.Context, book *entity.VocabBook) error
	DeleteBook(ctx context.Context, id string) error
}
