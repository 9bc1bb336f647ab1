package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
)

type fakeCatalogRepo struct {
	mu    sync.RWMutex
	books []*entity.VocabBook
}

func newFakeCatalogRepo(books ...*entity.VocabBook) *fakeCatalogRepo {
	return &fakeCatalogRepo{books: books}
}

func (r *fakeCatalogRepo) ListBooks(ctx context.Context) ([]*entity.VocabBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.VocabBook, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *fakeCatalogRepo) GetBook(ctx context.Context, id string) (*entity.VocabBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, entity.ErrBookNotFound
}

func (r *fakeCatalogRepo) ListWords(ctx context.Context) ([]entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var words []entity.Word
	for _, b := range r.books {
		for _, w := range b.Words {
			w.BookID = b.ID
			words = append(words, w)
		}
	}
	return words, nil
}

func (r *fakeCatalogRepo) SaveBook(ctx context.Context, book *entity.VocabBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.books {
		if b.ID == book.ID {
			r.books[i] = book
			return nil
		}
	}
	r.books = append(r.books, book)
	return nil
}

func (r *fakeCatalogRepo) DeleteBook(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.books {
		if b.ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return entity.ErrBookNotFound
}

type fakeProgressRepo struct {
	mu      sync.RWMutex
	data    map[string]entity.ProgressMap
	saveErr error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{data: make(map[string]entity.ProgressMap)}
}

func (r *fakeProgressRepo) Load(ctx context.Context, userID string) (entity.ProgressMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.data[userID]; ok {
		return m.Clone(), nil
	}
	return entity.ProgressMap{}, nil
}

func (r *fakeProgressRepo) Save(ctx context.Context, userID string, progress entity.ProgressMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userID] = progress.Clone()
	return r.saveErr
}

func (r *fakeProgressRepo) Clear(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}

func (r *fakeProgressRepo) Users(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]string, 0, len(r.data))
	for id := range r.data {
		users = append(users, id)
	}
	return users, nil
}

type fakePlanRepo struct {
	mu       sync.RWMutex
	settings map[string]*entity.PlanSettings
	days     map[string]*entity.PlanDayState
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{
		settings: make(map[string]*entity.PlanSettings),
		days:     make(map[string]*entity.PlanDayState),
	}
}

func (r *fakePlanRepo) GetSettings(ctx context.Context, userID string) (*entity.PlanSettings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings[userID].Clone(), nil
}

func (r *fakePlanRepo) SaveSettings(ctx context.Context, userID string, settings *entity.PlanSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[userID] = settings.Clone()
	return nil
}

func (r *fakePlanRepo) GetDayState(ctx context.Context, userID string) (*entity.PlanDayState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.days[userID].Clone(), nil
}

func (r *fakePlanRepo) SaveDayState(ctx context.Context, userID string, state *entity.PlanDayState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days[userID] = state.Clone()
	return nil
}

type fakeHistoryRepo struct {
	mu      sync.RWMutex
	records map[string][]*entity.TestRecord
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{records: make(map[string][]*entity.TestRecord)}
}

func (r *fakeHistoryRepo) Append(ctx context.Context, userID string, record *entity.TestRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[userID] = append(r.records[userID], record.Clone())
	return nil
}

func (r *fakeHistoryRepo) List(ctx context.Context, userID string) ([]*entity.TestRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.records[userID]
	out := make([]*entity.TestRecord, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i].Clone())
	}
	return out, nil
}

func (r *fakeHistoryRepo) Clear(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, userID)
	return nil
}

type fakeOffsetRepo struct {
	mu     sync.RWMutex
	offset time.Duration
	stored bool
}

func (r *fakeOffsetRepo) Offset(ctx context.Context) (time.Duration, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.offset, r.stored, nil
}

func (r *fakeOffsetRepo) SaveOffset(ctx context.Context, offset time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = offset
	r.stored = true
	return nil
}

func (r *fakeOffsetRepo) ClearOffset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = 0
	r.stored = false
	return nil
}

// testBook builds a catalog book whose words carry only the text.
func testBook(id string, words ...string) *entity.VocabBook {
	b := &entity.VocabBook{ID: id, Title: id}
	for _, w := range words {
		b.Words = append(b.Words, entity.Word{Word: w, Meaning: w + " meaning"})
	}
	return b
}
