package repository

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/storage"
)

// failingStore wraps a MemoryStore and fails every Save, to exercise the
// write-through contract: the in-memory view keeps the mutation, the caller
// sees ErrPersistence.
type failingStore struct {
	*storage.MemoryStore
}

func (s *failingStore) Save(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestProgressRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewProgressRepository(store)
	ctx := context.Background()

	loaded, err := repo.Load(ctx, "kid")
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty map, got %v", loaded)
	}

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	progress := entity.ProgressMap{
		"apple": {Status: entity.StatusLearning, Stage: 2, NextReviewAt: now.Add(12 * time.Hour), LastInteractionAt: now, ErrorCount: 1},
	}
	if err := repo.Save(ctx, "kid", progress); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A fresh repository over the same store must see the snapshot.
	reloaded, err := NewProgressRepository(store).Load(ctx, "kid")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	p := reloaded["apple"]
	if p == nil || p.Stage != 2 || p.ErrorCount != 1 || !p.NextReviewAt.Equal(now.Add(12*time.Hour)) {
		t.Fatalf("reloaded = %+v", p)
	}
}

func TestProgressLoadReturnsCopy(t *testing.T) {
	repo := NewProgressRepository(storage.NewMemoryStore())
	ctx := context.Background()

	if err := repo.Save(ctx, "kid", entity.ProgressMap{"a": {Status: entity.StatusLearning, Stage: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, _ := repo.Load(ctx, "kid")
	first["a"].Stage = 99
	second, _ := repo.Load(ctx, "kid")
	if second["a"].Stage != 1 {
		t.Fatal("mutating a loaded map leaked into repository state")
	}
}

func TestProgressSaveFailureKeepsMutation(t *testing.T) {
	repo := NewProgressRepository(&failingStore{storage.NewMemoryStore()})
	ctx := context.Background()

	err := repo.Save(ctx, "kid", entity.ProgressMap{"a": {Status: entity.StatusLearning, Stage: 1}})
	if !errors.Is(err, entity.ErrPersistence) {
		t.Fatalf("err = %v, want ErrPersistence", err)
	}
	// The write-through cache holds the mutation regardless.
	loaded, loadErr := repo.Load(ctx, "kid")
	if loadErr != nil {
		t.Fatalf("load: %v", loadErr)
	}
	if loaded["a"] == nil || loaded["a"].Stage != 1 {
		t.Fatalf("mutation lost on failed persist: %v", loaded)
	}
}

func TestProgressUsers(t *testing.T) {
	repo := NewProgressRepository(storage.NewMemoryStore())
	ctx := context.Background()
	for _, id := range []string{"amy", "ben"} {
		if err := repo.Save(ctx, id, entity.ProgressMap{"a": {Status: entity.StatusLearning}}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	users, err := repo.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	sort.Strings(users)
	if len(users) != 2 || users[0] != "amy" || users[1] != "ben" {
		t.Fatalf("users = %v", users)
	}
}

func TestPlanSettingsAndDayState(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewPlanRepository(store)
	ctx := context.Background()

	if settings, err := repo.GetSettings(ctx, "kid"); err != nil || settings != nil {
		t.Fatalf("no plan yet: %v, %v", settings, err)
	}

	settings := &entity.PlanSettings{
		ID:            "p1",
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		SelectedBooks: []string{"b1"},
		PacingMode:    entity.PaceByDailyCount,
		DailyLimit:    5,
		Order:         entity.OrderAlphabetical,
	}
	if err := repo.SaveSettings(ctx, "kid", settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if err := repo.SaveDayState(ctx, "kid", &entity.PlanDayState{DayKey: "2026-03-01", NewWordsLearned: 2, TodaysMistakes: []string{"a"}}); err != nil {
		t.Fatalf("save day: %v", err)
	}

	fresh := NewPlanRepository(store)
	got, err := fresh.GetSettings(ctx, "kid")
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got.ID != "p1" || got.DailyLimit != 5 || len(got.SelectedBooks) != 1 {
		t.Fatalf("settings = %+v", got)
	}
	day, err := fresh.GetDayState(ctx, "kid")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if day.NewWordsLearned != 2 || !day.HasMistake("a") {
		t.Fatalf("day = %+v", day)
	}
}

func TestHistoryAppendAndOrder(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewHistoryRepository(store)
	ctx := context.Background()

	for i, id := range []string{"t1", "t2", "t3"} {
		record := &entity.TestRecord{
			ID:        id,
			CreatedAt: time.Date(2026, 3, 1, 9+i, 0, 0, 0, time.UTC),
			Scope:     "all-learned",
			WordCount: 10,
			Score:     7 + i,
		}
		if err := repo.Append(ctx, "kid", record); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := NewHistoryRepository(store).List(ctx, "kid")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 || records[0].ID != "t3" || records[2].ID != "t1" {
		t.Fatalf("order = %v", records)
	}

	if err := repo.Clear(ctx, "kid"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if records, _ := repo.List(ctx, "kid"); len(records) != 0 {
		t.Fatalf("history survived clear: %v", records)
	}
}

func TestCatalogBooks(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewCatalogRepository(store)
	ctx := context.Background()

	book := &entity.VocabBook{
		ID:    "animals",
		Title: "Animals",
		Words: []entity.Word{{Word: "cat", Meaning: "a small pet"}, {Word: "dog", Meaning: "a loyal pet"}},
	}
	if err := repo.SaveBook(ctx, book); err != nil {
		t.Fatalf("save book: %v", err)
	}

	words, err := NewCatalogRepository(store).ListWords(ctx)
	if err != nil {
		t.Fatalf("list words: %v", err)
	}
	if len(words) != 2 || words[0].BookID != "animals" {
		t.Fatalf("words = %v", words)
	}

	if _, err := repo.GetBook(ctx, "plants"); !errors.Is(err, entity.ErrBookNotFound) {
		t.Fatalf("err = %v, want ErrBookNotFound", err)
	}
	if err := repo.DeleteBook(ctx, "animals"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteBook(ctx, "animals"); !errors.Is(err, entity.ErrBookNotFound) {
		t.Fatalf("double delete err = %v, want ErrBookNotFound", err)
	}
}

func TestTimeOffsetRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewTimeOffsetRepository(store)
	ctx := context.Background()

	if _, ok, err := repo.Offset(ctx); err != nil || ok {
		t.Fatalf("fresh offset: ok=%v err=%v", ok, err)
	}
	if err := repo.SaveOffset(ctx, 72*time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	offset, ok, err := NewTimeOffsetRepository(store).Offset(ctx)
	if err != nil || !ok || offset != 72*time.Hour {
		t.Fatalf("offset = %v ok=%v err=%v", offset, ok, err)
	}
	if err := repo.ClearOffset(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := repo.Offset(ctx); ok {
		t.Fatal("offset survived clear")
	}
}
