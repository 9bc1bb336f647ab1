package storage

import (
	"context"
	"errors"
	"sort"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if err := store.Save(ctx, "users/kid/progress", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, "users/kid/progress")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("value = %s", got)
	}

	if err := store.Delete(ctx, "users/kid/progress"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, "users/kid/progress"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err after delete = %v, want ErrNotFound", err)
	}
	// Deleting an absent key is not an error.
	if err := store.Delete(ctx, "users/kid/progress"); err != nil {
		t.Fatalf("double delete: %v", err)
	}
}

func TestMemoryStoreKeysByPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for _, key := range []string{"users/amy/progress", "users/ben/progress", "catalog/books"} {
		if err := store.Save(ctx, key, []byte("x")); err != nil {
			t.Fatalf("save %s: %v", key, err)
		}
	}
	keys, err := store.Keys(ctx, "users/")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "users/amy/progress" || keys[1] != "users/ben/progress" {
		t.Fatalf("keys = %v", keys)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte("original")
	if err := store.Save(ctx, "k", value); err != nil {
		t.Fatalf("save: %v", err)
	}
	value[0] = 'X'

	got, err := store.Load(ctx, "k")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "original" {
		t.Fatalf("stored value aliased caller's slice: %s", got)
	}
	got[0] = 'Y'
	again, _ := store.Load(ctx, "k")
	if string(again) != "original" {
		t.Fatalf("loaded value aliased store state: %s", again)
	}
}
