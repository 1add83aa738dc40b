package memory

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"address-book/internal/model"
	"address-book/internal/repository"
)

func TestRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	records := []model.Record{
		{ID: "1", Name: "Alice", Phones: []string{"0501234567"}},
		{ID: "2", Name: "Bob"},
	}
	if err := repo.Save(ctx, "book", records); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Изменения исходного слайса не должны попадать в хранилище
	records[0].Phones[0] = "0000000000"

	loaded, err := repo.Load(ctx, " book ")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(loaded))
	}
	if loaded[0].Phones[0] != "0501234567" {
		t.Errorf("Expected stored phone to be isolated, got %q", loaded[0].Phones[0])
	}
}

func TestRepository_LoadMissing(t *testing.T) {
	_, err := NewRepository().Load(context.Background(), "missing")

	if !errors.Is(err, model.ErrPersistence) {
		t.Errorf("Expected ErrPersistence, got: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got: %v", err)
	}
}

func TestRepository_EmptyStoreName(t *testing.T) {
	repo := NewRepository()

	if err := repo.Save(context.Background(), "  ", nil); !errors.Is(err, repository.ErrEmptyStoreName) {
		t.Errorf("Expected ErrEmptyStoreName on save, got: %v", err)
	}
	if _, err := repo.Load(context.Background(), ""); !errors.Is(err, repository.ErrEmptyStoreName) {
		t.Errorf("Expected ErrEmptyStoreName on load, got: %v", err)
	}
}
