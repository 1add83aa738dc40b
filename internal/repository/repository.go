package repository

import (
	"context"
	"errors"

	"address-book/internal/model"
)

// ContactRepository интерфейс для работы с именованными хранилищами контактов
type ContactRepository interface {
	// Save целиком записывает список контактов в хранилище с именем store
	Save(ctx context.Context, store string, records []model.Record) error

	// Load читает все контакты из хранилища с именем store.
	// При любой ошибке не возвращает ни одного контакта.
	Load(ctx context.Context, store string) ([]model.Record, error)
}

// ErrEmptyStoreName возвращается, когда имя хранилища не задано
var ErrEmptyStoreName = errors.New("store name cannot be empty")
