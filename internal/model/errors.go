package model

import (
	"errors"
	"fmt"
)

// Базовые ошибки адресной книги, проверяются через errors.Is
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("contact not found")
	ErrInvalidCategory  = errors.New("invalid search category")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrDuplicateName    = errors.New("contact name already exists")
	ErrPersistence      = errors.New("persistence failure")
)

// ValidationError описывает некорректное значение одного поля контакта
type ValidationError struct {
	Field  string // Имя поля (name, phones, birthday, ...)
	Value  string // Исходное значение, введенное пользователем
	Reason string // Причина отказа
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is позволяет сравнивать ошибку с ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PersistenceError описывает ошибку сохранения или загрузки хранилища
type PersistenceError struct {
	Op    string // save или load
	Store string // Имя хранилища, переданное пользователем
	Path  string // Путь, в который было разрешено имя (может быть пустым)
	Err   error  // Исходная причина
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Store, e.Err)
	}
	return fmt.Sprintf("%s %q (%s): %v", e.Op, e.Store, e.Path, e.Err)
}

// Unwrap возвращает и ErrPersistence, и исходную причину
func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

func validationErr(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
