package service

import (
	"context"
	"iter"
	"time"

	"address-book/internal/model"
)

// AddResult сообщает, был ли контакт создан или объединен с существующим
type AddResult int

const (
	AddCreated AddResult = iota + 1
	AddMerged
)

func (r AddResult) String() string {
	switch r {
	case AddCreated:
		return "created"
	case AddMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// ContactView - плоская проекция контакта для отображения.
// Не разделяет память с контактами книги.
type ContactView struct {
	Name           string
	Phones         []string
	Birthday       *time.Time
	Email          string
	Status         string
	Note           string
	DaysToBirthday *int // nil, если день рождения неизвестен
}

// AddressBook интерфейс бизнес-логики адресной книги
type AddressBook interface {
	// Add добавляет контакт или объединяет его с контактом с тем же именем
	Add(record model.Record) (AddResult, error)

	// Search возвращает ленивую последовательность контактов, у которых поле category содержит pattern
	Search(pattern, category string) (iter.Seq[ContactView], error)

	// Edit заменяет значение поля parameter у контакта name
	Edit(name, parameter, value string) error

	// Remove удаляет первый контакт с таким именем или номером телефона
	Remove(pattern string) bool

	// Congratulate возвращает сообщение о ближайших днях рождения
	Congratulate() string

	// View возвращает все контакты в порядке добавления
	View() []ContactView

	// Len возвращает количество контактов
	Len() int

	// Save сохраняет все контакты в хранилище store
	Save(ctx context.Context, store string) error

	// Load заменяет все контакты содержимым хранилища store
	Load(ctx context.Context, store string) error
}
