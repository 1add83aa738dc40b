package contacts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"address-book/internal/model"
	"address-book/internal/repository"
	svc "address-book/internal/service"
)

var _ svc.AddressBook = (*Book)(nil)

// Book хранит контакты в порядке добавления с индексом по имени.
// Не потокобезопасен: все операции выполняются из одного цикла команд.
type Book struct {
	repo      repository.ContactRepository
	clock     clock.Clock
	logger    *zap.Logger
	window    int
	separator string
	newID     func() string

	index   map[string]int
	records []model.Record
}

// NewBook создает пустую адресную книгу, сохраняемую через repo
func NewBook(repo repository.ContactRepository, opts ...Option) *Book {
	b := &Book{
		repo:  repo,
		index: make(map[string]int),
	}
	defaults(b)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add добавляет контакт. Если контакт с таким именем уже есть, новые данные объединяются с ним:
// новые телефоны дописываются, непустые birthday, email и status заменяют старые, note дописывается.
func (b *Book) Add(record model.Record) (svc.AddResult, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	if i, exists := b.index[record.Name]; exists {
		b.merge(&b.records[i], record)
		b.logger.Debug("contact merged", zap.String("name", record.Name), zap.String("id", b.records[i].ID))
		return svc.AddMerged, nil
	}

	rec := record.Clone()
	if rec.ID == "" {
		rec.ID = b.newID()
	}

	b.index[rec.Name] = len(b.records)
	b.records = append(b.records, rec)

	b.logger.Debug("contact created", zap.String("name", rec.Name), zap.String("id", rec.ID))

	return svc.AddCreated, nil
}

func (b *Book) merge(dst *model.Record, src model.Record) {
	for _, phone := range src.Phones {
		if !slices.Contains(dst.Phones, phone) {
			dst.Phones = append(dst.Phones, phone)
		}
	}

	if src.Birthday != nil {
		birthday := *src.Birthday
		dst.Birthday = &birthday
	}
	if src.Email != "" {
		dst.Email = src.Email
	}
	if src.Status != "" {
		dst.Status = src.Status
	}

	if src.Note != "" && !b.hasNote(dst.Note, src.Note) {
		if dst.Note == "" {
			dst.Note = src.Note
		} else {
			dst.Note = dst.Note + b.separator + src.Note
		}
	}
}

// hasNote проверяет, что note уже записана целиком: вся заметка, ее начало, конец или середина между разделителями
func (b *Book) hasNote(notes, note string) bool {
	sep := b.separator
	return notes == note ||
		strings.HasPrefix(notes, note+sep) ||
		strings.HasSuffix(notes, sep+note) ||
		strings.Contains(notes, sep+note+sep)
}

// Edit заменяет одно поле контакта. Новое значение проверяется по тем же правилам,
// что и при создании; при ошибке контакт не меняется.
func (b *Book) Edit(name, parameter, value string) error {
	i, exists := b.index[name]
	if !exists {
		return fmt.Errorf("%w: %q", model.ErrNotFound, name)
	}

	field, ok := model.ParseField(parameter)
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrInvalidParameter, parameter)
	}

	rec := b.records[i].Clone()

	switch field {
	case model.FieldName:
		newName, err := model.ParseName(value)
		if err != nil {
			return err
		}
		if j, taken := b.index[newName]; taken && j != i {
			return fmt.Errorf("%w: %q", model.ErrDuplicateName, newName)
		}
		rec.Name = newName
	case model.FieldPhones:
		phones, err := model.ParsePhones(model.SplitPhones(value))
		if err != nil {
			return err
		}
		rec.Phones = phones
	case model.FieldBirthday:
		birthday, err := model.ParseBirthday(value)
		if err != nil {
			return err
		}
		rec.Birthday = birthday
	case model.FieldEmail:
		email, err := model.ParseEmail(value)
		if err != nil {
			return err
		}
		rec.Email = email
	case model.FieldStatus, model.FieldNote:
		text, err := model.ParseText(field, value)
		if err != nil {
			return err
		}
		if field == model.FieldStatus {
			rec.Status = text
		} else {
			rec.Note = text
		}
	}

	b.records[i] = rec
	if rec.Name != name {
		delete(b.index, name)
		b.index[rec.Name] = i
	}

	b.logger.Debug("contact edited", zap.String("name", rec.Name), zap.String("field", string(field)))

	return nil
}

// Remove удаляет первый (в порядке добавления) контакт, у которого имя совпадает с pattern
// или один из телефонов содержит pattern. Возвращает false, если ничего не найдено.
func (b *Book) Remove(pattern string) bool {
	name := strings.TrimSpace(pattern)
	phone := model.NormalizePhone(pattern)

	for i, r := range b.records {
		if r.Name == name || (phone != "" && hasPhoneLike(r.Phones, phone)) {
			b.deleteAt(i)
			b.logger.Debug("contact removed", zap.String("name", r.Name), zap.String("pattern", pattern))
			return true
		}
	}

	return false
}

func (b *Book) deleteAt(i int) {
	delete(b.index, b.records[i].Name)
	b.records = slices.Delete(b.records, i, i+1)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name] = j
	}
}

func hasPhoneLike(phones []string, part string) bool {
	return slices.ContainsFunc(phones, func(p string) bool {
		return strings.Contains(p, part)
	})
}

// View возвращает все контакты в порядке добавления
func (b *Book) View() []svc.ContactView {
	today := b.clock.Now()
	views := make([]svc.ContactView, 0, len(b.records))
	for _, r := range b.records {
		views = append(views, toView(r, today))
	}
	return views
}

// Len возвращает количество контактов
func (b *Book) Len() int {
	return len(b.records)
}

// Save сохраняет все контакты в хранилище store
func (b *Book) Save(ctx context.Context, store string) error {
	snapshot := make([]model.Record, len(b.records))
	for i, r := range b.records {
		snapshot[i] = r.Clone()
	}

	if err := b.repo.Save(ctx, store, snapshot); err != nil {
		return persistenceErr("save", store, err)
	}

	return nil
}

// Load заменяет содержимое книги контактами из хранилища store.
// При любой ошибке текущее содержимое книги не меняется.
func (b *Book) Load(ctx context.Context, store string) error {
	records, err := b.repo.Load(ctx, store)
	if err != nil {
		return persistenceErr("load", store, err)
	}

	index := make(map[string]int, len(records))
	for i := range records {
		r := &records[i]
		if err := r.Validate(); err != nil {
			return persistenceErr("load", store, fmt.Errorf("contact %q: %w", r.Name, err))
		}
		if _, dup := index[r.Name]; dup {
			return persistenceErr("load", store, fmt.Errorf("%w: %q", model.ErrDuplicateName, r.Name))
		}
		if r.ID == "" {
			r.ID = b.newID()
		}
		index[r.Name] = i
	}

	b.records = records
	b.index = index

	b.logger.Info("address book loaded", zap.String("store", store), zap.Int("contacts", len(records)))

	return nil
}

func persistenceErr(op, store string, err error) error {
	if errors.Is(err, model.ErrPersistence) {
		return err
	}
	return &model.PersistenceError{Op: op, Store: store, Err: err}
}

func toView(r model.Record, today time.Time) svc.ContactView {
	v := svc.ContactView{
		Name:   r.Name,
		Phones: append([]string(nil), r.Phones...),
		Email:  r.Email,
		Status: r.Status,
		Note:   r.Note,
	}
	if r.Birthday != nil {
		birthday := *r.Birthday
		v.Birthday = &birthday
	}
	if days, ok := r.DaysToBirthday(today); ok {
		v.DaysToBirthday = &days
	}
	return v
}
