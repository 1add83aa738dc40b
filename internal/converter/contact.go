package converter

import (
	"fmt"
	"time"

	"address-book/internal/model"
	addressbookv1 "address-book/pkg/format/addressbook/v1"
)

// ModelToDocument конвертирует domain модель Record в сохраняемый контакт
func ModelToDocument(r model.Record) addressbookv1.Contact {
	var birthday *string
	if r.Birthday != nil {
		s := r.Birthday.Format(time.DateOnly)
		birthday = &s
	}

	phones := make([]string, len(r.Phones))
	copy(phones, r.Phones)

	return addressbookv1.Contact{
		ID:       r.ID,
		Name:     r.Name,
		Phones:   phones,
		Birthday: birthday,
		Email:    optional(r.Email),
		Status:   optional(r.Status),
		Note:     optional(r.Note),
	}
}

// DocumentToModel конвертирует сохраненный контакт в domain модель и проверяет её
func DocumentToModel(c addressbookv1.Contact) (model.Record, error) {
	r := model.Record{
		ID:     c.ID,
		Name:   c.Name,
		Phones: append([]string(nil), c.Phones...),
		Email:  value(c.Email),
		Status: value(c.Status),
		Note:   value(c.Note),
	}

	if c.Birthday != nil {
		b, err := time.Parse(time.DateOnly, *c.Birthday)
		if err != nil {
			return model.Record{}, fmt.Errorf("contact %q: birthday: %w", c.Name, err)
		}
		r.Birthday = &b
	}

	if err := r.Validate(); err != nil {
		return model.Record{}, fmt.Errorf("contact %q: %w", c.Name, err)
	}

	return r, nil
}

// ModelsToDocuments конвертирует слайс domain моделей в слайс сохраняемых контактов
func ModelsToDocuments(records []model.Record) []addressbookv1.Contact {
	contacts := make([]addressbookv1.Contact, len(records))
	for i, r := range records {
		contacts[i] = ModelToDocument(r)
	}
	return contacts
}

// DocumentsToModels конвертирует сохраненные контакты в domain модели.
// Первая же ошибка прерывает конвертацию.
func DocumentsToModels(contacts []addressbookv1.Contact) ([]model.Record, error) {
	records := make([]model.Record, 0, len(contacts))
	for _, c := range contacts {
		r, err := DocumentToModel(c)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
