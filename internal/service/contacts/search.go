package contacts

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"address-book/internal/model"
	svc "address-book/internal/service"
)

// Search возвращает ленивую последовательность контактов, подходящих под pattern в поле category.
// Текстовые поля сравниваются по подстроке без учета регистра, телефоны по подстроке
// нормализованного номера, день рождения по указанным компонентам даты (D, D/M, D/M/Y).
// Последовательность можно обходить повторно, порядок совпадает с порядком добавления.
func (b *Book) Search(pattern, category string) (iter.Seq[svc.ContactView], error) {
	field, ok := model.ParseField(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidCategory, category)
	}

	match, err := matcher(field, pattern)
	if err != nil {
		return nil, err
	}

	return func(yield func(svc.ContactView) bool) {
		today := b.clock.Now()
		for _, r := range b.records {
			if !match(r) {
				continue
			}
			if !yield(toView(r, today)) {
				return
			}
		}
	}, nil
}

func matcher(field model.Field, pattern string) (func(model.Record) bool, error) {
	switch field {
	case model.FieldPhones:
		part := model.NormalizePhone(pattern)
		return func(r model.Record) bool {
			return hasPhoneLike(r.Phones, part)
		}, nil
	case model.FieldBirthday:
		dp, err := parseDatePattern(pattern)
		if err != nil {
			return nil, err
		}
		return dp.match, nil
	}

	text := strings.ToLower(strings.TrimSpace(pattern))
	value := func(r model.Record) string {
		switch field {
		case model.FieldEmail:
			return r.Email
		case model.FieldStatus:
			return r.Status
		case model.FieldNote:
			return r.Note
		default:
			return r.Name
		}
	}
	return func(r model.Record) bool {
		return strings.Contains(strings.ToLower(value(r)), text)
	}, nil
}

// datePattern - частичная дата; нулевой компонент не сравнивается
type datePattern struct {
	day, month, year int
}

var dateSeparators = strings.NewReplacer(".", "/", "-", "/")

func parseDatePattern(raw string) (datePattern, error) {
	invalid := &model.ValidationError{Field: string(model.FieldBirthday), Value: raw, Reason: "date pattern must look like D, D/M or D/M/Y"}

	parts := strings.Split(dateSeparators.Replace(strings.TrimSpace(raw)), "/")
	if len(parts) > 3 {
		return datePattern{}, invalid
	}

	var comps [3]int
	limits := [3]int{31, 12, 9999}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > limits[i] {
			return datePattern{}, invalid
		}
		comps[i] = n
	}

	return datePattern{day: comps[0], month: comps[1], year: comps[2]}, nil
}

func (p datePattern) match(r model.Record) bool {
	if r.Birthday == nil {
		return false
	}
	y, m, d := r.Birthday.Date()
	return (p.day == 0 || p.day == d) &&
		(p.month == 0 || p.month == int(m)) &&
		(p.year == 0 || p.year == y)
}
