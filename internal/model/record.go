package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// Record представляет контакт адресной книги (доменная модель)
type Record struct {
	ID       string     // UUID контакта, назначается книгой
	Name     string     // Имя, ключ контакта в книге (с учетом регистра)
	Phones   []string   // Нормализованные номера телефонов
	Birthday *time.Time // День рождения, nil если неизвестен
	Email    string     // Адрес почты, пустой если не указан
	Status   string     // Произвольный статус
	Note     string     // Произвольная заметка
}

// NewRecord собирает контакт из введенных пользователем значений.
// Все некорректные поля возвращаются одной ошибкой.
func NewRecord(name string, phones []string, birthday, email, status, note string) (Record, error) {
	var errs error

	validName, err := ParseName(name)
	errs = multierr.Append(errs, err)

	validPhones, err := ParsePhones(phones)
	errs = multierr.Append(errs, err)

	validBirthday, err := ParseBirthday(birthday)
	errs = multierr.Append(errs, err)

	validEmail, err := ParseEmail(email)
	errs = multierr.Append(errs, err)

	validStatus, err := ParseText(FieldStatus, status)
	errs = multierr.Append(errs, err)

	validNote, err := ParseText(FieldNote, note)
	errs = multierr.Append(errs, err)

	if errs != nil {
		return Record{}, errs
	}

	return Record{
		Name:     validName,
		Phones:   validPhones,
		Birthday: validBirthday,
		Email:    validEmail,
		Status:   validStatus,
		Note:     validNote,
	}, nil
}

// Validate проверяет валидность уже собранного контакта.
// Имя должно быть без пробелов по краям: это ключ контакта в книге.
func (r Record) Validate() error {
	var errs error
	switch {
	case strings.TrimSpace(r.Name) == "":
		errs = multierr.Append(errs, validationErr(string(FieldName), r.Name, "name cannot be empty"))
	case strings.TrimSpace(r.Name) != r.Name:
		errs = multierr.Append(errs, validationErr(string(FieldName), r.Name, "name has surrounding whitespace"))
	}
	for _, text := range []struct {
		field Field
		value string
	}{
		{FieldName, r.Name},
		{FieldEmail, r.Email},
		{FieldStatus, r.Status},
		{FieldNote, r.Note},
	} {
		if !utf8.ValidString(text.value) {
			errs = multierr.Append(errs, validationErr(string(text.field), text.value, invalidUTF8))
		}
	}
	for _, phone := range r.Phones {
		if !phoneRe.MatchString(phone) {
			errs = multierr.Append(errs, validationErr(string(FieldPhones), phone, "phone is not normalized"))
		}
	}
	if r.Email != "" && !emailRe.MatchString(r.Email) {
		errs = multierr.Append(errs, validationErr(string(FieldEmail), r.Email, "malformed email address"))
	}
	return errs
}

// Clone возвращает копию контакта, не разделяющую память с оригиналом
func (r Record) Clone() Record {
	c := r
	c.Phones = append([]string(nil), r.Phones...)
	if r.Birthday != nil {
		b := *r.Birthday
		c.Birthday = &b
	}
	return c
}

// DaysToBirthday считает количество дней от today до ближайшего дня рождения.
// Учитывается только календарная дата today. Если день рождения сегодня, возвращается 0.
// Для 29 февраля в невисокосный год днем рождения считается 28 февраля.
func (r Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.Birthday == nil {
		return 0, false
	}

	y, m, d := today.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	next := birthdayIn(y, r.Birthday.Month(), r.Birthday.Day())
	if next.Before(from) {
		next = birthdayIn(y+1, r.Birthday.Month(), r.Birthday.Day())
	}

	return int(next.Sub(from).Hours() / 24), true
}

func birthdayIn(year int, month time.Month, day int) time.Time {
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// String возвращает многострочное представление контакта
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString("Name: " + r.Name + "\n")
	sb.WriteString("Phones: " + orDash(strings.Join(r.Phones, ", ")) + "\n")
	if r.Birthday != nil {
		sb.WriteString("Birthday: " + r.Birthday.Format(BirthdayLayout) + "\n")
	} else {
		sb.WriteString("Birthday: unknown\n")
	}
	sb.WriteString("Email: " + orDash(r.Email) + "\n")
	sb.WriteString("Status: " + orDash(r.Status) + "\n")
	sb.WriteString("Note: " + orDash(r.Note))
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
