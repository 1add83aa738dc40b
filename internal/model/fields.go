package model

import (
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// Field - поле контакта, по которому можно искать и которое можно редактировать
type Field string

const (
	FieldName     Field = "name"
	FieldPhones   Field = "phones"
	FieldBirthday Field = "birthday"
	FieldEmail    Field = "email"
	FieldStatus   Field = "status"
	FieldNote     Field = "note"
)

// Fields перечисляет поля в порядке отображения
var Fields = []Field{FieldName, FieldPhones, FieldBirthday, FieldEmail, FieldStatus, FieldNote}

// ParseField разбирает имя поля без учета регистра
func ParseField(s string) (Field, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "phone" {
		return FieldPhones, true
	}
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

const invalidUTF8 = "text is not valid UTF-8"

// BirthdayLayout - формат отображения дня рождения
const BirthdayLayout = "02/01/2006"

var birthdayLayouts = []string{"2/1/2006", "2.1.2006", time.DateOnly}

var (
	phoneRe    = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phoneStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// ParseName проверяет имя контакта: оно не может быть пустым
func ParseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", validationErr(string(FieldName), raw, "name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return "", validationErr(string(FieldName), raw, invalidUTF8)
	}
	return name, nil
}

// NormalizePhone убирает из номера пробелы, дефисы, скобки и точки
func NormalizePhone(raw string) string {
	return phoneStrip.Replace(strings.TrimSpace(raw))
}

// ParsePhone нормализует и проверяет один номер телефона
func ParsePhone(raw string) (string, error) {
	phone := NormalizePhone(raw)
	if !phoneRe.MatchString(phone) {
		return "", validationErr(string(FieldPhones), raw, "phone must contain 10 to 15 digits with an optional leading +")
	}
	return phone, nil
}

// SplitPhones делит строку со списком номеров на отдельные номера.
// Разделители: запятая, точка с запятой и перевод строки.
func SplitPhones(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	phones := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			phones = append(phones, p)
		}
	}
	return phones
}

// ParsePhones проверяет список номеров, повторы отбрасываются.
// Возвращает ошибки по всем некорректным номерам сразу.
func ParsePhones(raw []string) ([]string, error) {
	var (
		errs   error
		phones []string
	)
	for _, r := range raw {
		phone, err := ParsePhone(r)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if !slices.Contains(phones, phone) {
			phones = append(phones, phone)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return phones, nil
}

// ParseBirthday разбирает дату рождения. Пустая строка означает "неизвестно".
func ParseBirthday(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, validationErr(string(FieldBirthday), raw, "expected DD/MM/YYYY")
}

// ParseEmail проверяет адрес почты. Пустая строка допустима.
func ParseEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", nil
	}
	if !utf8.ValidString(email) {
		return "", validationErr(string(FieldEmail), raw, invalidUTF8)
	}
	if !emailRe.MatchString(email) {
		return "", validationErr(string(FieldEmail), raw, "malformed email address")
	}
	return email, nil
}

// ParseText используется для свободных полей status и note
func ParseText(field Field, raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if !utf8.ValidString(text) {
		return "", validationErr(string(field), raw, invalidUTF8)
	}
	return text, nil
}
