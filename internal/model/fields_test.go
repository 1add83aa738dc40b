package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseField(t *testing.T) {
	cases := map[string]Field{
		"name":     FieldName,
		" Phones ": FieldPhones,
		"PHONE":    FieldPhones,
		"Birthday": FieldBirthday,
		"email":    FieldEmail,
		"status":   FieldStatus,
		"note":     FieldNote,
	}
	for in, want := range cases {
		got, ok := ParseField(in)
		if !ok || got != want {
			t.Errorf("ParseField(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}

	if _, ok := ParseField("address"); ok {
		t.Error("Expected address to be rejected")
	}
}

func TestParsePhone(t *testing.T) {
	valid := map[string]string{
		"0501234567":          "0501234567",
		"+380501234567":       "+380501234567",
		"(050) 123-45-67":     "0501234567",
		"050.123.45.67":       "0501234567",
		"+1 202 555 0143 123": "+12025550143123",
	}
	for in, want := range valid {
		got, err := ParsePhone(in)
		if err != nil {
			t.Errorf("ParsePhone(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePhone(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "12345", "050123456a", "++380501234567", "1234567890123456"} {
		if _, err := ParsePhone(in); !errors.Is(err, ErrValidation) {
			t.Errorf("ParsePhone(%q): expected validation error, got %v", in, err)
		}
	}
}

func TestSplitPhones(t *testing.T) {
	got := SplitPhones(" 050 123 45 67, 0661234567;; \n0671234567 ,")
	want := []string{"050 123 45 67", "0661234567", "0671234567"}
	if len(got) != len(want) {
		t.Fatalf("SplitPhones = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitPhones[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if phones := SplitPhones("   "); len(phones) != 0 {
		t.Errorf("Expected no phones, got %q", phones)
	}
}

func TestParseBirthday(t *testing.T) {
	want := time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"05/03/1990", "5/3/1990", "05.03.1990", "1990-03-05", " 05/03/1990 "} {
		got, err := ParseBirthday(in)
		if err != nil {
			t.Errorf("ParseBirthday(%q) unexpected error: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseBirthday(%q) = %v, want %v", in, got, want)
		}
	}

	got, err := ParseBirthday("  ")
	if err != nil || got != nil {
		t.Errorf("Expected absent birthday, got %v, %v", got, err)
	}

	for _, in := range []string{"30/02/2001", "1990/03/05", "yesterday", "32/01/2000"} {
		_, err := ParseBirthday(in)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "birthday" {
			t.Errorf("ParseBirthday(%q): expected birthday validation error, got %v", in, err)
		}
	}
}

func TestParseEmail(t *testing.T) {
	if got, err := ParseEmail(" john.smith+tag@mail.example.org "); err != nil || got != "john.smith+tag@mail.example.org" {
		t.Errorf("unexpected result %q, %v", got, err)
	}
	if got, err := ParseEmail(""); err != nil || got != "" {
		t.Errorf("Expected empty email to be accepted, got %q, %v", got, err)
	}
	for _, in := range []string{"plain", "a@b", "@example.com", "a b@example.com"} {
		if _, err := ParseEmail(in); !errors.Is(err, ErrValidation) {
			t.Errorf("ParseEmail(%q): expected validation error, got %v", in, err)
		}
	}
}

func TestParseName(t *testing.T) {
	if _, err := ParseName(" \t "); err == nil {
		t.Error("Expected error for whitespace-only name")
	} else if err.Error() != `invalid name " \t ": name cannot be empty` {
		t.Errorf("Unexpected message: %v", err)
	}
}

func TestParseText_InvalidUTF8(t *testing.T) {
	if got, err := ParseText(FieldNote, " Київ "); err != nil || got != "Київ" {
		t.Errorf("Expected trimmed note, got %q, %v", got, err)
	}
	if _, err := ParseText(FieldStatus, "\xc0\xaf"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if _, err := ParseName("Bob\xff"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for name, got %v", err)
	}
	if _, err := ParseEmail("b\xffb@example.com"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for email, got %v", err)
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&PersistenceError{Op: "save", Store: "book", Path: "/tmp/book.json", Err: cause})

	if !errors.Is(err, ErrPersistence) {
		t.Error("Expected ErrPersistence")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected cause to be unwrapped")
	}
	if err.Error() != `save "book" (/tmp/book.json): disk full` {
		t.Errorf("Unexpected message: %v", err)
	}
}
