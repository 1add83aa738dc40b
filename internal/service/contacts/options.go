package contacts

import (
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Значения по умолчанию для книги
const (
	DefaultBirthdayWindow = 7
	DefaultNoteSeparator  = "; "
)

// Option настраивает Book
type Option func(*Book)

// WithClock задает источник текущей даты
func WithClock(c clock.Clock) Option {
	return func(b *Book) {
		if c != nil {
			b.clock = c
		}
	}
}

// WithLogger задает логгер книги
func WithLogger(l *zap.Logger) Option {
	return func(b *Book) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithBirthdayWindow задает окно поздравлений в днях, включительно
func WithBirthdayWindow(days int) Option {
	return func(b *Book) {
		if days >= 0 {
			b.window = days
		}
	}
}

// WithNoteSeparator задает разделитель заметок при объединении контактов
func WithNoteSeparator(sep string) Option {
	return func(b *Book) {
		if sep != "" {
			b.separator = sep
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов контактов
func WithIDGenerator(gen func() string) Option {
	return func(b *Book) {
		if gen != nil {
			b.newID = gen
		}
	}
}

func defaults(b *Book) {
	b.clock = clock.New()
	b.logger = zap.NewNop()
	b.window = DefaultBirthdayWindow
	b.separator = DefaultNoteSeparator
	b.newID = uuid.NewString
}
