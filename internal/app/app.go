package app

import (
	"context"
	"fmt"
	"io"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"address-book/internal/bot"
	"address-book/internal/config"
	"address-book/internal/export"
	"address-book/internal/logger"
	"address-book/internal/repository"
	"address-book/internal/repository/file"
	"address-book/internal/repository/memory"
	"address-book/internal/service/contacts"
	"address-book/internal/ui/console"
)

// App представляет приложение: конфигурация, хранилище, адресная книга и диспетчер команд
type App struct {
	Config *config.Config
	Logger *zap.Logger

	// Ввод-вывод консоли
	In  io.Reader
	Out io.Writer

	// Файловая система для хранилища и экспорта
	Fs    afero.Fs
	Clock clock.Clock

	Book *contacts.Book
	Bot  *bot.Bot
}

// Option настраивает App
type Option func(*App)

// WithFs подменяет файловую систему
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.Fs = fs }
}

// WithClock подменяет источник текущей даты
func WithClock(c clock.Clock) Option {
	return func(a *App) { a.Clock = c }
}

// New создает приложение и логгер по конфигурации
func New(cfg *config.Config, in io.Reader, out io.Writer, opts ...Option) (*App, error) {
	l, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("logger.New: %w", err)
	}

	a := &App{
		Config: cfg,
		Logger: l,
		In:     in,
		Out:    out,
		Fs:     afero.NewOsFs(),
		Clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Initialize инициализирует компоненты (Repository → Service → Bot)
func (a *App) Initialize() error {
	repo, err := a.repository()
	if err != nil {
		return err
	}

	a.Book = contacts.NewBook(repo,
		contacts.WithClock(a.Clock),
		contacts.WithLogger(a.Logger.Named("book")),
		contacts.WithBirthdayWindow(a.Config.Birthdays.WindowDays),
		contacts.WithNoteSeparator(a.Config.Birthdays.Separator),
	)

	a.Bot = bot.New(
		a.Book,
		console.New(a.In, a.Out),
		export.NewExporter(a.Fs),
		a.Config.Storage.AutoSave,
		a.Logger.Named("bot"),
	)

	a.Logger.Info("address book initialized",
		zap.String("driver", a.Config.Storage.Driver),
		zap.String("dir", a.Config.Storage.Dir),
	)

	return nil
}

func (a *App) repository() (repository.ContactRepository, error) {
	switch a.Config.Storage.Driver {
	case config.DriverFile, "":
		repo, err := file.NewRepository(a.Fs, a.Config.Storage.Dir, a.Config.Storage.Extension, a.Logger.Named("storage"))
		if err != nil {
			return nil, fmt.Errorf("file.NewRepository: %w", err)
		}
		return repo, nil
	case config.DriverMemory:
		return memory.NewRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.Config.Storage.Driver)
	}
}

// Run восстанавливает автосохранение и обрабатывает команды до exit или конца ввода
func (a *App) Run(ctx context.Context) error {
	if a.Bot == nil {
		return fmt.Errorf("app is not initialized")
	}
	return a.Bot.Run(ctx)
}

// Shutdown сбрасывает буферы логгера
func (a *App) Shutdown() {
	a.Logger.Info("address book stopped")
	// stderr не поддерживает fsync, ошибку Sync не возвращаем
	_ = a.Logger.Sync()
}
