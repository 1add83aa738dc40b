package bot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"address-book/internal/model"
	svc "address-book/internal/service"
	"address-book/internal/ui"
)

// DefaultAutoSaveStore - хранилище, в которое книга сохраняется после каждой изменяющей команды
const DefaultAutoSaveStore = "auto_save"

// Commands - список команд для справки
var Commands = []ui.Command{
	{Name: "add", Description: "add a contact or merge data into an existing one"},
	{Name: "search", Description: "search contacts by name, phones, birthday, email, status or note"},
	{Name: "edit", Description: "change one field of a contact"},
	{Name: "remove", Description: "remove a contact by name or phone"},
	{Name: "save", Description: "save the address book to a file"},
	{Name: "load", Description: "replace the address book with a saved file"},
	{Name: "congratulate", Description: "list birthdays in the coming days"},
	{Name: "view", Description: "show all contacts"},
	{Name: "export", Description: "export contacts to .xlsx or .yaml"},
	{Name: "help", Description: "show this list"},
	{Name: "exit", Description: "leave the program"},
}

const searchCategories = "There are following categories: \nName \nPhones \nBirthday \nEmail \nStatus \nNote"

// Exporter выгружает контакты в файл
type Exporter interface {
	Export(path string, contacts []svc.ContactView) error
}

// Bot разбирает команды пользователя и вызывает операции адресной книги
type Bot struct {
	book     svc.AddressBook
	ui       ui.UserInterface
	exporter Exporter
	autoSave string
	logger   *zap.Logger
}

// New создает диспетчер команд. Пустой autoSave заменяется на DefaultAutoSaveStore.
func New(book svc.AddressBook, userInterface ui.UserInterface, exporter Exporter, autoSave string, logger *zap.Logger) *Bot {
	if autoSave == "" {
		autoSave = DefaultAutoSaveStore
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		book:     book,
		ui:       userInterface,
		exporter: exporter,
		autoSave: autoSave,
		logger:   logger,
	}
}

// inputError отделяет ошибки ввода от ошибок адресной книги
type inputError struct {
	err error
}

func (e *inputError) Error() string { return "read input: " + e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// Restore загружает хранилище автосохранения. Отсутствующее хранилище не является ошибкой:
// книга остается пустой. Возвращает true, если контакты были загружены.
func (b *Bot) Restore(ctx context.Context) bool {
	err := b.book.Load(ctx, b.autoSave)
	switch {
	case err == nil:
		b.logger.Info("auto-save restored", zap.String("store", b.autoSave), zap.Int("contacts", b.book.Len()))
		return true
	case errors.Is(err, fs.ErrNotExist):
		b.logger.Info("no auto-save found, starting with an empty address book", zap.String("store", b.autoSave))
		return false
	default:
		b.report("restore", err)
		return false
	}
}

// Run восстанавливает автосохранение и обрабатывает команды до exit или конца ввода
func (b *Bot) Run(ctx context.Context) error {
	b.Restore(ctx)

	for {
		action, err := b.ui.GetUserInput("Type help for list of commands or enter your command", true)
		if errors.Is(err, ui.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		next, err := b.Handle(ctx, action)
		if err != nil {
			return err
		}
		if !next {
			return nil
		}
	}
}

// Handle выполняет одну команду. Возвращает false, если работу нужно завершить.
// Ошибки адресной книги показываются пользователю и не прерывают работу.
func (b *Bot) Handle(ctx context.Context, action string) (bool, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	b.logger.Debug("command received", zap.String("command", action))
	start := time.Now()

	var (
		mutated bool
		err     error
	)

	switch action {
	case "add":
		mutated, err = b.add()
	case "search":
		err = b.search()
	case "edit":
		mutated, err = b.edit()
	case "remove":
		mutated, err = b.remove()
	case "save":
		err = b.save(ctx)
	case "load":
		err = b.load(ctx)
	case "congratulate":
		b.ui.DisplayMessage(b.book.Congratulate())
	case "view":
		b.ui.DisplayContacts(b.book.View())
	case "export":
		err = b.export()
	case "help":
		b.ui.DisplayCommands(Commands)
	case "exit":
		return false, nil
	default:
		b.ui.DisplayMessage("Invalid command. Please enter a valid command.")
	}

	if err != nil {
		var ie *inputError
		if errors.As(err, &ie) {
			if errors.Is(ie.err, ui.ErrInputClosed) {
				return false, nil
			}
			return false, ie
		}
		b.report(action, err)
	} else {
		b.logger.Info("command completed", zap.String("command", action), zap.Duration("duration", time.Since(start)))
	}

	if mutated {
		if err := b.book.Save(ctx, b.autoSave); err != nil {
			b.report("auto-save", err)
		}
	}

	return true, nil
}

func (b *Bot) ask(prompt string, required bool) (string, error) {
	value, err := b.ui.GetUserInput(prompt, required)
	if err != nil {
		return "", &inputError{err: err}
	}
	return value, nil
}

func (b *Bot) add() (bool, error) {
	name, err := b.ask("Name", true)
	if err != nil {
		return false, err
	}
	phones, err := b.ask("Phones (comma separated, optional)", false)
	if err != nil {
		return false, err
	}
	birthday, err := b.ask("Birthday DD/MM/YYYY (optional)", false)
	if err != nil {
		return false, err
	}
	email, err := b.ask("Email (optional)", false)
	if err != nil {
		return false, err
	}
	status, err := b.ask("Status (optional)", false)
	if err != nil {
		return false, err
	}
	note, err := b.ask("Note (optional)", false)
	if err != nil {
		return false, err
	}

	record, err := model.NewRecord(name, model.SplitPhones(phones), birthday, email, status, note)
	if err != nil {
		return false, err
	}

	res, err := b.book.Add(record)
	if err != nil {
		return false, err
	}

	if res == svc.AddMerged {
		b.ui.DisplayMessage(fmt.Sprintf("Contact %s already exists, new data merged.", record.Name))
	} else {
		b.ui.DisplayMessage(fmt.Sprintf("Contact %s added.", record.Name))
	}
	return true, nil
}

func (b *Bot) search() error {
	b.ui.DisplayMessage(searchCategories)

	category, err := b.ask("Search category", true)
	if err != nil {
		return err
	}
	pattern, err := b.ask("Search pattern", false)
	if err != nil {
		return err
	}

	found, err := b.book.Search(pattern, category)
	if err != nil {
		return err
	}

	b.ui.DisplayContacts(slices.Collect(found))
	return nil
}

func (b *Bot) edit() (bool, error) {
	name, err := b.ask("Contact name", true)
	if err != nil {
		return false, err
	}
	parameter, err := b.ask("Which parameter to edit (name, phones, birthday, email, status, note)", true)
	if err != nil {
		return false, err
	}
	value, err := b.ask("New value", false)
	if err != nil {
		return false, err
	}

	if err := b.book.Edit(strings.TrimSpace(name), parameter, value); err != nil {
		return false, err
	}

	b.ui.DisplayMessage(fmt.Sprintf("Contact %s updated.", strings.TrimSpace(name)))
	return true, nil
}

func (b *Bot) remove() (bool, error) {
	pattern, err := b.ask("Remove (contact name or phone)", true)
	if err != nil {
		return false, err
	}

	if !b.book.Remove(pattern) {
		b.ui.DisplayMessage(fmt.Sprintf("No contact found with %s.", pattern))
		return false, nil
	}

	b.ui.DisplayMessage(fmt.Sprintf("Contact with %s removed successfully.", pattern))
	return true, nil
}

func (b *Bot) save(ctx context.Context) error {
	store, err := b.ask("File name", true)
	if err != nil {
		return err
	}
	if err := b.book.Save(ctx, store); err != nil {
		return err
	}
	b.ui.DisplayMessage(fmt.Sprintf("Address book saved to %s.", store))
	return nil
}

func (b *Bot) load(ctx context.Context) error {
	store, err := b.ask("File name", true)
	if err != nil {
		return err
	}
	if err := b.book.Load(ctx, store); err != nil {
		return err
	}
	b.ui.DisplayMessage(fmt.Sprintf("Address book loaded from %s.", store))
	return nil
}

func (b *Bot) export() error {
	path, err := b.ask("Export file (.xlsx, .yaml)", true)
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if err := b.exporter.Export(path, b.book.View()); err != nil {
		return err
	}
	b.ui.DisplayMessage(fmt.Sprintf("Address book exported to %s.", path))
	return nil
}

func (b *Bot) report(action string, err error) {
	b.logger.Warn("command failed", zap.String("command", action), zap.Error(err))
	b.ui.DisplayMessage("Error: " + err.Error())
}
