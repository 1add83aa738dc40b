package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"address-book/internal/converter"
	"address-book/internal/model"
	"address-book/internal/repository"
	addressbookv1 "address-book/pkg/format/addressbook/v1"
)

// ErrCorruptStore возвращается, когда файл хранилища не проходит проверку формата
var ErrCorruptStore = errors.New("corrupt store")

// DefaultExtension добавляется к имени хранилища без расширения
const DefaultExtension = ".json"

var _ repository.ContactRepository = (*repo)(nil)

type repo struct {
	fs     afero.Fs
	dir    string
	ext    string
	schema *gojsonschema.Schema
	logger *zap.Logger
}

// NewRepository создает репозиторий, хранящий каждое хранилище в отдельном JSON-файле.
// Относительные имена разрешаются от каталога dir.
func NewRepository(fs afero.Fs, dir, ext string, logger *zap.Logger) (repository.ContactRepository, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(addressbookv1.Schema))
	if err != nil {
		return nil, fmt.Errorf("gojsonschema.NewSchema: %w", err)
	}

	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &repo{
		fs:     fs,
		dir:    dir,
		ext:    ext,
		schema: schema,
		logger: logger,
	}, nil
}

// Save сериализует контакты и атомарно заменяет файл хранилища
func (r *repo) Save(ctx context.Context, store string, records []model.Record) error {
	path, err := r.resolve(store)
	if err != nil {
		return &model.PersistenceError{Op: "save", Store: store, Err: err}
	}

	doc, err := addressbookv1.NewDocument(converter.ModelsToDocuments(records))
	if err != nil {
		return &model.PersistenceError{Op: "save", Store: store, Path: path, Err: err}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &model.PersistenceError{Op: "save", Store: store, Path: path, Err: fmt.Errorf("json.MarshalIndent: %w", err)}
	}

	if err := r.writeAtomic(path, data); err != nil {
		r.logger.Error("failed to save store", zap.String("store", store), zap.String("path", path), zap.Error(err))
		return &model.PersistenceError{Op: "save", Store: store, Path: path, Err: err}
	}

	r.logger.Info("store saved", zap.String("store", store), zap.String("path", path), zap.Int("contacts", len(records)))

	return nil
}

// Load читает и проверяет файл хранилища: JSON-схема, контрольная сумма и валидность каждого контакта
func (r *repo) Load(ctx context.Context, store string) ([]model.Record, error) {
	path, err := r.resolve(store)
	if err != nil {
		return nil, &model.PersistenceError{Op: "load", Store: store, Err: err}
	}

	fail := func(err error) ([]model.Record, error) {
		r.logger.Warn("failed to load store", zap.String("store", store), zap.String("path", path), zap.Error(err))
		return nil, &model.PersistenceError{Op: "load", Store: store, Path: path, Err: err}
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return fail(err)
	}

	result, err := r.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCorruptStore, err))
	}
	if !result.Valid() {
		return fail(fmt.Errorf("%w: %s", ErrCorruptStore, describe(result.Errors())))
	}

	var doc addressbookv1.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCorruptStore, err))
	}

	if err := doc.Verify(); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCorruptStore, err))
	}

	records, err := converter.DocumentsToModels(doc.Contacts)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCorruptStore, err))
	}

	r.logger.Info("store loaded", zap.String("store", store), zap.String("path", path), zap.Int("contacts", len(records)))

	return records, nil
}

// resolve превращает имя хранилища в путь к файлу
func (r *repo) resolve(store string) (string, error) {
	name := strings.TrimSpace(store)
	if name == "" {
		return "", repository.ErrEmptyStoreName
	}
	if filepath.Ext(name) == "" {
		name += r.ext
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(r.dir, name)
	}
	return name, nil
}

// writeAtomic пишет данные во временный файл рядом с целевым и переименовывает его.
// Прерванная запись не оставляет обрезанный файл хранилища.
func (r *repo) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("MkdirAll: %w", err)
	}

	tmp, err := afero.TempFile(r.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("TempFile: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = r.fs.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("write: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("close: %w", err)
	}
	if err := r.fs.Rename(tmpName, path); err != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// describe склеивает первые ошибки схемы, чтобы не выводить сотни строк
func describe(errs []gojsonschema.ResultError) string {
	const limit = 3

	parts := make([]string, 0, limit)
	for i, e := range errs {
		if i == limit {
			parts = append(parts, fmt.Sprintf("... and %d more", len(errs)-limit))
			break
		}
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}
