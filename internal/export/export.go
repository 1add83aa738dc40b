// Package export выгружает адресную книгу в форматы для внешних программ.
package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"address-book/internal/model"
	svc "address-book/internal/service"
)

// SheetName - лист xlsx-файла с контактами
const SheetName = "Contacts"

var header = []any{"Name", "Phones", "Birthday", "Email", "Status", "Note", "Days to birthday"}

// Exporter пишет файлы экспорта через afero.Fs
type Exporter struct {
	fs afero.Fs
}

// NewExporter создает Exporter
func NewExporter(fs afero.Fs) *Exporter {
	return &Exporter{fs: fs}
}

// Export выбирает формат по расширению path: .xlsx, .yaml или .yml
func (e *Exporter) Export(path string, contacts []svc.ContactView) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		data, err = encodeXLSX(contacts)
	case ".yaml", ".yml":
		data, err = encodeYAML(contacts)
	default:
		return &model.ValidationError{Field: "file", Value: path, Reason: "export supports .xlsx, .yaml and .yml"}
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := e.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("MkdirAll: %w", err)
		}
	}
	if err := afero.WriteFile(e.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func encodeXLSX(contacts []svc.ContactView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("SetSheetName: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("SetSheetRow: %w", err)
	}

	for i, c := range contacts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{c.Name, strings.Join(c.Phones, ", "), birthday(c.Birthday), c.Email, c.Status, c.Note, days(c.DaysToBirthday)}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("SetSheetRow: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("WriteToBuffer: %w", err)
	}
	return buf.Bytes(), nil
}

type yamlContact struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones,omitempty"`
	Birthday string   `yaml:"birthday,omitempty"`
	Email    string   `yaml:"email,omitempty"`
	Status   string   `yaml:"status,omitempty"`
	Note     string   `yaml:"note,omitempty"`
}

type yamlBook struct {
	Contacts []yamlContact `yaml:"contacts"`
}

func encodeYAML(contacts []svc.ContactView) ([]byte, error) {
	doc := yamlBook{Contacts: make([]yamlContact, 0, len(contacts))}
	for _, c := range contacts {
		doc.Contacts = append(doc.Contacts, yamlContact{
			Name:     c.Name,
			Phones:   c.Phones,
			Birthday: birthday(c.Birthday),
			Email:    c.Email,
			Status:   c.Status,
			Note:     c.Note,
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yaml.Marshal: %w", err)
	}
	return data, nil
}

func birthday(b *time.Time) string {
	if b == nil {
		return ""
	}
	return b.Format(model.BirthdayLayout)
}

func days(d *int) string {
	if d == nil {
		return ""
	}
	return strconv.Itoa(*d)
}
