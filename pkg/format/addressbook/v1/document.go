// Package addressbookv1 описывает формат файла хранилища адресной книги (версия 1).
package addressbookv1

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/minio/sha256-simd"
)

// Format и Version идентифицируют документ хранилища
const (
	Format  = "addressbook"
	Version = 1
)

// Schema - JSON-схема документа, используется при загрузке
//
//go:embed schema.json
var Schema []byte

// Document - корневой объект файла хранилища
type Document struct {
	Format   string    `json:"format"`
	Version  int       `json:"version"`
	Checksum string    `json:"checksum"` // sha256 от JSON-представления Contacts
	Contacts []Contact `json:"contacts"`
}

// Contact - сохраненный контакт. Отсутствующие значения записываются как null.
type Contact struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"` // YYYY-MM-DD
	Email    *string  `json:"email"`
	Status   *string  `json:"status"`
	Note     *string  `json:"note"`
}

// NewDocument собирает документ и вычисляет контрольную сумму
func NewDocument(contacts []Contact) (Document, error) {
	if contacts == nil {
		contacts = []Contact{}
	}
	sum, err := Checksum(contacts)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Format:   Format,
		Version:  Version,
		Checksum: sum,
		Contacts: contacts,
	}, nil
}

// Verify сверяет контрольную сумму документа с его содержимым
func (d *Document) Verify() error {
	sum, err := Checksum(d.Contacts)
	if err != nil {
		return err
	}
	if sum != d.Checksum {
		return fmt.Errorf("checksum mismatch: stored %s, computed %s", d.Checksum, sum)
	}
	return nil
}

// Checksum считает sha256 от JSON-представления списка контактов
func Checksum(contacts []Contact) (string, error) {
	data, err := json.Marshal(contacts)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
