package ui

import (
	"errors"

	svc "address-book/internal/service"
)

// ErrInputClosed возвращается, когда ввод пользователя закончился (EOF)
var ErrInputClosed = errors.New("input closed")

// Command описывает команду для справки
type Command struct {
	Name        string
	Description string
}

// UserInterface - возможности слоя представления, которыми пользуется диспетчер команд
type UserInterface interface {
	// DisplayContacts показывает список контактов
	DisplayContacts(contacts []svc.ContactView)

	// DisplayCommands показывает список доступных команд
	DisplayCommands(commands []Command)

	// GetUserInput запрашивает строку у пользователя.
	// Если required, пустой ввод запрашивается повторно.
	GetUserInput(prompt string, required bool) (string, error)

	// DisplayMessage показывает сообщение
	DisplayMessage(message string)
}
