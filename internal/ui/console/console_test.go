package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svc "address-book/internal/service"
	"address-book/internal/ui"
)

func TestConsole_GetUserInput(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("\n   \nAlice\n\nlast"), &out)

	got, err := c.GetUserInput("Name", true)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input. Please try again."))
	assert.Contains(t, out.String(), "Name:")

	got, err = c.GetUserInput("Email", false)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	// последняя строка без перевода строки
	got, err = c.GetUserInput("Note", true)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = c.GetUserInput("More", false)
	assert.ErrorIs(t, err, ui.ErrInputClosed)
}

func TestConsole_GetUserInput_RequiredUntilEOF(t *testing.T) {
	c := New(strings.NewReader("  \n"), &bytes.Buffer{})

	_, err := c.GetUserInput("Name", true)
	assert.ErrorIs(t, err, ui.ErrInputClosed)
}

func TestConsole_DisplayContacts(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	b := time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)
	days := 3
	c.DisplayContacts([]svc.ContactView{
		{Name: "Alice", Phones: []string{"0501234567", "0661234567"}, Birthday: &b, Email: "a@b.io", DaysToBirthday: &days},
		{Name: "Bob"},
	})

	text := out.String()
	assert.Contains(t, text, "Name: Alice")
	assert.Contains(t, text, "Phones: 0501234567, 0661234567")
	assert.Contains(t, text, "Birthday: 05/03/1990")
	assert.Contains(t, text, "Email: a@b.io")
	assert.Contains(t, text, "Status: -")
	assert.Contains(t, text, "Days to birthday: 3")
	assert.Contains(t, text, "Birthday: unknown")
	assert.Equal(t, 1, strings.Count(text, "Days to birthday"))
	assert.Equal(t, 2, strings.Count(text, strings.Repeat("_", 50)))
}

func TestConsole_DisplayContacts_Empty(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).DisplayContacts(nil)

	assert.Equal(t, "No contacts found.\n", out.String())
}

func TestConsole_DisplayCommands(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).DisplayCommands([]ui.Command{
		{Name: "add", Description: "add a contact"},
		{Name: "exit", Description: "leave the program"},
	})

	text := out.String()
	assert.Contains(t, text, "Available commands")
	assert.Contains(t, text, "add")
	assert.Contains(t, text, "leave the program")
}

func TestConsole_DisplayMessage(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.DisplayMessage("hello")
	c.DisplayMessage("Error: boom")

	assert.Equal(t, "hello\nError: boom\n", out.String())
}
