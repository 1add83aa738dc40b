package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"address-book/internal/model"
	svc "address-book/internal/service"
	"address-book/internal/ui"
)

var _ ui.UserInterface = (*Console)(nil)

// Console - консольная реализация ui.UserInterface
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	theme theme
	help  *glamour.TermRenderer
}

// New создает консольный интерфейс поверх in и out
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		theme: newTheme(lipgloss.NewRenderer(out)),
	}

	// без рендерера справка выводится простым списком
	if r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(styles.NoTTYStyle), glamour.WithWordWrap(80)); err == nil {
		c.help = r
	}

	return c
}

// DisplayContacts выводит контакты, разделяя их чертой
func (c *Console) DisplayContacts(contacts []svc.ContactView) {
	if len(contacts) == 0 {
		c.DisplayMessage("No contacts found.")
		return
	}

	for _, contact := range contacts {
		c.field("Name", contact.Name)
		c.field("Phones", dash(strings.Join(contact.Phones, ", ")))
		if contact.Birthday != nil {
			c.field("Birthday", contact.Birthday.Format(model.BirthdayLayout))
		} else {
			c.field("Birthday", "unknown")
		}
		c.field("Email", dash(contact.Email))
		c.field("Status", dash(contact.Status))
		c.field("Note", dash(contact.Note))
		if contact.DaysToBirthday != nil {
			c.field("Days to birthday", strconv.Itoa(*contact.DaysToBirthday))
		}
		fmt.Fprintln(c.out, c.theme.separator.Render(strings.Repeat("_", separatorWidth)))
	}
}

func (c *Console) field(label, value string) {
	fmt.Fprintln(c.out, c.theme.label.Render(label+":"), c.theme.value.Render(value))
}

// DisplayCommands выводит справку по командам
func (c *Console) DisplayCommands(commands []ui.Command) {
	var md strings.Builder
	md.WriteString("# Available commands\n\n")
	for _, cmd := range commands {
		fmt.Fprintf(&md, "- %s: %s\n", cmd.Name, cmd.Description)
	}

	if c.help != nil {
		if out, err := c.help.Render(md.String()); err == nil {
			fmt.Fprint(c.out, out)
			return
		}
	}

	c.DisplayMessage("Available commands:")
	for _, cmd := range commands {
		c.DisplayMessage(cmd.Name + " - " + cmd.Description)
	}
}

// GetUserInput читает строку ввода. Для обязательного значения пустой ввод запрашивается повторно.
// Конец ввода возвращает ui.ErrInputClosed.
func (c *Console) GetUserInput(prompt string, required bool) (string, error) {
	for {
		if prompt != "" {
			fmt.Fprint(c.out, c.theme.prompt.Render(prompt+":")+" ")
		}

		line, err := c.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return "", ui.ErrInputClosed
			}
			return "", fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if !required || strings.TrimSpace(line) != "" {
			return line, nil
		}

		c.DisplayMessage("Invalid input. Please try again.")
	}
}

// DisplayMessage выводит сообщение, ошибки выделяются цветом
func (c *Console) DisplayMessage(message string) {
	style := c.theme.message
	if strings.HasPrefix(message, "Error:") {
		style = c.theme.failure
	}
	fmt.Fprintln(c.out, style.Render(message))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
