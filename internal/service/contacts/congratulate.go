package contacts

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type upcoming struct {
	name string
	days int
}

// Congratulate перечисляет контакты, у которых день рождения наступит в ближайшие
// window дней (от 0 до window включительно), по возрастанию числа дней, затем по имени.
func (b *Book) Congratulate() string {
	today := b.clock.Now()

	var list []upcoming
	for _, r := range b.records {
		if days, ok := r.DaysToBirthday(today); ok && days <= b.window {
			list = append(list, upcoming{name: r.Name, days: days})
		}
	}

	if len(list) == 0 {
		return fmt.Sprintf("No upcoming birthdays in the next %d days.", b.window)
	}

	slices.SortFunc(list, func(a, c upcoming) int {
		if n := cmp.Compare(a.days, c.days); n != 0 {
			return n
		}
		return strings.Compare(a.name, c.name)
	})

	var sb strings.Builder
	sb.WriteString("Upcoming birthdays:")
	for _, u := range list {
		sb.WriteString("\n")
		switch u.days {
		case 0:
			fmt.Fprintf(&sb, "%s: birthday is today", u.name)
		case 1:
			fmt.Fprintf(&sb, "%s: 1 day left", u.name)
		default:
			fmt.Fprintf(&sb, "%s: %d days left", u.name, u.days)
		}
	}

	return sb.String()
}
