package cli

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// field is a single-line text input.
type field struct {
	label    string
	value    string
	password bool
}

// form is an ordered set of fields with one focused at a time. Enter on the
// last field submits.
type form struct {
	fields []field
	focus  int
}

func newForm(fields ...field) form {
	return form{fields: fields}
}

// handleKey applies msg to the focused field and reports whether the form
// was submitted.
func (f *form) handleKey(msg tea.KeyMsg) bool {
	if len(f.fields) == 0 {
		return false
	}
	cur := &f.fields[f.focus]

	switch msg.Type {
	case tea.KeyEnter:
		if f.focus < len(f.fields)-1 {
			f.focus++
			return false
		}
		return true
	case tea.KeyTab, tea.KeyDown:
		f.focus = (f.focus + 1) % len(f.fields)
	case tea.KeyShiftTab, tea.KeyUp:
		f.focus = (f.focus + len(f.fields) - 1) % len(f.fields)
	case tea.KeyBackspace:
		if cur.value != "" {
			_, size := utf8.DecodeLastRuneInString(cur.value)
			cur.value = cur.value[:len(cur.value)-size]
		}
	case tea.KeySpace:
		cur.value += " "
	case tea.KeyRunes:
		cur.value += string(msg.Runes)
	}
	return false
}

func (f form) value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].value
}

// clear empties every field and focuses the first one.
func (f *form) clear() {
	for i := range f.fields {
		f.fields[i].value = ""
	}
	f.focus = 0
}

func (f form) view() string {
	var s strings.Builder
	for i, fl := range f.fields {
		v := fl.value
		if fl.password {
			v = strings.Repeat("•", utf8.RuneCountInString(v))
		}
		cursor := ""
		if i == f.focus {
			cursor = "_"
		}
		s.WriteString(promptStyle.Render(fl.label + ":"))
		s.WriteString("\n")
		s.WriteString(inputStyle.Render("> " + v + cursor))
		s.WriteString("\n\n")
	}
	return s.String()
}
