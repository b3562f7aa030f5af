package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/studyguide/internal/client/models"
	"github.com/dmitrijs2005/studyguide/internal/client/shell"
)

type menuItem struct {
	label  string
	action shell.Action
}

var inicioMenu = []menuItem{
	{"Registrarse", shell.ActRegister},
	{"Entrar", shell.ActLogin},
	{"Historial de Chats", shell.ActHistory},
	{"Salir", ""},
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.shell.Current() {
	case shell.Registro, shell.Entrar, shell.Chatbot:
		return m.handleFormKey(msg)
	}

	key := msg.String()
	if key == "esc" {
		if m.shell.Current() == shell.MallaCurricular {
			return m.exit()
		}
		return m.goTo(shell.ActBack)
	}
	if m.loading {
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil
	}

	switch m.shell.Current() {
	case shell.Inicio:
		switch key {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			item := inicioMenu[m.cursor]
			if item.action == "" {
				m.quitting = true
				return m, tea.Quit
			}
			return m.goTo(item.action)
		}

	case shell.MallaCurricular:
		switch key {
		case "enter":
			if len(m.subjects) == 0 {
				return m, nil
			}
			id := m.subjects[m.cursor].ID
			if id != m.subjectID {
				m.subjectID = id
				m.subject = nil
				m.selected = map[int]bool{}
			}
			return m.goTo(shell.ActSelect)
		case "h":
			return m.goTo(shell.ActHistory)
		case "x":
			return m.exit()
		}

	case shell.Temario:
		if m.subject == nil {
			return m, nil
		}
		topics := m.subject.Topics
		switch key {
		case " ":
			if len(topics) > 0 {
				n := topics[m.cursor].Number
				if m.selected[n] {
					delete(m.selected, n)
				} else {
					m.selected[n] = true
				}
			}
		case "a":
			all := len(m.selected) == len(topics)
			m.selected = map[int]bool{}
			if !all {
				for _, t := range topics {
					m.selected[t.Number] = true
				}
			}
		case "r":
			return m.goTo(shell.ActSummary)
		case "g":
			return m.goTo(shell.ActGuide)
		case "enter":
			if len(topics) > 0 {
				m.topic = topics[m.cursor]
				return m.goTo(shell.ActTopic)
			}
		case "c":
			return m.goTo(shell.ActChatbot)
		}

	case shell.GenerarResumen, shell.GenerarPreguntas, shell.TemaDetalle:
		switch key {
		case "s":
			if m.result != nil && m.result.err == nil && m.result.text != "" {
				m.loading = true
				return m, m.savePDF(m.result.kind, m.result.prompt, m.result.text)
			}
		case "c":
			if m.shell.Current() != shell.TemaDetalle {
				return m.goTo(shell.ActChatbot)
			}
		case "r":
			return m.goTo(shell.ActRefresh)
		}

	case shell.Historial:
		switch key {
		case "enter":
			if len(m.history) > 0 {
				m.loading = true
				m.message = ""
				return m, m.exportRecord(m.history[m.cursor])
			}
		case "r":
			return m.goTo(shell.ActRefresh)
		}
	}
	return m, nil
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return m.goTo(shell.ActBack)
	}
	if m.loading {
		return m, nil
	}
	if !m.form.handleKey(msg) {
		return m, nil
	}

	m.loading = true
	m.message = ""
	switch m.shell.Current() {
	case shell.Registro:
		return m, m.register(m.form.value(0), m.form.value(1), m.form.value(2))
	case shell.Entrar:
		return m, m.login(m.form.value(0), m.form.value(1))
	default:
		q := m.form.value(0)
		return m, m.generate(models.GenerateRequest{Kind: models.KindQuestion, Text: q}, q)
	}
}

// exit leaves the curriculum and drops the session.
func (m model) exit() (model, tea.Cmd) {
	m.auth.Logout()
	m.session = nil
	m.chat = nil
	m.subjectID = 0
	m.subject = nil
	m.selected = map[int]bool{}
	return m.goTo(shell.ActExit)
}

func (m model) listLen() int {
	switch m.shell.Current() {
	case shell.Inicio:
		return len(inicioMenu)
	case shell.MallaCurricular:
		return len(m.subjects)
	case shell.Temario:
		if m.subject != nil {
			return len(m.subject.Topics)
		}
	case shell.Historial:
		return len(m.history)
	}
	return 0
}
