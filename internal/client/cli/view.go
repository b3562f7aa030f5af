package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/studyguide/internal/client/shell"
)

var screenTitles = map[shell.Screen]string{
	shell.Inicio:           "Asistente de Estudio",
	shell.Registro:         "Registro",
	shell.Entrar:           "Entrar",
	shell.MallaCurricular:  "Malla Curricular",
	shell.Temario:          "Temario",
	shell.GenerarResumen:   "Generar Resumen",
	shell.GenerarPreguntas: "Generar Preguntas",
	shell.Historial:        "Historial de Chats",
	shell.Chatbot:          "Chatbot",
	shell.TemaDetalle:      "Tema",
}

var screenHelp = map[shell.Screen]string{
	shell.Inicio:           "↑/↓ mover • enter elegir • q salir",
	shell.Registro:         "tab cambiar campo • enter registrar • esc volver",
	shell.Entrar:           "tab cambiar campo • enter entrar • esc volver",
	shell.MallaCurricular:  "↑/↓ mover • enter ver temario • h historial • x/esc salir",
	shell.Temario:          "espacio marcar • a todos • r resumen • g guía • enter explicar tema • c chatbot • esc volver",
	shell.GenerarResumen:   "s guardar PDF • r regenerar • c chatbot • esc volver",
	shell.GenerarPreguntas: "s guardar PDF • r regenerar • c chatbot • esc volver",
	shell.TemaDetalle:      "s guardar PDF • r regenerar • esc volver",
	shell.Chatbot:          "enter enviar • esc volver",
	shell.Historial:        "↑/↓ mover • enter exportar PDF • r actualizar • esc volver",
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	cur := m.shell.Current()

	title := screenTitles[cur]
	if cur == shell.Temario && m.subject != nil {
		title += ": " + m.subject.Name
	}
	s.WriteString(titleStyle.Render(title))
	s.WriteString("  ")
	s.WriteString(m.statusLine())
	s.WriteString("\n\n")

	switch cur {
	case shell.Inicio:
		for i, item := range inicioMenu {
			s.WriteString(m.row(i, item.label))
		}
	case shell.Registro, shell.Entrar:
		s.WriteString(m.form.view())
	case shell.MallaCurricular:
		s.WriteString(m.mallaView())
	case shell.Temario:
		s.WriteString(m.temarioView())
	case shell.GenerarResumen, shell.GenerarPreguntas, shell.TemaDetalle:
		s.WriteString(m.resultView())
	case shell.Chatbot:
		s.WriteString(m.chatView())
	case shell.Historial:
		s.WriteString(m.historyView())
	}

	if m.loading {
		s.WriteString("\n" + promptStyle.Render("Cargando..."))
	}
	if m.message != "" {
		s.WriteString("\n" + m.message)
	}
	s.WriteString("\n" + helpStyle.Render(screenHelp[cur]))
	return s.String()
}

func (m model) statusLine() string {
	var parts []string
	if m.online {
		parts = append(parts, statusOnline.Render("● en línea"))
	} else {
		parts = append(parts, statusOffline.Render("● sin conexión"))
	}
	if m.session != nil {
		parts = append(parts, m.session.UserName)
	}
	return strings.Join(parts, "  ")
}

func (m model) row(i int, label string) string {
	if i == m.cursor {
		return selectedStyle.Render("▸ "+label) + "\n"
	}
	return normalStyle.Render(label) + "\n"
}

func (m model) wrap(text string) string {
	if m.width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(m.width - 2).Render(text)
}

func (m model) mallaView() string {
	if len(m.subjects) == 0 {
		if m.loading {
			return ""
		}
		return normalStyle.Render("No hay materias registradas.") + "\n"
	}
	var s strings.Builder
	semester := -1
	for i, subj := range m.subjects {
		if subj.Semester != semester {
			semester = subj.Semester
			s.WriteString(promptStyle.Render(fmt.Sprintf("Semestre %d", semester)) + "\n")
		}
		s.WriteString(m.row(i, subj.Name))
	}
	return s.String()
}

func (m model) temarioView() string {
	if m.subject == nil {
		return ""
	}
	var s strings.Builder
	for i, t := range m.subject.Topics {
		box := "[ ]"
		if m.selected[t.Number] {
			box = "[x]"
		}
		s.WriteString(m.row(i, box+" "+t.Label()))
	}
	return s.String()
}

func (m model) resultView() string {
	if m.result == nil {
		return ""
	}
	var s strings.Builder
	s.WriteString(promptStyle.Render(m.wrap(m.result.prompt)))
	s.WriteString("\n\n")
	if m.result.err != nil {
		s.WriteString(errorStyle.Render(m.wrap(m.result.text)))
	} else {
		s.WriteString(m.wrap(m.result.text))
	}
	s.WriteString("\n")
	return s.String()
}

func (m model) chatView() string {
	var s strings.Builder
	for _, turn := range m.chat {
		s.WriteString(promptStyle.Render("Tú: ") + m.wrap(turn.question) + "\n")
		answer := m.wrap(turn.answer)
		if turn.failed {
			answer = errorStyle.Render(answer)
		}
		s.WriteString(successStyle.Render("Bot: ") + answer + "\n\n")
	}
	s.WriteString(m.form.view())
	return s.String()
}

func (m model) historyView() string {
	if len(m.history) == 0 {
		if m.loading {
			return ""
		}
		return normalStyle.Render("Todavía no hay conversaciones.") + "\n"
	}
	var s strings.Builder
	for i, rec := range m.history {
		label := fmt.Sprintf("%s  %s: %s", rec.CreatedAt.Local().Format("2006-01-02 15:04"), rec.Kind.Title(), truncate(rec.Prompt, 50))
		s.WriteString(m.row(i, label))
	}
	rec := m.history[m.cursor]
	s.WriteString("\n")
	s.WriteString(m.wrap(fmt.Sprintf("Pregunta: %s\nRespuesta: %s", rec.Prompt, rec.Response)))
	s.WriteString("\n")
	return s.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
