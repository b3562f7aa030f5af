package cli

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/studyguide/internal/client/models"
	"github.com/dmitrijs2005/studyguide/internal/client/services"
	"github.com/dmitrijs2005/studyguide/internal/client/shell"
	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/logging"
)

const historyLimit = 50

type chatTurn struct {
	question string
	answer   string
	failed   bool
}

type model struct {
	ctx          context.Context
	auth         services.AuthService
	study        services.StudyService
	log          logging.Logger
	timeout      time.Duration
	pingInterval time.Duration

	shell    *shell.Shell
	visit    int
	cursor   int
	loading  bool
	online   bool
	message  string
	width    int
	quitting bool

	session *models.Session
	form    form

	subjects  []models.Subject
	subjectID int64
	subject   *models.Subject
	selected  map[int]bool
	topic     models.Topic

	result  *generatedMsg
	chat    []chatTurn
	history []models.HistoryRecord
}

func newModel(ctx context.Context, auth services.AuthService, study services.StudyService, log logging.Logger, timeout, pingInterval time.Duration) model {
	return model{
		ctx:          ctx,
		auth:         auth,
		study:        study,
		log:          log.With("module", "screens"),
		timeout:      timeout,
		pingInterval: pingInterval,
		shell:        shell.New(),
		selected:     map[int]bool{},
	}
}

func (m model) Init() tea.Cmd {
	return m.ping()
}

type tagged interface {
	msgTag() tag
}

func (t tag) msgTag() tag { return t }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pingTickMsg:
		return m, m.ping()

	case pingMsg:
		online := msg.err == nil
		if online != m.online {
			m.log.Info(m.ctx, "connectivity changed", "online", online)
		}
		m.online = online
		return m, m.pingTick()
	}

	if t, ok := msg.(tagged); ok && t.msgTag() != m.tag() {
		m.log.Debug(m.ctx, "dropping stale result", "screen", t.msgTag().screen.String())
		return m, nil
	}
	return m.handleResult(msg)
}

func (m model) handleResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		m.loading = false
		m.log.Warn(m.ctx, "request failed", "screen", msg.screen.String(), "error", msg.err)
		m.message = errorStyle.Render("✗ " + userMessage(msg.err))

	case lastLoginMsg:
		if msg.login != "" && len(m.form.fields) > 0 && m.form.fields[0].value == "" {
			m.form.fields[0].value = msg.login
			m.form.focus = 1
		}

	case registeredMsg:
		m.loading = false
		var cmd tea.Cmd
		m, cmd = m.goTo(shell.ActSubmitOK)
		m.message = successStyle.Render("✓ Registro exitoso. Ya puedes entrar.")
		return m, cmd

	case loggedInMsg:
		m.loading = false
		m.session = msg.session
		var cmd tea.Cmd
		m, cmd = m.goTo(shell.ActSubmitOK)
		m.message = successStyle.Render("✓ Inicio de sesión exitoso")
		return m, cmd

	case semestersMsg:
		m.loading = false
		var subjects []models.Subject
		for _, s := range msg.semesters {
			subjects = append(subjects, s.Subjects...)
		}
		m.subjects = subjects
		m.cursor = clamp(m.cursor, len(m.subjects))

	case subjectMsg:
		m.loading = false
		m.subject = msg.subject
		known := map[int]bool{}
		for _, t := range msg.subject.Topics {
			known[t.Number] = true
		}
		for n := range m.selected {
			if !known[n] {
				delete(m.selected, n)
			}
		}
		m.cursor = clamp(m.cursor, len(msg.subject.Topics))

	case generatedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Warn(m.ctx, "generation failed", "kind", string(msg.kind), "error", msg.err)
		}
		if msg.screen == shell.Chatbot {
			turn := chatTurn{question: msg.prompt, answer: msg.text, failed: msg.err != nil}
			if turn.answer == "" {
				turn.answer = userMessage(msg.err)
			}
			m.chat = append(m.chat, turn)
			m.form.clear()
			return m, nil
		}
		res := msg
		m.result = &res
		if msg.err != nil && msg.text == "" {
			m.message = errorStyle.Render("✗ " + userMessage(msg.err))
		}

	case historyMsg:
		m.loading = false
		m.history = msg.records
		m.cursor = clamp(m.cursor, len(m.history))

	case savedMsg:
		m.loading = false
		m.message = successStyle.Render("✓ PDF guardado en " + msg.path)
	}
	return m, nil
}

// goTo applies action to the shell and enters the resulting screen.
func (m model) goTo(action shell.Action) (model, tea.Cmd) {
	if _, err := m.shell.Go(action); err != nil {
		m.log.Warn(m.ctx, "navigation failed", "error", err)
		return m, nil
	}
	m.visit++
	m.cursor = 0
	m.loading = false
	m.message = ""
	return m.enter()
}

// enter runs the loader of the current screen. Every visit re-queries the
// server.
func (m model) enter() (model, tea.Cmd) {
	switch m.shell.Current() {
	case shell.Registro:
		m.form = newForm(
			field{label: "Correo Institucional"},
			field{label: "Nombre de Usuario"},
			field{label: "Contraseña", password: true},
		)
		return m, nil

	case shell.Entrar:
		m.form = newForm(
			field{label: "Correo o Nombre de Usuario"},
			field{label: "Contraseña", password: true},
		)
		return m, m.loadLastLogin()

	case shell.MallaCurricular:
		m.loading = true
		return m, m.loadSemesters()

	case shell.Temario:
		m.loading = true
		return m, m.loadSubject(m.subjectID)

	case shell.GenerarResumen, shell.GenerarPreguntas:
		m.result = nil
		kind := models.KindSummary
		if m.shell.Current() == shell.GenerarPreguntas {
			kind = models.KindGuide
		}
		topics := m.selectedTopics()
		if len(topics) == 0 {
			m.message = errorStyle.Render("✗ " + userMessage(common.ErrNoTopics))
			return m, nil
		}
		numbers := make([]int, 0, len(topics))
		for _, t := range topics {
			numbers = append(numbers, t.Number)
		}
		m.loading = true
		return m, m.generate(models.GenerateRequest{Kind: kind, SubjectID: m.subjectID, Topics: numbers}, m.topicsPrompt(topics))

	case shell.TemaDetalle:
		m.result = nil
		m.loading = true
		req := models.GenerateRequest{Kind: models.KindTopic, SubjectID: m.subjectID, Topics: []int{m.topic.Number}}
		return m, m.generate(req, m.topicsPrompt([]models.Topic{m.topic}))

	case shell.Chatbot:
		m.form = newForm(field{label: "Escribe tu pregunta aquí"})
		return m, nil

	case shell.Historial:
		m.loading = true
		return m, m.loadHistory()
	}
	return m, nil
}

// selectedTopics returns the chosen topics in curriculum order.
func (m model) selectedTopics() []models.Topic {
	if m.subject == nil {
		return nil
	}
	var out []models.Topic
	for _, t := range m.subject.Topics {
		if m.selected[t.Number] {
			out = append(out, t)
		}
	}
	return out
}

func (m model) topicsPrompt(topics []models.Topic) string {
	labels := make([]string, 0, len(topics))
	for _, t := range topics {
		labels = append(labels, t.Label())
	}
	name := ""
	if m.subject != nil {
		name = m.subject.Name + ": "
	}
	return name + strings.Join(labels, "; ")
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
