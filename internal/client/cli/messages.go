package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/studyguide/internal/client/models"
	"github.com/dmitrijs2005/studyguide/internal/client/shell"
)

// tag identifies the screen visit a command was started from. Results for
// an earlier visit are dropped.
type tag struct {
	screen shell.Screen
	visit  int
}

type errMsg struct {
	tag
	err error
}

type lastLoginMsg struct {
	tag
	login string
}

type registeredMsg struct{ tag }

type loggedInMsg struct {
	tag
	session *models.Session
}

type semestersMsg struct {
	tag
	semesters []models.Semester
}

type subjectMsg struct {
	tag
	subject *models.Subject
}

// generatedMsg carries generated text. err may be set together with text
// when the server produced a user-facing failure message.
type generatedMsg struct {
	tag
	kind   models.Kind
	prompt string
	text   string
	err    error
}

type historyMsg struct {
	tag
	records []models.HistoryRecord
}

type savedMsg struct {
	tag
	path string
}

type pingTickMsg struct{}

type pingMsg struct{ err error }

func (m model) tag() tag {
	return tag{screen: m.shell.Current(), visit: m.visit}
}

// call runs fn under the request timeout.
func (m model) call(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	ctx, timeout := m.ctx, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return fn(ctx)
	}
}

func (m model) loadLastLogin() tea.Cmd {
	t := m.tag()
	return m.call(func(ctx context.Context) tea.Msg {
		return lastLoginMsg{tag: t, login: m.auth.LastLogin(ctx)}
	})
}

func (m model) register(email, username, password string) tea.Cmd {
	t := m.tag()
	return m.call(func(ctx context.Context) tea.Msg {
		if err := m.auth.Register(ctx, email, username, password); err != nil {
			return errMsg{tag: t, err: err}
		}
		return registeredMsg{tag: t}
	})
}

func (m model) login(login, password string) tea.Cmd {
	t := m.tag()
	return m.call(func(ctx context.Context) tea.Msg {
		sess, err := m.auth.Login(ctx, login, password)
		if err != nil {
			return errMsg{tag: t, err: err}
		}
		return loggedInMsg{tag: t, session: sess}
	})
}

func (m model) loadSemesters() tea.Cmd {
	t := m.tag()
	return m.call(func(ctx context.Context) tea.Msg {
		s, err := m.study.Semesters(ctx)
		if err != nil {
			return errMsg{tag: t, err: err}
		}
		return semestersMsg{tag: t, semesters: s}
	})
}

func (m model) loadSubject(id int64) tea.Cmd {
	t := m.tag()
	return m.call(func(ctx context.Context) tea.Msg {
		s, err := m.study.Subject(ctx, id)
		if err != nil {
			return errMsg{tag: t, err: err}
		}
		return subjectMsg{tag: t, subject: s}
	})
}

func (m model) generate(req models.GenerateRequest, prompt string) tea.Cmd {
	t := m.tag()
	return m.call(func(ctx context.Context) tea.Msg {
		text, err := m.study.Generate(ctx, req)
		return generatedMsg{tag: t, kind: req.Kind, prompt: prompt, text: text, err: err}
	})
}

func (m model) loadHistory() tea.Cmd {
	t := m.tag()
	return m.call(func(ctx context.Context) tea.Msg {
		recs, err := m.study.History(ctx, historyLimit)
		if err != nil {
			return errMsg{tag: t, err: err}
		}
		return historyMsg{tag: t, records: recs}
	})
}

func (m model) exportRecord(rec models.HistoryRecord) tea.Cmd {
	t := m.tag()
	return m.call(func(ctx context.Context) tea.Msg {
		path, err := m.study.DownloadExport(ctx, rec)
		if err != nil {
			return errMsg{tag: t, err: err}
		}
		return savedMsg{tag: t, path: path}
	})
}

func (m model) savePDF(kind models.Kind, prompt, body string) tea.Cmd {
	t := m.tag()
	return func() tea.Msg {
		path, err := m.study.SavePDF(kind, prompt, body, time.Now())
		if err != nil {
			return errMsg{tag: t, err: err}
		}
		return savedMsg{tag: t, path: path}
	}
}

func (m model) pingTick() tea.Cmd {
	return tea.Tick(m.pingInterval, func(time.Time) tea.Msg { return pingTickMsg{} })
}

func (m model) ping() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return pingMsg{err: m.auth.Ping(ctx)}
	}
}
