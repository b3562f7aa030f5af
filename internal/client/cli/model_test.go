package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/studyguide/internal/client/models"
	"github.com/dmitrijs2005/studyguide/internal/client/shell"
	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	registerErr error
	registered  []string
	loginErr    error
	loginWith   []string
	lastLogin   string
	loggedOut   bool
	pingErr     error
}

func (f *fakeAuth) Register(ctx context.Context, email, username, password string) error {
	f.registered = []string{email, username, password}
	return f.registerErr
}
func (f *fakeAuth) Login(ctx context.Context, login, password string) (*models.Session, error) {
	f.loginWith = []string{login, password}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.Session{Email: "ana@ugto.mx", UserName: "ana"}, nil
}
func (f *fakeAuth) Logout()                              { f.loggedOut = true }
func (f *fakeAuth) LastLogin(ctx context.Context) string { return f.lastLogin }
func (f *fakeAuth) Ping(ctx context.Context) error       { return f.pingErr }
func (f *fakeAuth) Close() error                         { return nil }

type fakeStudy struct {
	semesters []models.Semester
	subject   *models.Subject
	genText   string
	genErr    error
	genReqs   []models.GenerateRequest
	history   []models.HistoryRecord
	exported  []string
	saved     []models.Kind
}

func (f *fakeStudy) Semesters(ctx context.Context) ([]models.Semester, error) {
	return f.semesters, nil
}
func (f *fakeStudy) Subject(ctx context.Context, id int64) (*models.Subject, error) {
	if f.subject == nil || f.subject.ID != id {
		return nil, common.ErrNotFound
	}
	return f.subject, nil
}
func (f *fakeStudy) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	f.genReqs = append(f.genReqs, req)
	return f.genText, f.genErr
}
func (f *fakeStudy) History(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	return f.history, nil
}
func (f *fakeStudy) DownloadExport(ctx context.Context, rec models.HistoryRecord) (string, error) {
	f.exported = append(f.exported, rec.ID)
	return "exports/" + rec.ID + ".pdf", nil
}
func (f *fakeStudy) SavePDF(kind models.Kind, prompt, body string, at time.Time) (string, error) {
	f.saved = append(f.saved, kind)
	return "exports/" + string(kind) + ".pdf", nil
}

func newTestModel(a *fakeAuth, s *fakeStudy) model {
	return newModel(context.Background(), a, s, logging.NewNop(), time.Second, time.Hour)
}

// send delivers msg and then runs every follow-up command to completion.
func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(model)
	for cmd != nil {
		next, cmd = m.Update(cmd())
		m = next.(model)
	}
	return m
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleStudy() *fakeStudy {
	subj := models.Subject{ID: 7, Name: "Cálculo", Semester: 1, Topics: []models.Topic{
		{Number: 1, Title: "Límites"},
		{Number: 2, Title: "Derivadas"},
		{Number: 3, Title: "Integrales"},
	}}
	return &fakeStudy{
		semesters: []models.Semester{
			{Number: 1, Subjects: []models.Subject{subj}},
			{Number: 2, Subjects: []models.Subject{{ID: 9, Name: "Física", Semester: 2}}},
		},
		subject: &subj,
		genText: "texto generado",
	}
}

// loggedIn walks inicio -> entrar -> malla_curricular.
func loggedIn(t *testing.T, a *fakeAuth, s *fakeStudy) model {
	t.Helper()
	m := newTestModel(a, s)
	m = send(t, m, keyDown)
	m = send(t, m, keyEnter)
	require.Equal(t, shell.Entrar, m.shell.Current())
	m = typeText(t, m, "ana")
	m = send(t, m, keyEnter)
	m = typeText(t, m, "secret")
	m = send(t, m, keyEnter)
	require.Equal(t, shell.MallaCurricular, m.shell.Current())
	return m
}

func TestInicio_MenuNavigation(t *testing.T) {
	m := newTestModel(&fakeAuth{}, &fakeStudy{})
	assert.Equal(t, shell.Inicio, m.shell.Current())

	m = send(t, m, keyEnter)
	assert.Equal(t, shell.Registro, m.shell.Current())

	m = send(t, m, keyEsc)
	assert.Equal(t, shell.Inicio, m.shell.Current())

	m = send(t, m, keyDown)
	m = send(t, m, keyDown)
	m = send(t, m, keyEnter)
	assert.Equal(t, shell.Historial, m.shell.Current())
}

func TestInicio_Quit(t *testing.T) {
	m := newTestModel(&fakeAuth{}, &fakeStudy{})
	next, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(model).quitting)
	assert.Equal(t, "", next.(model).View())
}

func TestRegister_GoesToEntrarWithPrefill(t *testing.T) {
	a := &fakeAuth{lastLogin: "ana@ugto.mx"}
	m := newTestModel(a, &fakeStudy{})
	m = send(t, m, keyEnter)

	m = typeText(t, m, "ana@ugto.mx")
	m = send(t, m, keyEnter)
	m = typeText(t, m, "ana")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "pw")
	m = send(t, m, keyEnter)

	assert.Equal(t, []string{"ana@ugto.mx", "ana", "pw"}, a.registered)
	assert.Equal(t, shell.Entrar, m.shell.Current())
	assert.Contains(t, m.message, "Registro exitoso")
	assert.Equal(t, "ana@ugto.mx", m.form.value(0))
	assert.Equal(t, 1, m.form.focus)
}

func TestRegister_InvalidDomainStaysWithMessage(t *testing.T) {
	a := &fakeAuth{registerErr: common.ErrInvalidDomain}
	m := newTestModel(a, &fakeStudy{})
	m = send(t, m, keyEnter)
	m = send(t, m, keyEnter)
	m = send(t, m, keyEnter)
	m = send(t, m, keyEnter)

	assert.Equal(t, shell.Registro, m.shell.Current())
	assert.False(t, m.loading)
	assert.Contains(t, m.message, "Solo se permiten correos institucionales.")
}

func TestLogin_LoadsCurriculum(t *testing.T) {
	a := &fakeAuth{}
	m := loggedIn(t, a, sampleStudy())

	assert.Equal(t, []string{"ana", "secret"}, a.loginWith)
	require.NotNil(t, m.session)
	require.Len(t, m.subjects, 2)
	assert.Equal(t, "Cálculo", m.subjects[0].Name)
	assert.Contains(t, m.View(), "Semestre 2")
}

func TestLogin_BadCredential(t *testing.T) {
	a := &fakeAuth{loginErr: common.ErrBadCredential}
	m := newTestModel(a, &fakeStudy{})
	m = send(t, m, keyDown)
	m = send(t, m, keyEnter)
	m = typeText(t, m, "ana")
	m = send(t, m, keyEnter)
	m = typeText(t, m, "nope")
	m = send(t, m, keyEnter)

	assert.Equal(t, shell.Entrar, m.shell.Current())
	assert.Contains(t, m.message, "Credenciales incorrectas.")
}

func TestTemario_SummaryUsesSelectedTopicsInOrder(t *testing.T) {
	s := sampleStudy()
	m := loggedIn(t, &fakeAuth{}, s)

	m = send(t, m, keyEnter)
	require.Equal(t, shell.Temario, m.shell.Current())
	require.NotNil(t, m.subject)

	m = send(t, m, keyDown)
	m = send(t, m, keyDown)
	m = send(t, m, keySpace)
	m = send(t, m, key("k"))
	m = send(t, m, key("k"))
	m = send(t, m, keySpace)

	m = send(t, m, key("r"))
	require.Equal(t, shell.GenerarResumen, m.shell.Current())
	require.Len(t, s.genReqs, 1)
	assert.Equal(t, models.KindSummary, s.genReqs[0].Kind)
	assert.Equal(t, int64(7), s.genReqs[0].SubjectID)
	assert.Equal(t, []int{1, 3}, s.genReqs[0].Topics)
	require.NotNil(t, m.result)
	assert.Contains(t, m.View(), "texto generado")

	m = send(t, m, key("s"))
	assert.Equal(t, []models.Kind{models.KindSummary}, s.saved)
	assert.Contains(t, m.message, "exports/resumen.pdf")

	m = send(t, m, keyEsc)
	assert.Equal(t, shell.Temario, m.shell.Current())
	assert.True(t, m.selected[1])
	assert.True(t, m.selected[3])
}

func TestTemario_GuideAndTopicDetail(t *testing.T) {
	s := sampleStudy()
	m := loggedIn(t, &fakeAuth{}, s)
	m = send(t, m, keyEnter)
	m = send(t, m, key("a"))
	m = send(t, m, key("g"))
	require.Equal(t, shell.GenerarPreguntas, m.shell.Current())
	assert.Equal(t, models.KindGuide, s.genReqs[0].Kind)
	assert.Equal(t, []int{1, 2, 3}, s.genReqs[0].Topics)

	m = send(t, m, keyEsc)
	m = send(t, m, keyDown)
	m = send(t, m, keyEnter)
	require.Equal(t, shell.TemaDetalle, m.shell.Current())
	assert.Equal(t, models.KindTopic, s.genReqs[1].Kind)
	assert.Equal(t, []int{2}, s.genReqs[1].Topics)
}

func TestSummary_WithoutTopicsDoesNotCall(t *testing.T) {
	s := sampleStudy()
	m := loggedIn(t, &fakeAuth{}, s)
	m = send(t, m, keyEnter)
	m = send(t, m, key("r"))

	assert.Equal(t, shell.GenerarResumen, m.shell.Current())
	assert.Empty(t, s.genReqs)
	assert.Contains(t, m.message, "Selecciona al menos un tema.")
}

func TestSummary_FailureShowsServerText(t *testing.T) {
	s := sampleStudy()
	s.genText = "Error al generar el resumen. Inténtalo más tarde."
	s.genErr = common.ErrGenerationFailed
	m := loggedIn(t, &fakeAuth{}, s)
	m = send(t, m, keyEnter)
	m = send(t, m, keySpace)
	m = send(t, m, key("r"))

	require.NotNil(t, m.result)
	assert.Contains(t, m.View(), "Error al generar el resumen.")

	m = send(t, m, key("s"))
	assert.Empty(t, s.saved)
}

func TestChatbot_AppendsTurns(t *testing.T) {
	s := sampleStudy()
	s.genText = "42"
	m := loggedIn(t, &fakeAuth{}, s)
	m = send(t, m, keyEnter)
	m = send(t, m, key("c"))
	require.Equal(t, shell.Chatbot, m.shell.Current())

	m = typeText(t, m, "¿sentido?")
	m = send(t, m, keyEnter)

	require.Len(t, m.chat, 1)
	assert.Equal(t, "¿sentido?", m.chat[0].question)
	assert.Equal(t, "42", m.chat[0].answer)
	assert.Equal(t, models.KindQuestion, s.genReqs[0].Kind)
	assert.Equal(t, "¿sentido?", s.genReqs[0].Text)
	assert.Equal(t, "", m.form.value(0))

	s.genText, s.genErr = "", common.ErrEmptyInput
	m = send(t, m, keyEnter)
	require.Len(t, m.chat, 2)
	assert.True(t, m.chat[1].failed)
	assert.Equal(t, "Escribe tu pregunta antes de enviarla.", m.chat[1].answer)
}

func TestMalla_ExitLogsOut(t *testing.T) {
	a := &fakeAuth{}
	m := loggedIn(t, a, sampleStudy())
	m = send(t, m, key("x"))

	assert.Equal(t, shell.Inicio, m.shell.Current())
	assert.True(t, a.loggedOut)
	assert.Nil(t, m.session)
}

func TestStaleResultIsDropped(t *testing.T) {
	s := sampleStudy()
	m := newTestModel(&fakeAuth{}, s)
	m = send(t, m, keyDown)
	m = send(t, m, keyEnter)
	m = typeText(t, m, "ana")
	m = send(t, m, keyEnter)
	m = typeText(t, m, "pw")

	next, cmd := m.Update(keyEnter)
	m = next.(model)
	require.NotNil(t, cmd)
	loginResult := cmd()

	m = send(t, m, keyEsc)
	require.Equal(t, shell.Inicio, m.shell.Current())

	m = send(t, m, loginResult)
	assert.Equal(t, shell.Inicio, m.shell.Current())
	assert.Nil(t, m.session)
}

func TestHistorial_ExportSelected(t *testing.T) {
	s := &fakeStudy{history: []models.HistoryRecord{
		{ID: "a", Kind: models.KindQuestion, Prompt: "p1", Response: "r1", CreatedAt: time.Now()},
		{ID: "b", Kind: models.KindSummary, Prompt: "p2", Response: "r2", CreatedAt: time.Now()},
	}}
	m := newTestModel(&fakeAuth{}, s)
	m = send(t, m, keyDown)
	m = send(t, m, keyDown)
	m = send(t, m, keyEnter)
	require.Equal(t, shell.Historial, m.shell.Current())
	require.Len(t, m.history, 2)

	m = send(t, m, keyDown)
	assert.Contains(t, m.View(), "Respuesta: r2")

	m = send(t, m, keyEnter)
	assert.Equal(t, []string{"b"}, s.exported)
	assert.Contains(t, m.message, "exports/b.pdf")
}

func TestHistorial_KeysIgnoredWhileLoading(t *testing.T) {
	s := &fakeStudy{history: []models.HistoryRecord{{ID: "a"}}}
	m := newTestModel(&fakeAuth{}, s)
	m = send(t, m, keyDown)
	m = send(t, m, keyDown)

	next, _ := m.Update(keyEnter)
	m = next.(model)
	require.True(t, m.loading)

	next, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Empty(t, next.(model).history)
}

func TestPing_UpdatesStatus(t *testing.T) {
	m := newTestModel(&fakeAuth{}, &fakeStudy{})
	next, cmd := m.Update(pingMsg{})
	assert.True(t, next.(model).online)
	assert.NotNil(t, cmd)
	assert.Contains(t, next.(model).View(), "en línea")

	next, _ = next.(model).Update(pingMsg{err: errors.New("down")})
	assert.False(t, next.(model).online)
}

func TestCtrlCQuitsFromForms(t *testing.T) {
	m := newTestModel(&fakeAuth{}, &fakeStudy{})
	m = send(t, m, keyEnter)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, next.(model).quitting)
}
