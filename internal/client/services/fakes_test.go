package services

import (
	"context"

	"github.com/dmitrijs2005/studyguide/internal/client/models"
	"github.com/dmitrijs2005/studyguide/internal/common"
)

type fakeClient struct {
	registerErr error
	loginSess   *models.Session
	loginErr    error
	loggedOut   bool
	pingErr     error
	closed      bool

	semesters []models.Semester
	subject   *models.Subject
	genText   string
	genErr    error
	history   []models.HistoryRecord
	exportURL string
	exportErr error

	lastExportID string
	lastGenReq   models.GenerateRequest
	lastLimit    int
}

func (f *fakeClient) Close() error { f.closed = true; return nil }
func (f *fakeClient) Register(ctx context.Context, email, username, password string) error {
	return f.registerErr
}
func (f *fakeClient) Login(ctx context.Context, login, password string) (*models.Session, error) {
	return f.loginSess, f.loginErr
}
func (f *fakeClient) Logout()                        { f.loggedOut = true }
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeClient) ListSubjects(ctx context.Context) ([]models.Semester, error) {
	return f.semesters, nil
}
func (f *fakeClient) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	if f.subject == nil || f.subject.ID != id {
		return nil, common.ErrNotFound
	}
	return f.subject, nil
}
func (f *fakeClient) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	f.lastGenReq = req
	return f.genText, f.genErr
}
func (f *fakeClient) ListHistory(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	f.lastLimit = limit
	return f.history, nil
}
func (f *fakeClient) ExportHistory(ctx context.Context, id string) (string, error) {
	f.lastExportID = id
	return f.exportURL, f.exportErr
}

type fakePrefs struct {
	values map[string]string
	setErr error
	getErr error
}

func newFakePrefs() *fakePrefs { return &fakePrefs{values: map[string]string{}} }

func (p *fakePrefs) Get(ctx context.Context, key string) (string, error) {
	if p.getErr != nil {
		return "", p.getErr
	}
	v, ok := p.values[key]
	if !ok {
		return "", common.ErrNotFound
	}
	return v, nil
}
func (p *fakePrefs) Set(ctx context.Context, key, value string) error {
	if p.setErr != nil {
		return p.setErr
	}
	p.values[key] = value
	return nil
}
func (p *fakePrefs) Delete(ctx context.Context, key string) error {
	delete(p.values, key)
	return nil
}
