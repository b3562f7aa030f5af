package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/dbx"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	historyrepo "github.com/dmitrijs2005/studyguide/internal/server/repositories/history"
	subjectsrepo "github.com/dmitrijs2005/studyguide/internal/server/repositories/subjects"
	usersrepo "github.com/dmitrijs2005/studyguide/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// fakeUsersRepo is an in-memory credential store keyed by email. order
// keeps emails in registration order.
type fakeUsersRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*models.User
	order     []string
	nextID    int
	getErr    error
	createErr error
	updateErr error
	updates   int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) put(u models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		f.nextID++
		u.ID = fmt.Sprintf("u-%d", f.nextID)
	}
	if _, ok := f.byEmail[u.Email]; !ok {
		f.order = append(f.order, u.Email)
	}
	f.byEmail[u.Email] = &u
}

func (f *fakeUsersRepo) stored(email string) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.byEmail[email]
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if err := models.Validate(u); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrDuplicateUser
	}
	f.nextID++
	u.ID = fmt.Sprintf("u-%d", f.nextID)
	u.CreatedAt = time.Now()
	cp := *u
	f.byEmail[u.Email] = &cp
	f.order = append(f.order, u.Email)
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) ListByUsername(ctx context.Context, username string) ([]*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.User
	for _, email := range f.order {
		if u := f.byEmail[email]; u.UserName == username {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash = hash
			f.updates++
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeSubjectsRepo struct {
	subjects []*models.Subject
	err      error
}

func (f *fakeSubjectsRepo) List(ctx context.Context) ([]*models.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subjects, nil
}

func (f *fakeSubjectsRepo) Get(ctx context.Context, id int64) (*models.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeHistoryRepo struct {
	mu        sync.Mutex
	records   []*models.HistoryRecord
	createErr error
	lastLimit int
}

func (f *fakeHistoryRepo) Create(ctx context.Context, rec *models.HistoryRecord) (*models.HistoryRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if err := models.Validate(rec); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.ID = fmt.Sprintf("h-%d", len(f.records)+1)
	rec.CreatedAt = time.Now().Add(time.Duration(len(f.records)) * time.Second)
	cp := *rec
	f.records = append(f.records, &cp)
	return rec, nil
}

func (f *fakeHistoryRepo) ListByUser(ctx context.Context, user string, limit int) ([]*models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	var out []*models.HistoryRecord
	for _, r := range f.records {
		if r.User == user {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeHistoryRepo) Get(ctx context.Context, user string, id string) (*models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id && r.User == user {
			return r, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeSubjectsRepo
	h *fakeHistoryRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: newFakeUsersRepo(),
		s: &fakeSubjectsRepo{subjects: sampleSubjects()},
		h: &fakeHistoryRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository        { return m.u }
func (m *fakeRepoManager) Subjects(db dbx.DBTX) subjectsrepo.Repository  { return m.s }
func (m *fakeRepoManager) History(db dbx.DBTX) historyrepo.Repository    { return m.h }

func sampleSubjects() []*models.Subject {
	return []*models.Subject{
		{ID: 3, Name: "Estructuras de Datos", Semester: 2, Topics: []models.Topic{
			{Number: 1, Title: "Listas enlazadas"}, {Number: 2, Title: "Pilas y colas"}, {Number: 3, Title: "Árboles"},
		}},
		{ID: 1, Name: "Fundamentos de Programación", Semester: 1, Topics: []models.Topic{
			{Number: 1, Title: "Algoritmos"}, {Number: 2, Title: "Variables"},
		}},
		{ID: 2, Name: "Cálculo Diferencial", Semester: 1, Topics: []models.Topic{
			{Number: 1, Title: "Números reales"}, {Number: 2, Title: "Funciones"}, {Number: 3, Title: "Límites"},
		}},
	}
}
