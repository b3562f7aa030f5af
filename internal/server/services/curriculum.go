package services

import (
	"context"
	"database/sql"
	"sort"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/repomanager"
)

// CurriculumService reads subjects and resolves topic selections.
type CurriculumService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCurriculumService(db *sql.DB, m repomanager.RepositoryManager) *CurriculumService {
	return &CurriculumService{db: db, repomanager: m}
}

// ListBySemester groups every subject by semester, semesters ascending and
// subjects by name.
func (s *CurriculumService) ListBySemester(ctx context.Context) ([]models.Semester, error) {
	subjects, err := s.repomanager.Subjects(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	bySemester := map[int][]models.Subject{}
	for _, subj := range subjects {
		bySemester[subj.Semester] = append(bySemester[subj.Semester], *subj)
	}

	result := make([]models.Semester, 0, len(bySemester))
	for n, list := range bySemester {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
		result = append(result, models.Semester{Number: n, Subjects: list})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

// Subject returns one subject with its ordered topics.
func (s *CurriculumService) Subject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.repomanager.Subjects(s.db).Get(ctx, id)
}

// SelectTopics resolves topic numbers against subject, returning them in
// syllabus order without duplicates.
func SelectTopics(subject *models.Subject, numbers []int) ([]models.Topic, error) {
	if len(numbers) == 0 {
		return nil, common.ErrNoTopics
	}

	wanted := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if _, ok := subject.Topic(n); !ok {
			return nil, common.ErrValidation
		}
		wanted[n] = struct{}{}
	}

	result := make([]models.Topic, 0, len(wanted))
	for _, t := range subject.Topics {
		if _, ok := wanted[t.Number]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}
