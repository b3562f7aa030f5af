package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/generation"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
)

// Generator is implemented by *generation.Gateway.
type Generator interface {
	Summarize(ctx context.Context, topics []string) (string, error)
	StudyGuide(ctx context.Context, topics []string) (string, error)
	Answer(ctx context.Context, text string) (string, error)
	Explain(ctx context.Context, topic string) (string, error)
}

// GenerateInput selects what to generate. Summary and guide requests take
// either SubjectID+Topics or free Text listing the topics; a topic
// explanation takes exactly one topic; a question takes Text.
type GenerateInput struct {
	Kind      models.Kind
	SubjectID int64
	Topics    []int
	Text      string
}

// GenerateResult is what the user sees. Record is nil when nothing was
// stored (failed generation or a history write error).
type GenerateResult struct {
	Text   string
	Record *models.HistoryRecord
}

// GenerationService runs a generation and appends it to the user's history.
type GenerationService struct {
	curriculum *CurriculumService
	history    *HistoryService
	gen        Generator
	log        logging.Logger
}

func NewGenerationService(c *CurriculumService, h *HistoryService, g Generator, log logging.Logger) *GenerationService {
	return &GenerationService{curriculum: c, history: h, gen: g, log: log.With("module", "generate")}
}

// Generate produces text for user. When the generator fails with a
// localized message (input too long, provider failure) the message is
// returned in the result together with the error.
func (s *GenerationService) Generate(ctx context.Context, user string, in GenerateInput) (*GenerateResult, error) {
	if user == "" {
		return nil, common.ErrUnauthorized
	}

	prompt, err := s.prompt(ctx, in)
	if err != nil {
		return nil, err
	}

	var text string
	switch in.Kind {
	case models.KindSummary:
		text, err = s.gen.Summarize(ctx, prompt)
	case models.KindGuide:
		text, err = s.gen.StudyGuide(ctx, prompt)
	case models.KindTopic:
		text, err = s.gen.Explain(ctx, prompt[0])
	case models.KindQuestion:
		text, err = s.gen.Answer(ctx, prompt[0])
	}
	if err != nil {
		if text != "" {
			return &GenerateResult{Text: text}, err
		}
		return nil, err
	}

	res := &GenerateResult{Text: text}
	rec, err := s.history.Record(ctx, &models.HistoryRecord{
		User:     user,
		Kind:     in.Kind,
		Prompt:   strings.Join(prompt, ", "),
		Response: text,
	})
	if err != nil {
		s.log.Warn(ctx, "history write failed", "user", user, "kind", in.Kind, "error", err)
		return res, nil
	}
	res.Record = rec
	return res, nil
}

func (s *GenerationService) prompt(ctx context.Context, in GenerateInput) ([]string, error) {
	switch in.Kind {
	case models.KindQuestion:
		if strings.TrimSpace(in.Text) == "" {
			return nil, common.ErrEmptyInput
		}
		return []string{in.Text}, nil

	case models.KindSummary, models.KindGuide, models.KindTopic:
		if in.SubjectID == 0 {
			if strings.TrimSpace(in.Text) == "" {
				return nil, common.ErrNoTopics
			}
			return []string{in.Text}, nil
		}
		if in.Kind == models.KindTopic && len(in.Topics) != 1 {
			return nil, common.ErrValidation
		}

		subject, err := s.curriculum.Subject(ctx, in.SubjectID)
		if err != nil {
			return nil, err
		}
		topics, err := SelectTopics(subject, in.Topics)
		if err != nil {
			return nil, err
		}
		labels := make([]string, len(topics))
		for i, t := range topics {
			labels[i] = generation.FormatTopic(t.Number, t.Title)
		}
		return labels, nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", common.ErrValidation, in.Kind)
	}
}
