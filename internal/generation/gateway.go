// Package generation wraps the external text-generation provider behind
// fixed Spanish prompt templates.
//
// Input is checked before any call is made: an empty topic list or blank
// text is rejected, and input longer than MaxInputRunes characters gets the
// localized "too long" message. Provider failures come back as the
// operation's localized error text together with an error wrapping
// common.ErrGenerationFailed. There are no retries.
package generation

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/logging"
)

// MaxInputRunes is the longest prompt input accepted, in characters.
const MaxInputRunes = 2000

// Localized messages returned to the user.
const (
	MsgTooLong       = "El texto es demasiado largo. Por favor, intenta resumirlo."
	MsgSummaryFailed = "Error al generar el resumen. Inténtalo más tarde."
	MsgGuideFailed   = "Error al generar la guía de estudio. Inténtalo más tarde."
	MsgAnswerFailed  = "Error al procesar tu petición. Inténtalo más tarde."
	MsgExplainFailed = "Error al generar la explicación del tema. Inténtalo más tarde."
)

type template struct {
	name   string
	system string
	user   string // fmt pattern with a single %s
	failed string
}

var (
	summaryTemplate = template{
		name:   "summary",
		system: "Eres un asistente que genera resúmenes educativos.",
		user:   "Genera un resumen detallado para los siguientes temas, sin comentarios adicionales: %s",
		failed: MsgSummaryFailed,
	}
	guideTemplate = template{
		name:   "guide",
		system: "Eres un asistente que genera guías de estudio educativas.",
		user:   "Genera una guía de estudio con preguntas clave para los siguientes temas, sin comentarios adicionales: %s",
		failed: MsgGuideFailed,
	}
	answerTemplate = template{
		name:   "answer",
		system: "Eres un asistente educativo capaz de responder preguntas y realizar tareas según lo solicitado.",
		user:   "%s",
		failed: MsgAnswerFailed,
	}
	explainTemplate = template{
		name:   "explain",
		system: "Eres un asistente que genera resúmenes educativos.",
		user:   "Explica de forma clara, con ejemplos y sin comentarios adicionales, el siguiente tema: %s",
		failed: MsgExplainFailed,
	}
)

// Gateway builds prompts and forwards them to a Completer.
type Gateway struct {
	completer Completer
	log       logging.Logger
	timeout   time.Duration
}

// NewGateway returns a Gateway. A zero timeout means the caller's context
// is the only deadline.
func NewGateway(c Completer, log logging.Logger, timeout time.Duration) *Gateway {
	return &Gateway{completer: c, log: log.With("module", "generation"), timeout: timeout}
}

// FormatTopic renders a topic as "N. Title".
func FormatTopic(number int, title string) string {
	return fmt.Sprintf("%d. %s", number, title)
}

// Summarize asks for a detailed summary of topics.
func (g *Gateway) Summarize(ctx context.Context, topics []string) (string, error) {
	input, err := joinTopics(topics)
	if err != nil {
		return "", err
	}
	return g.run(ctx, summaryTemplate, input)
}

// StudyGuide asks for a study guide with key questions for topics.
func (g *Gateway) StudyGuide(ctx context.Context, topics []string) (string, error) {
	input, err := joinTopics(topics)
	if err != nil {
		return "", err
	}
	return g.run(ctx, guideTemplate, input)
}

// Answer forwards a free-form question or request.
func (g *Gateway) Answer(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", common.ErrEmptyInput
	}
	return g.run(ctx, answerTemplate, text)
}

// Explain asks for an explanation of a single topic.
func (g *Gateway) Explain(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", common.ErrNoTopics
	}
	return g.run(ctx, explainTemplate, topic)
}

func joinTopics(topics []string) (string, error) {
	cleaned := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return "", common.ErrNoTopics
	}
	return strings.Join(cleaned, ", "), nil
}

func (g *Gateway) run(ctx context.Context, t template, input string) (string, error) {
	if utf8.RuneCountInString(input) > MaxInputRunes {
		return MsgTooLong, common.ErrInputTooLong
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := g.completer.Complete(ctx, t.system, fmt.Sprintf(t.user, input))
	if err != nil {
		g.log.Error(ctx, "generation failed", "operation", t.name, "error", err)
		return t.failed, fmt.Errorf("%w: %s: %v", common.ErrGenerationFailed, t.name, err)
	}

	g.log.Debug(ctx, "generation done", "operation", t.name, "elapsed", time.Since(start))
	return strings.TrimSpace(out), nil
}
