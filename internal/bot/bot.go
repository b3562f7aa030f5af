// Package bot is the Telegram front end: commands and inline buttons pick
// an action per chat, the next text message is answered with generated
// content, and /start deep links hand a topic selection over from the
// screen client.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/deeplink"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/dmitrijs2005/studyguide/internal/server/services"
)

// Telegram rejects longer messages.
const maxMessageLen = 4096

const (
	textWelcome = "¡Hola! Soy tu asistente educativo. Puedes usar los comandos o seleccionar una opción:\n" +
		"/resumen - Generar un resumen\n" +
		"/guia - Crear una guía de estudio\n" +
		"/pregunta - Hacer una pregunta o petición"
	textNoAction      = "Por favor, selecciona una opción usando /start antes de enviar un mensaje."
	textUnknown       = "No conozco ese comando. Usa /start para ver las opciones."
	textUnexpected    = "Ocurrió un error inesperado. Por favor, intenta de nuevo más tarde."
	textEmpty         = "Por favor, envíame un mensaje con texto."
	textBadLink       = "El enlace no es válido. Vuelve a generarlo desde la aplicación."
	textSubjectAbsent = "No encontré la materia o los temas del enlace."
)

// action is what the chat's next text message will be used for.
type action string

const (
	actionSummary  action = "resumen"
	actionGuide    action = "guia"
	actionQuestion action = "pregunta"
)

var actionPrompts = map[action]string{
	actionSummary:  "Por favor, envíame los temas para generar el resumen.",
	actionGuide:    "Por favor, envíame los temas para generar la guía de estudio.",
	actionQuestion: "Por favor, envíame tu pregunta o petición.",
}

var actionReplyPrefix = map[action]string{
	actionSummary:  "✅ Resumen generado:\n\n",
	actionGuide:    "📘 Guía de estudio generada:\n\n",
	actionQuestion: "🤖 Respuesta:\n\n",
}

var actionKinds = map[action]models.Kind{
	actionSummary:  models.KindSummary,
	actionGuide:    models.KindGuide,
	actionQuestion: models.KindQuestion,
}

// callback data carried by the inline keyboard
var callbackActions = map[string]action{
	"generar_resumen": actionSummary,
	"generar_guia":    actionGuide,
	"hacer_pregunta":  actionQuestion,
}

func mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Generar Resumen", "generar_resumen")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Generar Guía de Estudio", "generar_guia")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Hacer una Pregunta", "hacer_pregunta")),
	)
}

// API is the part of *tgbotapi.BotAPI the bot uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Generator is implemented by *services.GenerationService.
type Generator interface {
	Generate(ctx context.Context, user string, in services.GenerateInput) (*services.GenerateResult, error)
}

// Curriculum is implemented by *services.CurriculumService.
type Curriculum interface {
	Subject(ctx context.Context, id int64) (*models.Subject, error)
}

type Bot struct {
	api         API
	gen         Generator
	curriculum  Curriculum
	log         logging.Logger
	timeout     time.Duration
	pollTimeout time.Duration

	// pending is only touched from the update loop.
	pending map[int64]action
}

func New(api API, gen Generator, curriculum Curriculum, log logging.Logger, timeout, pollTimeout time.Duration) *Bot {
	return &Bot{
		api:         api,
		gen:         gen,
		curriculum:  curriculum,
		log:         log.With("module", "bot"),
		timeout:     timeout,
		pollTimeout: pollTimeout,
		pending:     map[int64]action{},
	}
}

// Run long-polls for updates and handles them one at a time until ctx is
// cancelled or the update channel closes.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.pollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(u)
	b.log.Info(ctx, "bot is polling for updates")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, upd)
		}
	}
}

// HandleUpdate dispatches a single update.
func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message == nil || upd.Message.Chat == nil:
		return
	case upd.Message.IsCommand():
		b.handleCommand(ctx, upd.Message)
	default:
		b.handleText(ctx, upd.Message)
	}
}

func userName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	return u.UserName
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	b.log.Info(ctx, "command", "command", msg.Command(), "user", userName(msg.From), "chat", chatID)

	switch msg.Command() {
	case "start":
		if payload := strings.TrimSpace(msg.CommandArguments()); payload != "" {
			// a deep link answers on its own; a stale choice must not
			// capture the next message
			delete(b.pending, chatID)
			b.handleDeepLink(ctx, chatID, payload)
			return
		}
		reply := tgbotapi.NewMessage(chatID, textWelcome)
		reply.ReplyMarkup = mainKeyboard()
		b.send(ctx, reply)
	case "help":
		b.reply(ctx, chatID, textWelcome)
	case "resumen":
		b.choose(ctx, chatID, actionSummary)
	case "guia":
		b.choose(ctx, chatID, actionGuide)
	case "pregunta":
		b.choose(ctx, chatID, actionQuestion)
	default:
		b.reply(ctx, chatID, textUnknown)
	}
}

func (b *Bot) choose(ctx context.Context, chatID int64, a action) {
	b.pending[chatID] = a
	b.reply(ctx, chatID, actionPrompts[a])
}

func (b *Bot) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		b.log.Warn(ctx, "callback answer failed", "error", err)
	}

	a, ok := callbackActions[q.Data]
	if !ok || q.Message == nil || q.Message.Chat == nil {
		b.log.Warn(ctx, "unknown callback", "data", q.Data)
		return
	}

	chatID := q.Message.Chat.ID
	b.pending[chatID] = a
	b.send(ctx, tgbotapi.NewEditMessageText(chatID, q.Message.MessageID, actionPrompts[a]))
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	a, ok := b.pending[chatID]
	if !ok {
		b.reply(ctx, chatID, textNoAction)
		return
	}
	delete(b.pending, chatID)

	text, err := b.generate(ctx, chatID, services.GenerateInput{Kind: actionKinds[a], Text: msg.Text})
	if err != nil {
		b.reply(ctx, chatID, failureText(err))
		return
	}
	b.reply(ctx, chatID, actionReplyPrefix[a]+text)
}

// handleDeepLink answers "/start s<subject>_<n>-<n>" with a summary of the
// selected topics.
func (b *Bot) handleDeepLink(ctx context.Context, chatID int64, payload string) {
	subjectID, numbers, err := deeplink.Decode(payload)
	if err != nil {
		b.log.Warn(ctx, "bad deep link", "payload", payload, "error", err)
		b.reply(ctx, chatID, textBadLink)
		return
	}

	lookupCtx, cancel := context.WithTimeout(ctx, b.timeout)
	subject, err := b.curriculum.Subject(lookupCtx, subjectID)
	cancel()
	if err != nil {
		b.log.Warn(ctx, "deep link subject", "subject", subjectID, "error", err)
		if errors.Is(err, common.ErrNotFound) {
			b.reply(ctx, chatID, textSubjectAbsent)
		} else {
			b.reply(ctx, chatID, textUnexpected)
		}
		return
	}

	topics, err := services.SelectTopics(subject, numbers)
	if err != nil {
		b.reply(ctx, chatID, textSubjectAbsent)
		return
	}
	labels := make([]string, 0, len(topics))
	for _, t := range topics {
		labels = append(labels, fmt.Sprintf("%d. %s", t.Number, t.Title))
	}

	text, err := b.generate(ctx, chatID, services.GenerateInput{
		Kind:      models.KindSummary,
		SubjectID: subjectID,
		Topics:    numbers,
	})
	if err != nil {
		b.reply(ctx, chatID, failureText(err))
		return
	}

	header := "📚 " + subject.Name + "\n" + strings.Join(labels, "\n") + "\n\n"
	b.reply(ctx, chatID, header+actionReplyPrefix[actionSummary]+text)
}

// generate returns the text to show. A localized failure message from the
// gateway is returned as text with a nil error, so it is shown like an
// answer.
func (b *Bot) generate(ctx context.Context, chatID int64, in services.GenerateInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	user := fmt.Sprintf("%s%d", common.TelegramUserPrefix, chatID)
	res, err := b.gen.Generate(ctx, user, in)
	if err != nil {
		b.log.Warn(ctx, "generation failed", "kind", in.Kind, "chat", chatID, "error", err)
		if res != nil && res.Text != "" {
			return res.Text, nil
		}
		return "", err
	}
	return res.Text, nil
}

func failureText(err error) string {
	switch {
	case errors.Is(err, common.ErrEmptyInput), errors.Is(err, common.ErrNoTopics):
		return textEmpty
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrValidation):
		return textSubjectAbsent
	default:
		return textUnexpected
	}
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	for _, part := range splitMessage(text, maxMessageLen) {
		b.send(ctx, tgbotapi.NewMessage(chatID, part))
	}
}

func (b *Bot) send(ctx context.Context, c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Error(ctx, "send failed", "error", err)
	}
}

// splitMessage cuts text into pieces of at most limit runes, preferring to
// break after a newline.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var parts []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
