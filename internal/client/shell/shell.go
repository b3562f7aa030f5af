// Package shell is the client's navigation state: one current screen and a
// static table of (screen, action) transitions. There are no guards and no
// back stack; "back" is an ordinary action with a fixed target.
package shell

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/studyguide/internal/common"
)

type Screen int

const (
	Inicio Screen = iota
	Registro
	Entrar
	MallaCurricular
	Temario
	GenerarResumen
	GenerarPreguntas
	Historial
	Chatbot
	TemaDetalle
)

var screenNames = [...]string{
	Inicio:           "inicio",
	Registro:         "registro",
	Entrar:           "entrar",
	MallaCurricular:  "malla_curricular",
	Temario:          "temario",
	GenerarResumen:   "generar_resumen",
	GenerarPreguntas: "generar_preguntas",
	Historial:        "historial",
	Chatbot:          "chatbot",
	TemaDetalle:      "tema_detalle",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return fmt.Sprintf("Screen(%d)", int(s))
	}
	return screenNames[s]
}

// Screens lists every screen in declaration order.
func Screens() []Screen {
	out := make([]Screen, len(screenNames))
	for i := range out {
		out[i] = Screen(i)
	}
	return out
}

type Action string

const (
	ActRegister Action = "register"
	ActLogin    Action = "login"
	ActHistory  Action = "history"
	ActSubmitOK Action = "submit-ok"
	ActBack     Action = "back"
	ActSelect   Action = "select"
	ActExit     Action = "exit"
	ActSummary  Action = "summary"
	ActGuide    Action = "guide"
	ActTopic    Action = "topic"
	ActChatbot  Action = "chatbot"
	// ActRefresh re-enters the current screen from any screen.
	ActRefresh Action = "refresh"
)

type edge struct {
	from   Screen
	action Action
}

var transitions = map[edge]Screen{
	{Inicio, ActRegister}: Registro,
	{Inicio, ActLogin}:    Entrar,
	{Inicio, ActHistory}:  Historial,

	{Registro, ActSubmitOK}: Entrar,
	{Registro, ActBack}:     Inicio,

	{Entrar, ActSubmitOK}: MallaCurricular,
	{Entrar, ActBack}:     Inicio,

	{MallaCurricular, ActSelect}:  Temario,
	{MallaCurricular, ActHistory}: Historial,
	{MallaCurricular, ActExit}:    Inicio,

	{Temario, ActSummary}: GenerarResumen,
	{Temario, ActGuide}:   GenerarPreguntas,
	{Temario, ActTopic}:   TemaDetalle,
	{Temario, ActChatbot}: Chatbot,
	{Temario, ActBack}:    MallaCurricular,

	{GenerarResumen, ActChatbot}:   Chatbot,
	{GenerarResumen, ActBack}:      Temario,
	{GenerarPreguntas, ActChatbot}: Chatbot,
	{GenerarPreguntas, ActBack}:    Temario,

	{TemaDetalle, ActBack}: Temario,
	{Chatbot, ActBack}:     Temario,
	{Historial, ActBack}:   Inicio,
}

// Next looks up the target of action from screen. Unknown pairs fail with
// common.ErrNoTransition.
func Next(from Screen, action Action) (Screen, error) {
	if action == ActRefresh {
		return from, nil
	}
	to, ok := transitions[edge{from, action}]
	if !ok {
		return from, fmt.Errorf("%w: %s --%s-->", common.ErrNoTransition, from, action)
	}
	return to, nil
}

// actions returns the actions defined for screen in name order, refresh
// excluded.
func actions(from Screen) []Action {
	var out []Action
	for e := range transitions {
		if e.from == from {
			out = append(out, e.action)
		}
	}
	slices.Sort(out)
	return out
}

// Shell holds the single current-screen pointer.
type Shell struct {
	current Screen
}

func New() *Shell {
	return &Shell{current: Inicio}
}

func (s *Shell) Current() Screen {
	return s.current
}

// Go applies action and returns the new current screen. On error the
// current screen is unchanged.
func (s *Shell) Go(action Action) (Screen, error) {
	to, err := Next(s.current, action)
	if err != nil {
		return s.current, err
	}
	s.current = to
	return to, nil
}
