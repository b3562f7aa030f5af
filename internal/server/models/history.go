package models

import "time"

// Kind is the generation operation a history record was produced by.
type Kind string

const (
	KindSummary  Kind = "resumen"
	KindGuide    Kind = "guia"
	KindQuestion Kind = "pregunta"
	KindTopic    Kind = "tema"
)

// HistoryRecord is a row of the historial table. User is either the
// account email or "telegram:<chat id>" for bot conversations.
type HistoryRecord struct {
	ID        string    `json:"id"`
	User      string    `json:"user" validate:"notblank"`
	Kind      Kind      `json:"kind" validate:"oneof=resumen guia pregunta tema"`
	Prompt    string    `json:"prompt" validate:"notblank"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
