// Package models defines client-side data models used by the study guide
// screen client.
package models

import (
	"fmt"
	"time"
)

type Topic struct {
	Number int
	Title  string
}

// Label renders the topic as "N. Title".
func (t Topic) Label() string {
	return fmt.Sprintf("%d. %s", t.Number, t.Title)
}

type Subject struct {
	ID       int64
	Name     string
	Semester int
	Topics   []Topic
}

type Semester struct {
	Number   int
	Subjects []Subject
}

// Kind is the type of a generation request and of the history record it
// leaves behind.
type Kind string

const (
	KindSummary  Kind = "resumen"
	KindGuide    Kind = "guia"
	KindQuestion Kind = "pregunta"
	KindTopic    Kind = "tema"
)

// Title is the Spanish heading shown for records of kind k.
func (k Kind) Title() string {
	switch k {
	case KindSummary:
		return "Resumen"
	case KindGuide:
		return "Guía de estudio"
	case KindQuestion:
		return "Pregunta"
	case KindTopic:
		return "Tema"
	default:
		return string(k)
	}
}

type GenerateRequest struct {
	Kind      Kind
	SubjectID int64
	Topics    []int
	Text      string
}

type HistoryRecord struct {
	ID        string
	Kind      Kind
	Prompt    string
	Response  string
	CreatedAt time.Time
}

// Session describes the logged-in account.
type Session struct {
	Email     string
	UserName  string
	ExpiresAt time.Time
}
