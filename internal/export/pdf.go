// Package export renders generated study material as PDF documents.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Document is one exported piece of text.
type Document struct {
	Title     string
	Subtitle  string
	Body      string
	CreatedAt time.Time
}

const lineHeight = 6.0

// RenderPDF lays doc out on A4 pages with the core Helvetica font. Text is
// translated to cp1252 so Spanish accents survive.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("studyguide", true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
	}
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(doc.Title), "", "L", false)

	if doc.Subtitle != "" || !doc.CreatedAt.IsZero() {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(90, 90, 90)
		sub := doc.Subtitle
		if !doc.CreatedAt.IsZero() {
			if sub != "" {
				sub += " · "
			}
			sub += doc.CreatedAt.Format("02/01/2006 15:04")
		}
		pdf.MultiCell(0, lineHeight, tr(sub), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, para := range strings.Split(strings.ReplaceAll(doc.Body, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(para) == "" {
			pdf.Ln(lineHeight / 2)
			continue
		}
		pdf.MultiCell(0, lineHeight, tr(para), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
