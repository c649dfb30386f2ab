// Package pdf renders the bug collection as a PDF document.
package pdf

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

const (
	lineHeight = 6.0
	fontFamily = "Helvetica"
)

// Renderer writes one block per bug: id, title, description, severity and
// creation time, separated by a divider.
type Renderer struct {
	title string
	now   func() time.Time
}

// NewRenderer creates a renderer whose documents carry the given title.
func NewRenderer(title string) *Renderer {
	return &Renderer{title: title, now: time.Now}
}

// Render writes bugs to w. An empty slice still yields a valid one-page
// document with a notice.
func (r *Renderer) Render(w io.Writer, bugs []domain.Bug) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(r.title, true)
	doc.SetCreator("bugtracker", true)
	doc.SetCreationDate(r.now())
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont(fontFamily, "B", 16)
	doc.CellFormat(0, 10, tr(r.title), "", 1, "L", false, 0, "")
	doc.Ln(2)

	if len(bugs) == 0 {
		doc.SetFont(fontFamily, "I", 12)
		doc.CellFormat(0, lineHeight, "No bugs.", "", 1, "L", false, 0, "")
	}

	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()

	for i, b := range bugs {
		if i > 0 {
			y := doc.GetY() + 2
			doc.Line(left, y, pageW-right, y)
			doc.Ln(5)
		}
		field(doc, tr, "Bug ID", b.ID)
		field(doc, tr, "Title", b.Title)
		field(doc, tr, "Description", b.Description)
		field(doc, tr, "Severity", strconv.Itoa(b.Severity))
		field(doc, tr, "CreatedAt", createdAt(b.CreatedAt))
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf: render: %w", err)
	}
	return nil
}

func field(doc *fpdf.Fpdf, tr func(string) string, label, value string) {
	doc.SetFont(fontFamily, "B", 11)
	doc.CellFormat(30, lineHeight, label+":", "", 0, "L", false, 0, "")
	doc.SetFont(fontFamily, "", 11)
	doc.MultiCell(0, lineHeight, tr(value), "", "L", false)
}

func createdAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC1123)
}
