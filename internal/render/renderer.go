// Package render implements the signed document renderer.
//
// Rendering is a pure function of an approved submission and its template:
// identical inputs produce byte-identical PDFs. The PDF timestamps are
// pinned to the submission's approval time to keep reproduced documents
// verifiable against archived copies.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
	"formgate.io/formgate/internal/service"
)

// OrgIdentity is the fixed organization block printed on every page.
type OrgIdentity struct {
	Name    string
	Address string
	Contact string
}

// Page geometry in millimeters (A4 portrait).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 34.0
	bottomLimit  = 272.0 // blocks must not start below this
	usableWidth  = pageWidth - marginLeft - marginRight
	lineHeight   = 6.0
	labelColumn  = 60.0
	checkboxSide = 4.0

	sigBlockWidth  = 80.0
	sigBlockHeight = 46.0
	sigImageWidth  = 45.0
	sigImageHeight = 18.0

	dateLayout = "02 Jan 2006"
)

// Renderer produces the official signed PDF for approved submissions.
type Renderer struct {
	org      OrgIdentity
	compress bool
}

// NewRenderer creates a renderer stamping documents with the given
// organization identity.
func NewRenderer(org OrgIdentity) *Renderer {
	return &Renderer{org: org, compress: true}
}

// SetCompression toggles PDF stream compression. Tests disable it so the
// content streams stay inspectable as plain text.
func (r *Renderer) SetCompression(on bool) {
	r.compress = on
}

// Render produces the paginated signed document. The submission must be
// APPROVED; nothing is emitted otherwise.
func (r *Renderer) Render(sub *domain.Submission, tpl *domain.FormTemplate) ([]byte, error) {
	if sub == nil || tpl == nil {
		return nil, fmt.Errorf("render: submission and template are required")
	}
	if sub.Status != domain.StatusApproved {
		return nil, apperrors.ErrDocumentNotApprovedf(sub.ID, string(sub.Status))
	}

	approvedAt := time.Unix(0, 0).UTC()
	if sub.ApprovedAt != nil {
		approvedAt = sub.ApprovedAt.UTC()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	// Resource dictionaries are emitted in map order unless catalog sorting
	// is on; without it two renders of the same submission differ.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(approvedAt)
	pdf.SetModificationDate(approvedAt)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		r.drawHeader(pdf)
	})
	pdf.SetFooterFunc(func() {
		drawFooter(pdf, tpl.RevisionNumber)
	})

	pdf.AddPage()

	r.drawMetadata(pdf, sub)
	r.drawFields(pdf, sub, tpl)
	r.drawNotes(pdf, tpl.Notes)
	r.drawSignatureGrid(pdf, sub)

	if pdf.Err() {
		return nil, apperrors.Wrap(pdf.Error(), apperrors.CodeDocumentRenderFail, "document rendering failed", 500)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDocumentRenderFail, "document rendering failed", 500)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(pdf *fpdf.Fpdf) {
	pdf.SetY(10)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, r.org.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if r.org.Address != "" {
		pdf.CellFormat(0, 4.5, r.org.Address, "", 1, "C", false, 0, "")
	}
	if r.org.Contact != "" {
		pdf.CellFormat(0, 4.5, r.org.Contact, "", 1, "C", false, 0, "")
	}

	y := pdf.GetY() + 2
	pdf.Line(marginLeft, y, pageWidth-marginRight, y)
	pdf.SetY(marginTop)
}

func drawFooter(pdf *fpdf.Fpdf, revision string) {
	pdf.SetY(-15)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(usableWidth/2, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "L", false, 0, "")
	pdf.CellFormat(usableWidth/2, 5, revision, "", 0, "R", false, 0, "")
}

func (r *Renderer) drawMetadata(pdf *fpdf.Fpdf, sub *domain.Submission) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, sub.FormName, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	submitted := ""
	if sub.SubmittedAt != nil {
		submitted = sub.SubmittedAt.UTC().Format(dateLayout)
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(labelColumn, lineHeight, "Submitted by", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, sub.SubmitterName, "", 1, "L", false, 0, "")
	pdf.CellFormat(labelColumn, lineHeight, "Date", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, submitted, "", 1, "L", false, 0, "")
	pdf.Ln(3)
}

// drawFields renders values in template field order. Template order is the
// presentation contract regardless of the order values were collected in.
func (r *Renderer) drawFields(pdf *fpdf.Fpdf, sub *domain.Submission, tpl *domain.FormTemplate) {
	for _, fv := range service.OrderFormData(tpl.Fields, sub.FormData) {
		f := fv.Field
		switch {
		case f.IsNote:
			r.drawNoteField(pdf, f.Label)
		case f.Type == domain.FieldCheckbox:
			r.drawCheckboxField(pdf, f.Label, fv.Value == true)
		case f.Type == domain.FieldTextarea:
			r.drawTextareaField(pdf, f.Label, valueString(fv.Value))
		default:
			r.drawInlineField(pdf, f.Label, valueString(fv.Value))
		}
	}
}

func (r *Renderer) drawNoteField(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "I", 9)
	for _, line := range pdf.SplitText(text, usableWidth) {
		ensureSpace(pdf, lineHeight)
		pdf.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)
}

func (r *Renderer) drawCheckboxField(pdf *fpdf.Fpdf, label string, checked bool) {
	ensureSpace(pdf, lineHeight)

	x, y := pdf.GetX(), pdf.GetY()
	boxY := y + (lineHeight-checkboxSide)/2
	pdf.Rect(x, boxY, checkboxSide, checkboxSide, "D")
	if checked {
		pdf.Line(x, boxY, x+checkboxSide, boxY+checkboxSide)
		pdf.Line(x, boxY+checkboxSide, x+checkboxSide, boxY)
	}

	pdf.SetX(x + checkboxSide + 3)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, lineHeight, label, "", 1, "L", false, 0, "")
}

// drawTextareaField wraps the value across lines, breaking pages at line
// granularity. The label is rendered exactly once; overflowing lines
// continue on the next page without it.
func (r *Renderer) drawTextareaField(pdf *fpdf.Fpdf, label, value string) {
	ensureSpace(pdf, 2*lineHeight)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, lineHeight, label, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range pdf.SplitText(value, usableWidth) {
		ensureSpace(pdf, lineHeight)
		pdf.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)
}

func (r *Renderer) drawInlineField(pdf *fpdf.Fpdf, label, value string) {
	ensureSpace(pdf, lineHeight)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelColumn, lineHeight, label, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	lines := pdf.SplitText(value, usableWidth-labelColumn)
	if len(lines) == 0 {
		pdf.Ln(lineHeight)
		return
	}
	pdf.CellFormat(0, lineHeight, lines[0], "", 1, "L", false, 0, "")
	for _, line := range lines[1:] {
		ensureSpace(pdf, lineHeight)
		pdf.SetX(marginLeft + labelColumn)
		pdf.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}
}

func (r *Renderer) drawNotes(pdf *fpdf.Fpdf, notes string) {
	if notes == "" {
		return
	}
	pdf.Ln(2)
	r.drawTextareaField(pdf, "Notes", notes)
}

type signatureBlock struct {
	label      string
	name       string
	position   string
	department string
	date       time.Time
	signature  []byte
}

func (r *Renderer) drawSignatureGrid(pdf *fpdf.Fpdf, sub *domain.Submission) {
	blocks := buildSignatureBlocks(sub)

	pdf.Ln(6)
	for _, row := range SignatureRows(len(blocks)) {
		ensureSpace(pdf, sigBlockHeight)
		y := pdf.GetY()
		for slot, idx := range row.Indexes {
			x := marginLeft
			switch {
			case row.Centered:
				x = (pageWidth - sigBlockWidth) / 2
			case slot == 1:
				x = pageWidth - marginRight - sigBlockWidth
			}
			r.drawSignatureBlock(pdf, x, y, blocks[idx], fmt.Sprintf("signature-%d", idx))
		}
		pdf.SetY(y + sigBlockHeight)
	}
}

func buildSignatureBlocks(sub *domain.Submission) []signatureBlock {
	submittedAt := time.Time{}
	if sub.SubmittedAt != nil {
		submittedAt = *sub.SubmittedAt
	}

	blocks := []signatureBlock{{
		label:      labelSubmitter,
		name:       sub.SubmitterName,
		position:   sub.SubmitterPosition,
		department: sub.SubmitterDepartment,
		date:       submittedAt,
		signature:  sub.Signature,
	}}

	// Rejections never become signature blocks; only approvals sign the
	// document, in the order they landed.
	for i, rec := range domain.ApprovedRecords(sub.Timeline) {
		blocks = append(blocks, signatureBlock{
			label:      ApproverLabel(i),
			name:       rec.ActorName,
			position:   rec.ActorPosition,
			department: rec.ActorDepartment,
			date:       rec.Timestamp,
			signature:  rec.Signature,
		})
	}
	return blocks
}

func (r *Renderer) drawSignatureBlock(pdf *fpdf.Fpdf, x, y float64, b signatureBlock, imageName string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x, y)
	pdf.CellFormat(sigBlockWidth, 5, b.label, "", 0, "L", false, 0, "")

	imageTop := y + 6
	if png, err := normalizeSignature(b.signature); err == nil {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(png))
		pdf.ImageOptions(imageName, x+(sigBlockWidth-sigImageWidth)/2, imageTop, sigImageWidth, sigImageHeight, false, opts, 0, "")
	} else {
		// Missing or undecodable image degrades to a textual signature
		// rather than aborting the document.
		pdf.SetFont("Helvetica", "I", 13)
		pdf.SetXY(x, imageTop+sigImageHeight-8)
		pdf.CellFormat(sigBlockWidth, 6, b.name, "", 0, "C", false, 0, "")
	}

	ruleY := imageTop + sigImageHeight + 2
	pdf.Line(x+5, ruleY, x+sigBlockWidth-5, ruleY)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(x, ruleY+1.5)
	pdf.CellFormat(sigBlockWidth, 4, b.name, "", 2, "C", false, 0, "")
	if b.position != "" {
		pdf.CellFormat(sigBlockWidth, 4, b.position, "", 2, "C", false, 0, "")
	}
	if b.department != "" {
		pdf.CellFormat(sigBlockWidth, 4, b.department, "", 2, "C", false, 0, "")
	}
	if !b.date.IsZero() {
		pdf.CellFormat(sigBlockWidth, 4, b.date.UTC().Format(dateLayout), "", 2, "C", false, 0, "")
	}
}

// ensureSpace starts a new page when the next block of height h would cross
// the bottom limit. Single-line blocks therefore never split mid-block.
func ensureSpace(pdf *fpdf.Fpdf, h float64) {
	if pdf.GetY()+h > bottomLimit {
		pdf.AddPage()
	}
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprint(t)
	}
}
