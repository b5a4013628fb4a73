package service

import (
	"fmt"
	"io"
	"time"

	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"github.com/go-pdf/fpdf"
)

const medicalRecordContentType = "application/pdf"

// MedicalRecordHistory is everything printed on a medical record document.
// Slices are expected in chronological order.
type MedicalRecordHistory struct {
	Record             entity.MedicalRecord
	Appointments       []entity.Appointment
	ExaminationResults []entity.ExaminationResult
	MedicationRequests []entity.MedicationRequest
}

type MedicalRecordRenderer struct {
	now func() time.Time
}

func NewMedicalRecordRenderer() *MedicalRecordRenderer {
	return &MedicalRecordRenderer{now: time.Now}
}

func (r *MedicalRecordRenderer) ContentType() string {
	return medicalRecordContentType
}

func (r *MedicalRecordRenderer) FileName(recordID uint) string {
	return fmt.Sprintf("MedicalRecord_%d.pdf", recordID)
}

// MedicalRecordPDF is a laid-out document; WriteTo emits the PDF bytes.
type MedicalRecordPDF struct {
	pdf *fpdf.Fpdf
}

func (d *MedicalRecordPDF) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := d.pdf.Output(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Render lays the history out as a single A4 PDF. Layout errors are reported
// here, before anything is written.
func (r *MedicalRecordRenderer) Render(history *MedicalRecordHistory) (*MedicalRecordPDF, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Medical Record %d", history.Record.ID), true)
	pdf.SetCreationDate(r.now())
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252; patient text is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	line := func(text string) {
		pdf.MultiCell(0, 6, tr(text), "", "L", false)
	}
	section := func(title string) {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "BU", 16)
		pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
	}

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Medical Record", "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)
	line(fmt.Sprintf("ID: %d", history.Record.ID))
	line(fmt.Sprintf("User ID: %d", history.Record.UserID))
	line("Created: " + stamp(history.Record.CreatedAt))

	section("Appointments")
	for _, appointment := range history.Appointments {
		pdf.Ln(3)
		line("Date: " + stamp(appointment.Date))
		line(fmt.Sprintf("Specialist: %s (%s)", appointment.Specialist.Name, appointment.Specialist.Specialization))
		line("Reason: " + appointment.Reason)
	}

	section("Examination Results")
	for _, result := range history.ExaminationResults {
		pdf.Ln(3)
		line("Date: " + stamp(result.Date))
		line("Examination: " + result.Examination.Name)
		if result.Procedure != nil {
			line("Procedure: " + result.Procedure.Name)
		}
		line("Result: " + result.ResultData)
	}

	section("Medication Requests")
	for _, request := range history.MedicationRequests {
		pdf.Ln(3)
		line("Requested: " + stamp(request.RequestedAt))
		line("Medication: " + request.Medication.Name)
		line("Description: " + request.Medication.Description)
		line("Status: " + string(request.Status))
		if request.ApprovedAt != nil {
			line("Approved: " + stamp(*request.ApprovedAt))
		}
		if request.RejectedAt != nil {
			line("Rejected: " + stamp(*request.RejectedAt))
		}
		comments := "N/A"
		if request.Comments != nil && *request.Comments != "" {
			comments = *request.Comments
		}
		line("Comments: " + comments)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render medical record %d: %w", history.Record.ID, err)
	}
	return &MedicalRecordPDF{pdf: pdf}, nil
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
