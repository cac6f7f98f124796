package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var columns = []string{"Fecha", "Entrada", "Salida", "Total", "Estado"}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report templates: %w", err)
	}
	return tmpl, nil
}

type htmlRow struct {
	Date           string
	CheckIn        string
	CheckOut       string
	Total          string
	Status         string
	Shortfall      string
	ShortfallClass string
	BadgeText      string
	BadgeClass     string
}

type htmlReport struct {
	report.AttendanceReport
	Rows []htmlRow
}

func badge(b attendance.Badge) (text, class string) {
	switch b {
	case attendance.BadgeWeekend:
		return "FDS", "pill-out"
	case attendance.BadgeLeave:
		return "PERMISO", "pill-warn"
	case attendance.BadgeIncomplete:
		return "INCOMPLETO", "pill-warn"
	case attendance.BadgeRecorded:
		return "CON REGISTRO", "pill-ok"
	}
	return "SIN REGISTRO", "pill-out"
}

func renderHTML(tmpl *template.Template, r report.AttendanceReport) ([]byte, error) {
	data := htmlReport{AttendanceReport: r, Rows: make([]htmlRow, 0, len(r.Rows))}
	for _, row := range r.Rows {
		hr := htmlRow{
			Date:     row.Date,
			CheckIn:  row.CheckIn,
			CheckOut: row.CheckOut,
			Total:    row.Total,
			Status:   row.Status.Label(),
		}
		hr.BadgeText, hr.BadgeClass = badge(row.Badge)
		if row.ShortfallMinutes > 0 {
			hr.Shortfall = "-" + strconv.Itoa(row.ShortfallMinutes) + "m"
			hr.ShortfallClass = "pill-warn"
			if row.Severity == attendance.SeverityCritical {
				hr.ShortfallClass = "pill-danger"
			}
		}
		data.Rows = append(data.Rows, hr)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "attendance.html", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPDF(r report.AttendanceReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(14, 12, 14)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, tr(r.Title))
	pdf.Ln(9)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr("Usuario: "+r.UserName))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Rango: "+r.From+" - "+r.To))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Generado: "+r.GeneratedAt))
	pdf.Ln(6)
	totals := "Trabajado: " + r.Totals.Worked
	if r.Totals.TargetMinutes > 0 {
		totals += "   Objetivo: " + r.Totals.Target
	}
	pdf.Cell(0, 6, tr(totals))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Días con registro: %d   Días sin registro: %d   Días con permiso: %d   Fines de semana: %d",
		r.Totals.DaysRecorded, r.Totals.DaysNoRecord, r.Totals.DaysOnLeave, r.Totals.DaysWeekend)))
	pdf.Ln(9)

	widths := []float64{28, 28, 28, 28, 70}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for i, col := range columns {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range r.Rows {
		status := row.Status.Label()
		if row.ShortfallMinutes > 0 {
			status += fmt.Sprintf(" (-%dm)", row.ShortfallMinutes)
		}
		cells := []string{row.Date, row.CheckIn, row.CheckOut, row.Total, status}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(20)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(85, 6, "Firma funcionario", "T", 0, "L", false, 0, "")
	pdf.CellFormat(12, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(85, 6, "Firma RRHH / Responsable", "T", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

const sheetName = "Asistencia"

// hours converts minutes to decimal hours rounded to two places.
func hours(minutes int) float64 {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2).InexactFloat64()
}

func renderXLSX(r report.AttendanceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, sheet: sheetName}
	w.set(1, 1, r.Title)
	w.merge("A1", "F1")
	w.style("A1", "F1", titleStyle)

	meta := [][2]interface{}{
		{"Usuario", r.UserName},
		{"Rango", r.From + " - " + r.To},
		{"Generado", r.GeneratedAt},
		{"Trabajado", r.Totals.Worked},
		{"Objetivo", r.Totals.Target},
		{"Días con registro", r.Totals.DaysRecorded},
		{"Días sin registro", r.Totals.DaysNoRecord},
		{"Días con permiso", r.Totals.DaysOnLeave},
		{"Fines de semana", r.Totals.DaysWeekend},
	}
	row := 3
	for _, m := range meta {
		w.set(1, row, m[0])
		w.set(2, row, m[1])
		row++
	}

	row++
	header := append(append([]string{}, columns...), "Horas")
	for i, h := range header {
		cell := w.set(i+1, row, h)
		w.style(cell, cell, headerStyle)
	}
	row++

	for _, d := range r.Rows {
		values := []interface{}{d.Date, d.CheckIn, d.CheckOut, d.Total, d.Status.Label(), hours(d.MinutesWorked)}
		for i, v := range values {
			w.set(i+1, row, v)
		}
		row++
	}

	w.width("A", "A", 20)
	w.width("B", "F", 14)
	if w.err != nil {
		return nil, fmt.Errorf("failed to fill xlsx: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first excelize error; later calls are no-ops.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

// set writes v at (col, row), both 1-based, and returns the cell name.
func (w *sheetWriter) set(col, row int, v interface{}) string {
	if w.err != nil {
		return ""
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return ""
	}
	w.err = w.f.SetCellValue(w.sheet, cell, v)
	return cell
}

func (w *sheetWriter) merge(from, to string) {
	if w.err == nil {
		w.err = w.f.MergeCell(w.sheet, from, to)
	}
}

func (w *sheetWriter) style(from, to string, styleID int) {
	if w.err == nil {
		w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
	}
}

func (w *sheetWriter) width(from, to string, width float64) {
	if w.err == nil {
		w.err = w.f.SetColWidth(w.sheet, from, to, width)
	}
}
