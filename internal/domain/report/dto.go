package report

import (
	"regexp"
	"strings"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
)

// DefaultTitle heads every attendance report.
const DefaultTitle = "Reporte de Asistencia"

// Format of a rendered report.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

var contentTypes = map[Format]string{
	FormatHTML: "text/html; charset=utf-8",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ParseFormat accepts html, pdf or xlsx in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentTypes[f]; !ok {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}

func (f Format) ContentType() string {
	return contentTypes[f]
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName builds "asistencia-<name_slug>.<ext>".
func FileName(name string, f Format) string {
	slug := strings.ToLower(whitespace.ReplaceAllString(strings.TrimSpace(name), "_"))
	if slug == "" {
		slug = "usuario"
	}
	return "asistencia-" + slug + "." + string(f)
}

// AttendanceReport is a reconciled month prepared for rendering.
type AttendanceReport struct {
	Title       string
	UserName    string
	From        string
	To          string
	GeneratedAt string
	Totals      attendance.MonthTotals
	Rows        []attendance.MonthRow
}

// NewAttendanceReport builds the report of a month view. From and To are the
// first and last reconciled dates, "-" when the month is empty.
func NewAttendanceReport(userName string, view attendance.MonthView, generatedAt string) AttendanceReport {
	r := AttendanceReport{
		Title:       DefaultTitle,
		UserName:    userName,
		From:        "-",
		To:          "-",
		GeneratedAt: generatedAt,
		Totals:      view.Totals,
		Rows:        view.Rows,
	}
	if n := len(view.Rows); n > 0 {
		r.From = view.Rows[0].Date
		r.To = view.Rows[n-1].Date
	}
	return r
}

// Document is a rendered report ready to be served as a download.
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}
