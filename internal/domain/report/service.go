package report

import (
	"context"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
)

type ReportService interface {
	// MyAttendance renders the caller's month. A nil month means the current one.
	MyAttendance(ctx context.Context, month *attendance.Month, format Format) (Document, error)
	// UserAttendance renders another user's month for managers.
	UserAttendance(ctx context.Context, userID string, month *attendance.Month, format Format) (Document, error)
}
