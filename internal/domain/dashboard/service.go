package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
)

// DashboardService composes the console's multi-source views
type DashboardService interface {
	// GetDashboard returns the caller's dashboard using goroutines
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// GetUserDetail returns one user's detail for the given month (nil = current)
	GetUserDetail(ctx context.Context, userID string, month *attendance.Month) (*UserDetailResponse, error)
}
