package http

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
)

// getUserIDFromContext extracts user_id from the session in the request context
func getUserIDFromContext(r *http.Request) string {
	s, err := jwt.FromContext(r.Context())
	if err != nil {
		return ""
	}
	return s.UserID
}

// monthParam reads ?month=YYYY-MM; nil means the current month.
func monthParam(r *http.Request) (*attendance.Month, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return nil, nil
	}
	m, err := attendance.ParseMonth(raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// decodeJSON decodes the body into v and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}
