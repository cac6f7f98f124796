package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
)

const keepaliveInterval = 30 * time.Second

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type EventsHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
	keepalive  time.Duration
}

func NewEventsHandler(hub *sse.Hub, jwtService jwt.Service) EventsHandler {
	return &eventsHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
		keepalive:  keepaliveInterval,
	}
}

// Token generates a short-lived token for SSE connections
func (h *eventsHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	session, err := jwt.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(session.UserID, session.Role)
	if err != nil {
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// userFromStreamRequest accepts ?token= (EventSource cannot set headers) or
// the session cookie.
func (h *eventsHandlerImpl) userFromStreamRequest(r *http.Request) (string, user.Role) {
	if tokenStr := r.URL.Query().Get("token"); tokenStr != "" {
		userID, role, err := h.jwtService.ValidateSSEToken(tokenStr)
		if err != nil {
			return "", ""
		}
		return userID, role
	}
	if h.jwtService.IsTokenRevoked(jwt.TokenFromRequest(r)) {
		return "", ""
	}
	session, err := jwt.FromContext(r.Context())
	if err != nil {
		return "", ""
	}
	return session.UserID, session.Role
}

// Stream handles the per-user SSE connection
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	userID, role := h.userFromStreamRequest(r)
	if userID == "" {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	var groups []string
	if role.IsManager() {
		groups = append(groups, sse.GroupManagers)
	}
	events, cleanup := h.hub.Subscribe(userID, groups...)
	defer cleanup()

	connected := sse.Event{Event: sse.EventConnected, Data: map[string]string{"status": "connected", "user_id": userID}}
	if _, err := connected.WriteTo(w); err != nil {
		return
	}
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := event.WriteTo(w); err != nil {
				slog.Error("failed to write SSE event", "user_id", userID, "event", event.Event, "error", err)
				continue
			}
			flusher.Flush()

		case <-keepalive.C:
			ping := sse.Event{Event: sse.EventPing, Data: map[string]int64{"timestamp": time.Now().Unix()}}
			if _, err := ping.WriteTo(w); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
