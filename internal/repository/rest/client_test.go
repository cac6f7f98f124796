package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/domain/auth"
	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(tok string) TokenFunc {
	return func(context.Context) (string, error) { return tok, nil }
}

func newTestClient(t *testing.T, r http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 5*time.Second, staticToken("backend-token"))
}

func TestClient_SendsBearerAndRequestID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/asistencia/mias/resumen-diario", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer backend-token", req.Header.Get("Authorization"))
		assert.NotEmpty(t, req.Header.Get(RequestIDHeader))
		assert.Equal(t, "2025-03-01", req.URL.Query().Get("from"))
		assert.Equal(t, "2025-03-31", req.URL.Query().Get("to"))
		_, _ = io.WriteString(w, `[{"fecha":"2025-03-04","horaEntrada":"08:30","horaSalida":"16:30","minutosTrabajados":480,"minutosObjetivo":480,"estado":"OK"}]`)
	})

	repo := NewAttendanceRepository(newTestClient(t, r))
	got, err := repo.ListMyDailySummary(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, attendance.DayStatusOK, got[0].Status)
	require.NotNil(t, got[0].MinutesTarget)
	assert.Equal(t, 480, *got[0].MinutesTarget)
}

func TestClient_ErrorMessages(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/permisos/mios", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"Rango de fechas inválido"}`)
	})
	r.Get("/permisos/pendientes", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":["motivo vacío","fecha_fin inválida"]}`)
	})
	r.Get("/usuarios", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.Get("/usuarios/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "<html>oops</html>")
	})
	client := newTestClient(t, r)
	ctx := context.Background()

	_, err := NewLeaveRepository(client).ListMine(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Rango de fechas inválido", err.Error())
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	_, err = NewLeaveRepository(client).ListPending(ctx)
	assert.EqualError(t, err, "motivo vacío,fecha_fin inválida")

	_, err = NewUserRepository(client).List(ctx)
	assert.EqualError(t, err, MessageUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))

	_, err = NewUserRepository(client).GetByID(ctx, "u1")
	assert.EqualError(t, err, MessageRequestError)
}

func TestClient_NoToken(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, staticToken(""))
	_, err := NewLeaveRepository(client).ListMine(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)

	client = NewClient(srv.URL, time.Second, func(context.Context) (string, error) { return "", errors.New("no session") })
	_, err = NewLeaveRepository(client).ListMine(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Zero(t, calls)
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, staticToken("t"))
	_, err := NewUserRepository(client).List(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Zero(t, StatusCode(err))
}

func TestAuthRepository_Login(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		assert.Empty(t, req.Header.Get("Authorization"))
		var body auth.LoginRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"Credenciales inválidas"}`)
			return
		}
		_, _ = io.WriteString(w, `{"access_token":"abc","usuario":{"id_usuario":"u1","nombre":"Ana","apellido":"Quispe","email":"ana@x.bo","id_rol":"ADMIN","estado":"ACTIVO"}}`)
	})
	repo := NewAuthRepository(newTestClient(t, r))

	got, err := repo.Login(context.Background(), auth.LoginRequest{Email: "ana@x.bo", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc", got.AccessToken)
	assert.Equal(t, user.RoleAdmin, got.User.Role)

	_, err = repo.Login(context.Background(), auth.LoginRequest{Email: "ana@x.bo", Password: "bad"})
	assert.EqualError(t, err, "Credenciales inválidas")
}

func TestAttendanceRepository_Writes(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/asistencia", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "entrada", body["tipo"])
		assert.Equal(t, "web", body["origen"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id_asistencia":"e1","tipo":"ENTRADA","fecha_hora":"2025-03-04T12:30:00Z","estado":"VALIDA"}`)
	})
	r.Patch("/asistencia/{id}/anular", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "e1", chi.URLParam(req, "id"))
		_, _ = io.WriteString(w, `{"id_asistencia":"e1","tipo":"ENTRADA","fecha_hora":"2025-03-04T12:30:00Z","estado":"ANULADA"}`)
	})
	repo := NewAttendanceRepository(newTestClient(t, r))

	ev, err := repo.Mark(context.Background(), attendance.MarkRequest{Kind: "entrada", Origin: attendance.OriginWeb})
	require.NoError(t, err)
	assert.Equal(t, "e1", ev.ID)
	assert.False(t, ev.IsVoided())

	ev, err = repo.Void(context.Background(), "e1", attendance.VoidEventRequest{})
	require.NoError(t, err)
	assert.True(t, ev.IsVoided())
}

func TestUserRepository_DeleteNoContent(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/usuarios/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, NewUserRepository(newTestClient(t, r)).Delete(context.Background(), "u1"))
}

func TestScheduleRepository(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/usuarios/{id}/jornada", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"dias":[{"dia_semana":1,"hora_inicio":"08:00:00","hora_fin":"16:00:00","minutos_objetivo":480,"activo":true}]}`)
	})
	r.Put("/usuarios/{id}/jornada", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	repo := NewScheduleRepository(newTestClient(t, r))
	ctx := context.Background()

	got, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Days, 1)
	assert.Equal(t, "08:00:00", got.Days[0].StartTime)

	_, err = repo.GetByUserID(ctx, "missing")
	assert.ErrorIs(t, err, schedule.ErrWorkScheduleNotFound)

	in := schedule.Normalize(schedule.WeeklySchedule{})
	saved, err := repo.Save(ctx, "u1", in)
	require.NoError(t, err)
	assert.Equal(t, in, saved)
}

func TestLeaveRepository_Resolve(t *testing.T) {
	r := chi.NewRouter()
	r.Patch("/permisos/{id}", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "APROBADO", body["estado"])
		_, _ = io.WriteString(w, `{"id_permiso":"p1","estado":"APROBADO","id_solicitante":"u2"}`)
	})
	got, err := NewLeaveRepository(newTestClient(t, r)).Resolve(context.Background(), "p1", leave.ResolveRequest{Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	assert.Equal(t, "u2", got.RequesterID)
}
