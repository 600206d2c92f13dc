package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/avelesk/TenantBookingService/internal/usecase/create_booking"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *stubUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tenants/{slug}/bookings", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)
	return r
}

func doPost(t *testing.T, router *mux.Router, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/peluqueria-moderna/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"serviceId": "svc-1",
	"customerName": "Ana García",
	"customerEmail": "ana@example.com",
	"date": "2026-09-07",
	"startTime": "10:00"
}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:              "bk-1",
		TenantID:        "t-1",
		ServiceID:       "svc-1",
		CustomerID:      "c-1",
		Date:            "2026-09-07",
		StartTime:       "10:00",
		EndTime:         "11:00",
		DurationMinutes: 60,
		Status:          "PENDING",
		TenantName:      "Peluquería Moderna",
		ServiceName:     "Corte de pelo",
		ServicePrice:    "25.50 €",
		CreatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doPost(t, newRouter(uc), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "peluqueria-moderna", uc.gotReq.TenantSlug)
	assert.Equal(t, "svc-1", uc.gotReq.ServiceID)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bk-1", body.ID)
	assert.Equal(t, "PENDING", body.Status)
	assert.Equal(t, "25.50 €", body.ServicePrice)
	assert.Equal(t, "2026-09-01T12:00:00Z", body.CreatedAt)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}

	rec := doPost(t, newRouter(uc), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	uc := &stubUseCase{}

	rec := doPost(t, newRouter(uc), `{"serviceId": "svc-1", "unexpected": true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"tenant not found", createBooking.ErrTenantNotFound, http.StatusNotFound},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"slot conflict", createBooking.ErrServiceDoesNotFit, http.StatusConflict},
		{"business closed", createBooking.ErrBusinessClosed, http.StatusBadRequest},
		{"too soon", createBooking.ErrBookingTooSoon, http.StatusBadRequest},
		{"in past", createBooking.ErrBookingInPast, http.StatusBadRequest},
		{"too far ahead", createBooking.ErrBookingTooFarAhead, http.StatusBadRequest},
		{"invalid phone", createBooking.ErrInvalidPhone, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}

			rec := doPost(t, newRouter(uc), validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
