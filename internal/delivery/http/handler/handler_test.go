package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/delivery/http/middleware"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/response"
	"github.com/josephsae/healthhub-app/pkg/validator"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserUsecase struct{ mock.Mock }

func (m *mockUserUsecase) Register(ctx context.Context, req *dto.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockUserUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	token, _ := args.Get(0).(*dto.TokenResponse)
	return token, args.Error(1)
}

type mockAppointmentUsecase struct{ mock.Mock }

func (m *mockAppointmentUsecase) List(ctx context.Context, userID uint) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.AppointmentListResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) Create(ctx context.Context, userID uint, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, userID, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) Get(ctx context.Context, userID, id uint) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, userID, id)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) Update(ctx context.Context, userID, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, userID, id, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) Delete(ctx context.Context, userID, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockMedicalRecordUsecase struct{ mock.Mock }

func (m *mockMedicalRecordUsecase) List(ctx context.Context, userID uint) (*dto.MedicalRecordListResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.MedicalRecordListResponse)
	return resp, args.Error(1)
}

func (m *mockMedicalRecordUsecase) Get(ctx context.Context, userID, id uint) (*dto.MedicalRecordResponse, error) {
	args := m.Called(ctx, userID, id)
	resp, _ := args.Get(0).(*dto.MedicalRecordResponse)
	return resp, args.Error(1)
}

func (m *mockMedicalRecordUsecase) Download(ctx context.Context, userID, id uint) (*dto.MedicalRecordDocument, error) {
	args := m.Called(ctx, userID, id)
	doc, _ := args.Get(0).(*dto.MedicalRecordDocument)
	return doc, args.Error(1)
}

func newLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches the user id and route variables the router would set.
func asUser(req *http.Request, userID uint, vars map[string]string) *http.Request {
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorPayload {
	t.Helper()
	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return response.ErrorPayload{Code: body.Error.Code, Message: body.Error.Message, Details: body.Error.Details}
}

func TestRegister(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, validator.NewValidator(), newLogger())
	uc.On("Register", mock.Anything, &dto.RegisterRequest{Username: "alice", Password: "secret1"}).Return(nil)

	rec := httptest.NewRecorder()
	h.Register(rec, jsonRequest(t, http.MethodPost, "/api/users/register", dto.RegisterRequest{Username: "alice", Password: "secret1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())
}

func TestRegister_MalformedJSON(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, validator.NewValidator(), newLogger())

	rec := httptest.NewRecorder()
	h.Register(rec, jsonRequest(t, http.MethodPost, "/api/users/register", `{"username":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorBody(t, rec).Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	h := NewUserHandler(new(mockUserUsecase), validator.NewValidator(), newLogger())

	rec := httptest.NewRecorder()
	h.Register(rec, jsonRequest(t, http.MethodPost, "/api/users/register", dto.RegisterRequest{Username: "alice", Password: "123"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorBody(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Details, "password")
}

func TestRegister_Duplicate(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, validator.NewValidator(), newLogger())
	uc.On("Register", mock.Anything, mock.Anything).Return(usecase.ErrUserAlreadyExists)

	rec := httptest.NewRecorder()
	h.Register(rec, jsonRequest(t, http.MethodPost, "/api/users/register", dto.RegisterRequest{Username: "alice", Password: "secret1"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorBody(t, rec).Code)
}

func TestLogin(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, validator.NewValidator(), newLogger())
	uc.On("Login", mock.Anything, mock.Anything).Return(&dto.TokenResponse{Token: "abc.def.ghi"}, nil)

	rec := httptest.NewRecorder()
	h.Login(rec, jsonRequest(t, http.MethodPost, "/api/users/login", dto.LoginRequest{Username: "alice", Password: "secret1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"abc.def.ghi"}`, rec.Body.String())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, validator.NewValidator(), newLogger())
	uc.On("Login", mock.Anything, mock.Anything).Return(nil, usecase.ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	h.Login(rec, jsonRequest(t, http.MethodPost, "/api/users/login", dto.LoginRequest{Username: "alice", Password: "nope"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorBody(t, rec).Code)
}

func TestGetAppointment_MissingUserID(t *testing.T) {
	h := NewAppointmentHandler(new(mockAppointmentUsecase), validator.NewValidator(), newLogger())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/appointments/1", nil), map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.GetAppointment(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "USER_ID_NOT_FOUND", errorBody(t, rec).Code)
}

func TestGetAppointment_InvalidPathID(t *testing.T) {
	h := NewAppointmentHandler(new(mockAppointmentUsecase), validator.NewValidator(), newLogger())

	for _, id := range []string{"abc", "0", "-3"} {
		rec := httptest.NewRecorder()
		h.GetAppointment(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/appointments/"+id, nil), 1, map[string]string{"id": id}))

		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.Equal(t, "VALIDATION_ERROR", errorBody(t, rec).Code, id)
	}
}

func TestGetAppointment_NotOwned(t *testing.T) {
	uc := new(mockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator(), newLogger())
	uc.On("Get", mock.Anything, uint(2), uint(5)).Return(nil, usecase.ErrAppointmentNotFound)

	rec := httptest.NewRecorder()
	h.GetAppointment(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/appointments/5", nil), 2, map[string]string{"id": "5"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "APPOINTMENT_NOT_FOUND", errorBody(t, rec).Code)
}

func TestCreateAppointment_InvalidDate(t *testing.T) {
	uc := new(mockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator(), newLogger())

	rec := httptest.NewRecorder()
	req := jsonRequest(t, http.MethodPost, "/api/appointments", map[string]interface{}{
		"specialistId": 1,
		"date":         "next tuesday",
		"reason":       "checkup",
	})
	h.CreateAppointment(rec, asUser(req, 1, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorBody(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Details, "date")
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAppointment(t *testing.T) {
	uc := new(mockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator(), newLogger())
	uc.On("Create", mock.Anything, uint(1), mock.Anything).
		Return(&dto.AppointmentResponse{ID: 9, UserID: 1, SpecialistID: 1, Date: "2025-07-01T10:00:00Z", Reason: "checkup"}, nil)

	rec := httptest.NewRecorder()
	req := jsonRequest(t, http.MethodPost, "/api/appointments", map[string]interface{}{
		"specialistId": 1,
		"date":         "2025-07-01T10:00:00Z",
		"reason":       "checkup",
	})
	h.CreateAppointment(rec, asUser(req, 1, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body dto.AppointmentEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Appointment created successfully", body.Message)
	assert.Equal(t, uint(9), body.Appointment.ID)
}

func TestUpdateAppointment_EmptyBodyIsPartial(t *testing.T) {
	uc := new(mockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator(), newLogger())
	uc.On("Update", mock.Anything, uint(1), uint(4), &dto.UpdateAppointmentRequest{}).
		Return(&dto.AppointmentResponse{ID: 4}, nil)

	rec := httptest.NewRecorder()
	req := jsonRequest(t, http.MethodPut, "/api/appointments/4", `{}`)
	h.UpdateAppointment(rec, asUser(req, 1, map[string]string{"id": "4"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestDeleteAppointment(t *testing.T) {
	uc := new(mockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator(), newLogger())
	uc.On("Delete", mock.Anything, uint(1), uint(4)).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteAppointment(rec, asUser(httptest.NewRequest(http.MethodDelete, "/api/appointments/4", nil), 1, map[string]string{"id": "4"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Appointment deleted successfully"}`, rec.Body.String())
}

func TestListAppointments_UnexpectedErrorIsInternal(t *testing.T) {
	uc := new(mockAppointmentUsecase)
	log, hook := test.NewNullLogger()
	h := NewAppointmentHandler(uc, validator.NewValidator(), log)
	uc.On("List", mock.Anything, uint(1)).Return(nil, errors.New("pq: connection refused"))

	rec := httptest.NewRecorder()
	h.ListAppointments(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/appointments", nil), 1, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := errorBody(t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.NotContains(t, body.Message, "connection refused")
	require.NotNil(t, hook.LastEntry())
}

func TestCreateAuthorization_UnknownType(t *testing.T) {
	h := NewAuthorizationHandler(nil, validator.NewValidator(), newLogger())

	rec := httptest.NewRecorder()
	req := jsonRequest(t, http.MethodPost, "/api/authorizations", map[string]interface{}{"type": "SURGERY", "request": "x"})
	h.CreateAuthorization(rec, asUser(req, 1, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorBody(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Details, "type")
}

func TestDownloadMedicalRecord(t *testing.T) {
	uc := new(mockMedicalRecordUsecase)
	h := NewMedicalRecordHandler(uc, newLogger())
	uc.On("Download", mock.Anything, uint(1), uint(7)).Return(&dto.MedicalRecordDocument{
		FileName:    "MedicalRecord_7.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF-1.3 test"),
	}, nil)

	rec := httptest.NewRecorder()
	h.DownloadMedicalRecord(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/medical-records/7/download", nil), 1, map[string]string{"id": "7"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=MedicalRecord_7.pdf", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 test", rec.Body.String())
}

func TestDownloadMedicalRecord_NotOwned(t *testing.T) {
	uc := new(mockMedicalRecordUsecase)
	h := NewMedicalRecordHandler(uc, newLogger())
	uc.On("Download", mock.Anything, uint(2), uint(7)).Return(nil, usecase.ErrMedicalRecordNotFound)

	rec := httptest.NewRecorder()
	h.DownloadMedicalRecord(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/medical-records/7/download", nil), 2, map[string]string{"id": "7"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "MEDICAL_RECORD_NOT_FOUND", errorBody(t, rec).Code)
}
