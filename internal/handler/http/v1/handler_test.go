package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/handler/http/v1/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDispatchService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDispatchService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRequestHandler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lon := 30.05, 31.25
	reqBody := CreateEmergencyRequest{
		UserID:            "user-1",
		InjuryDescription: "Broken leg",
		UserLatitude:      &lat,
		UserLongitude:     &lon,
		Priority:          2,
	}
	expectedResult := &service.CreateRequestResult{
		RequestID:  42,
		TrackingID: "EMR_42",
		TargetHospitals: []service.HospitalTarget{
			{HospitalID: 1, Name: "Hospital 1", DistanceKm: 1.5},
		},
		Message: "Emergency request created, nearby hospitals have been notified",
	}

	mockService.EXPECT().
		CreateRequest(gomock.Any(), "user-1", gomock.Any()).
		Return(expectedResult, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergency/requests", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CreateEmergencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.RequestID)
	assert.Equal(t, "EMR_42", resp.TrackingID)
	assert.Len(t, resp.TargetHospitals, 1)
}

func TestCreateRequestHandler_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/emergency/requests", bytes.NewBufferString(`{"user_id": "user-1"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateRequestHandler_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{ // Отсутствует UserID
		InjuryDescription: "Broken leg",
	}

	mockService.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergency/requests", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'UserID' failed on the 'required' tag")
}

func TestCreateRequestHandler_ExistingActiveRequest(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{UserID: "user-1"}

	mockService.EXPECT().
		CreateRequest(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, &service.ExistingActiveRequestError{RequestID: 7}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergency/requests", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "user already has an active request")
	assert.Contains(t, w.Body.String(), `"existing_request_id":7`)
}

func TestCreateRequestHandler_NoHospitalsConfigured(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{UserID: "user-1"}

	mockService.EXPECT().
		CreateRequest(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, service.ErrNoHospitalsConfigured).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergency/requests", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "no hospitals configured")
}

func TestCreateRequestHandler_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{UserID: "user-1"}
	serviceError := errors.New("database error")

	mockService.EXPECT().
		CreateRequest(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergency/requests", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRespondToRequestHandler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := HospitalRespondRequest{
		RequestID:                    42,
		HospitalID:                   1,
		IsAccepted:                   true,
		EstimatedResponseTimeMinutes: 15,
		AmbulanceAvailable:           true,
	}

	mockService.EXPECT().
		RespondToRequest(gomock.Any(), service.HospitalResponseInput{
			RequestID:                    42,
			HospitalID:                   1,
			IsAccepted:                   true,
			EstimatedResponseTimeMinutes: 15,
			AmbulanceAvailable:           true,
		}).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hospital/respond", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRespondToRequestHandler_AlreadyProcessed(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := HospitalRespondRequest{
		RequestID:                    42,
		HospitalID:                   2,
		IsAccepted:                   true,
		EstimatedResponseTimeMinutes: 10,
	}

	// Проигравшая гонку больница получает 409
	mockService.EXPECT().
		RespondToRequest(gomock.Any(), gomock.Any()).
		Return(service.ErrAlreadyProcessed).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hospital/respond", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "request already processed")
}

func TestRespondToRequestHandler_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := HospitalRespondRequest{ // Отсутствует RequestID
		HospitalID: 1,
		IsAccepted: true,
	}

	mockService.EXPECT().RespondToRequest(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hospital/respond", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'RequestID' failed on the 'required' tag")
}

func TestRespondToRequestHandler_InvalidAcceptance(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := HospitalRespondRequest{
		RequestID:  42,
		HospitalID: 1,
		IsAccepted: true,
		// EstimatedResponseTimeMinutes не задано — сервис отвечает ошибкой валидации
	}

	mockService.EXPECT().
		RespondToRequest(gomock.Any(), gomock.Any()).
		Return(service.ErrInvalidAcceptance).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hospital/respond", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "positive estimated response time")
}

func TestRespondToRequestHandler_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := HospitalRespondRequest{RequestID: 42, HospitalID: 1}

	mockService.EXPECT().RespondToRequest(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hospital/respond", bytes.NewBuffer(bodyBytes)) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateLocationHandler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lon := 30.07, 31.22
	at := time.Now().UTC().Truncate(time.Second)
	reqBody := UpdateLocationRequest{Latitude: &lat, Longitude: &lon, Timestamp: &at}

	mockService.EXPECT().
		UpdateLocation(gomock.Any(), int64(42), lat, lon, at).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/emergency/requests/42/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateLocationHandler_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lon := 30.07, 31.22
	reqBody := UpdateLocationRequest{Latitude: &lat, Longitude: &lon}

	mockService.EXPECT().UpdateLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/emergency/requests/abc/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request ID")
}

func TestUpdateLocationHandler_InvalidCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lon := 95.0, 31.22
	reqBody := UpdateLocationRequest{Latitude: &lat, Longitude: &lon}

	mockService.EXPECT().
		UpdateLocation(gomock.Any(), int64(42), lat, lon, gomock.Any()).
		Return(service.ErrInvalidCoordinates).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/emergency/requests/42/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "coordinates out of range")
}

func TestUpdateLocationHandler_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lon := 30.07, 31.22
	reqBody := UpdateLocationRequest{Latitude: &lat, Longitude: &lon}

	mockService.EXPECT().
		UpdateLocation(gomock.Any(), int64(42), lat, lon, gomock.Any()).
		Return(service.ErrRequestNotFound).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/emergency/requests/42/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "request not found")
}

func TestCompleteRequestHandler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CompleteRequestRequest{UserID: "user-1"}

	mockService.EXPECT().
		CompleteRequest(gomock.Any(), int64(42), "user-1").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergency/requests/42/complete", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompleteRequestHandler_NotOwner(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CompleteRequestRequest{UserID: "user-2"}

	// Чужой запрос ведет себя как не найденный
	mockService.EXPECT().
		CompleteRequest(gomock.Any(), int64(42), "user-2").
		Return(service.ErrRequestNotFound).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergency/requests/42/complete", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "request not found")
}

func TestGetRequestStatusHandler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedStatus := &service.RequestStatusResult{
		RequestID:           42,
		Status:              models.RequestAccepted,
		CreatedAt:           time.Now().UTC(),
		WaitingMinutes:      5,
		HasHospitalResponse: true,
		AcceptedHospital:    &service.HospitalTarget{HospitalID: 1, Name: "Hospital 1"},
	}

	mockService.EXPECT().GetRequestStatus(gomock.Any(), int64(42)).Return(expectedStatus, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/requests/42/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RequestStatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.RequestID)
	assert.Equal(t, "accepted", resp.Status)
	require.NotNil(t, resp.AcceptedHospital)
	assert.Equal(t, int64(1), resp.AcceptedHospital.HospitalID)
}

func TestGetRequestStatusHandler_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetRequestStatus(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/emergency/requests/abc/status", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request ID")
}

func TestGetRequestStatusHandler_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetRequestStatus(gomock.Any(), int64(42)).Return(nil, service.ErrRequestNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/requests/42/status", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "request not found")
}

func TestGetHospitalViewHandler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedItems := []*service.HospitalViewItem{
		{RequestID: 10, Priority: 1, DistanceKm: 2.5, Targeted: true},
		{RequestID: 11, Priority: 2, DistanceKm: 4.0},
	}

	// Радиус из query-параметра передается в сервис
	mockService.EXPECT().GetHospitalView(gomock.Any(), int64(1), 25.0).Return(expectedItems, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospital/1/requests?radius_km=25", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []HospitalViewItemResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(10), resp[0].RequestID)
	assert.True(t, resp[0].Targeted)
}

func TestGetHospitalViewHandler_HospitalNotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetHospitalView(gomock.Any(), int64(99), 0.0).Return(nil, service.ErrHospitalNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospital/99/requests", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "hospital not found")
}

func TestGetRequestDetailsHandler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedDetails := &service.RequestDetails{
		RequestID:       42,
		Priority:        1,
		DistanceKm:      3.1,
		MedicalSnapshot: []byte(`{"blood_type":"A+"}`),
		MedicalSource:   "qr_code",
	}

	mockService.EXPECT().GetRequestDetails(gomock.Any(), int64(42), int64(1)).Return(expectedDetails, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospital/1/requests/42", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RequestDetailsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.RequestID)
	assert.JSONEq(t, `{"blood_type":"A+"}`, string(resp.MedicalSnapshot))
	assert.Equal(t, "qr_code", resp.MedicalSource)
}

func TestGetRequestDetailsHandler_NotPending(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// Принятый или закрытый запрос отвечает 404
	mockService.EXPECT().GetRequestDetails(gomock.Any(), int64(42), int64(1)).Return(nil, service.ErrRequestNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospital/1/requests/42", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "request not found")
}

func TestGetStatsHandler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedStats := &service.DispatchStats{
		WindowMinutes:    60,
		CreatedCount:     12,
		AcceptedCount:    8,
		OpenPendingCount: 3,
	}

	mockService.EXPECT().GetStats(gomock.Any()).Return(expectedStats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.CreatedCount)
	assert.Equal(t, 8, resp.AcceptedCount)
	assert.Equal(t, 3, resp.OpenPendingCount)
}

func TestGetStatsHandler_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/emergency/stats", nil) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStatsHandler_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to get stats")

	mockService.EXPECT().GetStats(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Ключ принимается и через Authorization: Bearer
	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
