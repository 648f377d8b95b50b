package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/medical"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/notify"
	"github.com/shenikar/emergency_dispatch_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// maxInjuryPhotoBytes - предел размера фото травмы после декодирования base64
const maxInjuryPhotoBytes = 5 * 1024 * 1024

// RequestRepository определяет контракт для работы с хранилищем экстренных запросов.
// Все переходы статуса - одиночные условные обновления; мьютексов в движке нет.
type RequestRepository interface {
	Insert(ctx context.Context, request *models.EmergencyRequest) error
	GetOpenByRequester(ctx context.Context, requesterID string) (*models.EmergencyRequest, error)
	GetByID(ctx context.Context, id int64) (*models.EmergencyRequest, error)
	TryAccept(ctx context.Context, id, hospitalID int64, at time.Time) (bool, error)
	AddRejection(ctx context.Context, id, hospitalID int64) (rejected, notified []int64, stillPending bool, err error)
	TransitionAllRejected(ctx context.Context, id int64) (bool, error)
	UpdateLocation(ctx context.Context, id int64, lat, lon float64, at time.Time) (bool, error)
	Complete(ctx context.Context, id int64, requesterID string) (bool, error)
	ListOpen(ctx context.Context) ([]*models.EmergencyRequest, error)
	GetDispatchStats(ctx context.Context, minutes int) (created, accepted, openPending int, err error)

	StoreInjuryPhoto(ctx context.Context, ref string, data []byte) error

	GetRequestFromCache(ctx context.Context, id int64) (*models.EmergencyRequest, error)
	SetRequestCache(ctx context.Context, request *models.EmergencyRequest) error
	InvalidateRequestCache(ctx context.Context, id int64) error
}

// HospitalRepository определяет контракт для чтения справочника больниц
type HospitalRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Hospital, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Hospital, error)
	ListAvailable(ctx context.Context, limit int) ([]*models.Hospital, error)
}

// CreateRequestInput - входные данные создания запроса
type CreateRequestInput struct {
	InjuryDescription    string
	InjuryPhotoData      string // base64
	MedicalHistoryQRCode string
	MedicalHistoryToken  string
	Latitude             *float64
	Longitude            *float64
	Priority             int
}

// HospitalTarget - сведения о больнице в ответах движка
type HospitalTarget struct {
	HospitalID    int64    `json:"hospital_id"`
	Name          string   `json:"name"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	DistanceKm    float64  `json:"distance_km"`
	ContactNumber string   `json:"contact_number,omitempty"`
	Specialties   []string `json:"specialties,omitempty"`
}

// CreateRequestResult - результат успешного создания запроса
type CreateRequestResult struct {
	RequestID       int64
	TrackingID      string
	TargetHospitals []HospitalTarget
	Message         string
}

// HospitalResponseInput - ответ больницы на запрос
type HospitalResponseInput struct {
	RequestID                    int64
	HospitalID                   int64
	IsAccepted                   bool
	ResponseMessage              string
	EstimatedResponseTimeMinutes int
	AmbulanceAvailable           bool
}

// RequestStatusResult - авторитетный статус запроса для опроса клиентом
type RequestStatusResult struct {
	RequestID           int64
	Status              models.RequestStatus
	CreatedAt           time.Time
	WaitingMinutes      int
	HasHospitalResponse bool
	AcceptedHospital    *HospitalTarget
	Latitude            float64
	Longitude           float64
}

// HospitalViewItem - открытый запрос в видимости конкретной больницы
type HospitalViewItem struct {
	RequestID         int64
	Priority          int
	Latitude          float64
	Longitude         float64
	DistanceKm        float64
	InjuryDescription string
	HasMedicalHistory bool
	Targeted          bool
	CreatedAt         time.Time
}

// RequestDetails - полные детали запроса для предпросмотра больницей перед принятием
type RequestDetails struct {
	RequestID         int64
	Priority          int
	Latitude          float64
	Longitude         float64
	DistanceKm        float64
	InjuryDescription string
	InjuryPhotoRef    string
	MedicalSnapshot   []byte
	MedicalSource     string
	CreatedAt         time.Time
}

// DispatchStats - сводка по диспетчеризации за окно времени
type DispatchStats struct {
	WindowMinutes    int
	CreatedCount     int
	AcceptedCount    int
	OpenPendingCount int
}

// DispatchService определяет контракт движка диспетчеризации экстренных запросов
type DispatchService interface {
	CreateRequest(ctx context.Context, requesterID string, in CreateRequestInput) (*CreateRequestResult, error)
	RespondToRequest(ctx context.Context, in HospitalResponseInput) error
	UpdateLocation(ctx context.Context, requestID int64, lat, lon float64, at time.Time) error
	CompleteRequest(ctx context.Context, requestID int64, requesterID string) error
	GetRequestStatus(ctx context.Context, requestID int64) (*RequestStatusResult, error)
	GetHospitalView(ctx context.Context, hospitalID int64, radiusKm float64) ([]*HospitalViewItem, error)
	GetRequestDetails(ctx context.Context, requestID, hospitalID int64) (*RequestDetails, error)
	GetStats(ctx context.Context) (*DispatchStats, error)
}

type dispatchService struct {
	requests  RequestRepository
	hospitals HospitalRepository
	publisher notify.EventPublisher
	history   medical.HistoryClient
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewDispatchService(
	requests RequestRepository,
	hospitals HospitalRepository,
	publisher notify.EventPublisher,
	history medical.HistoryClient,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	return &dispatchService{
		requests:  requests,
		hospitals: hospitals,
		publisher: publisher,
		history:   history,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateRequest создает экстренный запрос и рассылает его выбранным больницам.
// После сохранения записи все побочные эффекты best-effort: ошибка публикации
// логируется и не отменяет уже созданный запрос.
func (s *dispatchService) CreateRequest(ctx context.Context, requesterID string, in CreateRequestInput) (*CreateRequestResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "dispatch",
		"method":       "CreateRequest",
		"requester_id": requesterID,
	})
	log.Info("Creating emergency request")

	if requesterID == "" {
		return nil, ErrEmptyRequesterID
	}

	existing, err := s.requests.GetOpenByRequester(ctx, requesterID)
	if err != nil {
		log.WithError(err).Error("Failed to check for an open request")
		return nil, fmt.Errorf("service: could not check open requests: %w", err)
	}
	if existing != nil {
		log.WithField("request_id", existing.ID).Warn("User already has an active request")
		return nil, &ExistingActiveRequestError{RequestID: existing.ID}
	}

	lat, lon := s.resolveLocation(in.Latitude, in.Longitude, log)

	priority := in.Priority
	if priority < 1 {
		priority = 1
	}

	photoRef, err := s.storeInjuryPhoto(ctx, in.InjuryPhotoData, log)
	if err != nil {
		return nil, err
	}

	snapshot := s.lookupMedicalHistory(ctx, in.MedicalHistoryQRCode, in.MedicalHistoryToken, log)

	candidates, err := s.selectCandidates(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to select candidate hospitals")
		return nil, err
	}

	now := time.Now().UTC()
	request := &models.EmergencyRequest{
		RequesterID:         requesterID,
		Status:              models.RequestPending,
		Priority:            priority,
		Latitude:            lat,
		Longitude:           lon,
		LocationUpdatedAt:   now,
		InjuryDescription:   in.InjuryDescription,
		InjuryPhotoRef:      photoRef,
		NotifiedHospitalIDs: candidates,
		RejectedHospitalIDs: []int64{},
	}
	if snapshot != nil {
		request.MedicalSnapshot = snapshot.Data
		request.MedicalSource = snapshot.Source
	}

	if err := s.requests.Insert(ctx, request); err != nil {
		var activeErr *ExistingActiveRequestError
		if errors.As(err, &activeErr) {
			// Второе одновременное создание проиграло гонку на вставке
			log.WithField("request_id", activeErr.RequestID).Warn("User already has an active request")
			return nil, activeErr
		}
		log.WithError(err).Error("Failed to persist emergency request")
		return nil, fmt.Errorf("service: could not create emergency request: %w", err)
	}
	log = log.WithField("request_id", request.ID)
	log.WithField("hospitals", candidates).Info("Emergency request persisted")

	targets := s.notifyHospitals(ctx, request, candidates, log)

	return &CreateRequestResult{
		RequestID:       request.ID,
		TrackingID:      fmt.Sprintf("EMR_%d", request.ID),
		TargetHospitals: targets,
		Message:         "Emergency request created, nearby hospitals have been notified",
	}, nil
}

// resolveLocation возвращает координаты клиента либо настроенную точку по умолчанию,
// если координаты отсутствуют или вне допустимых границ. Создание запроса не должно
// падать из-за сломанного GPS.
func (s *dispatchService) resolveLocation(lat, lon *float64, log *logrus.Entry) (float64, float64) {
	if lat == nil || lon == nil {
		return s.cfg.FallbackLatitude, s.cfg.FallbackLongitude
	}
	if !geo.ValidCoordinates(*lat, *lon) {
		log.WithFields(logrus.Fields{"lat": *lat, "lon": *lon}).
			Warn("Coordinates out of range, using fallback location")
		return s.cfg.FallbackLatitude, s.cfg.FallbackLongitude
	}
	return *lat, *lon
}

// storeInjuryPhoto декодирует и сохраняет фото травмы. Недоступность хранилища
// не отменяет запрос, слишком большое или битое фото - ошибка валидации.
func (s *dispatchService) storeInjuryPhoto(ctx context.Context, photoData string, log *logrus.Entry) (string, error) {
	if photoData == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(photoData)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPhotoData, err)
	}
	if len(data) > maxInjuryPhotoBytes {
		return "", ErrPhotoTooLarge
	}

	ref := "injury_photo:" + uuid.NewString()
	if err := s.requests.StoreInjuryPhoto(ctx, ref, data); err != nil {
		log.WithError(err).Warn("Failed to store injury photo, continuing without it")
		return "", nil
	}
	return ref, nil
}

// lookupMedicalHistory запрашивает медицинскую выписку best-effort:
// любая ошибка деградирует до "без выписки"
func (s *dispatchService) lookupMedicalHistory(ctx context.Context, qrCode, token string, log *logrus.Entry) *medical.Snapshot {
	var (
		snapshot *medical.Snapshot
		err      error
	)
	switch {
	case qrCode != "":
		snapshot, err = s.history.LookupByQRCode(ctx, qrCode)
	case token != "":
		snapshot, err = s.history.LookupByToken(ctx, token)
	default:
		return nil
	}
	if err != nil {
		log.WithError(err).Warn("Medical history lookup failed, continuing without snapshot")
		return nil
	}
	return snapshot
}

// notifyHospitals публикует NewEmergencyRequest в канал каждой оповещаемой больницы
// и собирает сводку по целям для ответа клиенту
func (s *dispatchService) notifyHospitals(ctx context.Context, request *models.EmergencyRequest, candidates []int64, log *logrus.Entry) []HospitalTarget {
	hospitals, err := s.hospitals.GetByIDs(ctx, candidates)
	if err != nil {
		log.WithError(err).Warn("Failed to load hospital records for notification")
		hospitals = nil
	}
	byID := make(map[int64]*models.Hospital, len(hospitals))
	for _, h := range hospitals {
		byID[h.ID] = h
	}

	targets := make([]HospitalTarget, 0, len(candidates))
	for _, hospitalID := range candidates {
		distance := 0.0
		if h, ok := byID[hospitalID]; ok {
			distance = geo.DistanceKm(request.Latitude, request.Longitude, h.Latitude, h.Longitude)
			targets = append(targets, HospitalTarget{
				HospitalID:    h.ID,
				Name:          h.Name,
				Latitude:      h.Latitude,
				Longitude:     h.Longitude,
				DistanceKm:    distance,
				ContactNumber: h.ContactNumber,
				Specialties:   h.Specialties,
			})
		}

		event := notify.Event{
			Type:      notify.EventNewEmergencyRequest,
			RequestID: request.ID,
			Payload: notify.NewEmergencyRequestPayload{
				PatientLocation:   notify.Location{Latitude: request.Latitude, Longitude: request.Longitude},
				InjuryDescription: request.InjuryDescription,
				Priority:          request.Priority,
				DistanceKm:        distance,
				HasMedicalHistory: len(request.MedicalSnapshot) > 0,
			},
		}
		if err := s.publisher.PublishToHospital(ctx, hospitalID, event); err != nil {
			log.WithError(err).WithField("hospital_id", hospitalID).
				Warn("Failed to publish NewEmergencyRequest, hospital can still discover the request by polling")
		}
	}
	return targets
}

// RespondToRequest обрабатывает принятие или отказ больницы.
// Арбитраж одновременных принятий целиком делегирован условному переходу в хранилище:
// выигрывает первый, остальные получают ErrAlreadyProcessed.
func (s *dispatchService) RespondToRequest(ctx context.Context, in HospitalResponseInput) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "RespondToRequest",
		"request_id":  in.RequestID,
		"hospital_id": in.HospitalID,
		"accepted":    in.IsAccepted,
	})

	if in.RequestID <= 0 || in.HospitalID <= 0 {
		return ErrInvalidID
	}

	if in.IsAccepted {
		return s.acceptRequest(ctx, in, log)
	}
	return s.rejectRequest(ctx, in, log)
}

func (s *dispatchService) acceptRequest(ctx context.Context, in HospitalResponseInput, log *logrus.Entry) error {
	if in.EstimatedResponseTimeMinutes <= 0 {
		return ErrInvalidAcceptance
	}

	ok, err := s.requests.TryAccept(ctx, in.RequestID, in.HospitalID, time.Now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to transition request to accepted")
		return fmt.Errorf("service: could not accept request: %w", err)
	}
	if !ok {
		log.Info("Request was already processed by another hospital")
		return ErrAlreadyProcessed
	}
	s.invalidateCache(ctx, in.RequestID, log)
	log.Info("Request accepted")

	request, err := s.requests.GetByID(ctx, in.RequestID)
	if err != nil || request == nil {
		log.WithError(err).Warn("Failed to load accepted request for notification")
		return nil
	}

	info := notify.HospitalInfo{ID: in.HospitalID}
	if hospital, err := s.hospitals.GetByID(ctx, in.HospitalID); err == nil && hospital != nil {
		info = notify.HospitalInfo{
			ID:            hospital.ID,
			Name:          hospital.Name,
			Latitude:      hospital.Latitude,
			Longitude:     hospital.Longitude,
			ContactNumber: hospital.ContactNumber,
			DistanceKm:    geo.DistanceKm(request.Latitude, request.Longitude, hospital.Latitude, hospital.Longitude),
		}
	}

	event := notify.Event{
		Type:      notify.EventHospitalAccepted,
		RequestID: request.ID,
		Payload: notify.HospitalAcceptedPayload{
			Hospital:                     info,
			EstimatedResponseTimeMinutes: in.EstimatedResponseTimeMinutes,
			AmbulanceAvailable:           in.AmbulanceAvailable,
			Message:                      in.ResponseMessage,
		},
	}
	if err := s.publisher.PublishToUser(ctx, request.RequesterID, event); err != nil {
		log.WithError(err).Warn("Failed to publish HospitalAccepted to user channel")
	}
	if err := s.publisher.PublishToRequestWatchers(ctx, request.ID, event); err != nil {
		log.WithError(err).Warn("Failed to publish HospitalAccepted to request watchers")
	}
	return nil
}

func (s *dispatchService) rejectRequest(ctx context.Context, in HospitalResponseInput, log *logrus.Entry) error {
	rejected, notified, stillPending, err := s.requests.AddRejection(ctx, in.RequestID, in.HospitalID)
	if err != nil {
		log.WithError(err).Error("Failed to record rejection")
		return fmt.Errorf("service: could not record rejection: %w", err)
	}
	if !stillPending {
		// Запрос уже принят или закрыт, поздний отказ игнорируется
		log.Info("Rejection ignored, request is no longer pending")
		return nil
	}
	s.invalidateCache(ctx, in.RequestID, log)
	log.WithField("rejected_count", len(rejected)).Info("Rejection recorded")

	// Собственный дашборд больницы убирает запрос из списка
	ack := notify.Event{Type: notify.EventEmergencyRequestRejected, RequestID: in.RequestID}
	if err := s.publisher.PublishToHospital(ctx, in.HospitalID, ack); err != nil {
		log.WithError(err).Warn("Failed to publish EmergencyRequestRejected to hospital channel")
	}

	return s.checkEscalation(ctx, in.RequestID, notified, rejected, log)
}

// checkEscalation переводит запрос в all_rejected, когда отказались все оповещенные
// больницы. Проверка идемпотентна: повторный вызов после перехода - no-op, потому что
// хранилище пропускает переход только из pending, и событие публикуется не более одного раза.
func (s *dispatchService) checkEscalation(ctx context.Context, requestID int64, notified, rejected []int64, log *logrus.Entry) error {
	if !models.AllNotifiedRejected(notified, rejected) {
		return nil
	}

	ok, err := s.requests.TransitionAllRejected(ctx, requestID)
	if err != nil {
		log.WithError(err).Error("Failed to transition request to all_rejected")
		return fmt.Errorf("service: could not escalate request: %w", err)
	}
	if !ok {
		return nil
	}
	s.invalidateCache(ctx, requestID, log)
	log.Warn("All notified hospitals rejected the request")

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil || request == nil {
		log.WithError(err).Warn("Failed to load escalated request for notification")
		return nil
	}

	event := notify.Event{
		Type:      notify.EventAllHospitalsRejected,
		RequestID: requestID,
		Payload: notify.AllHospitalsRejectedPayload{
			Message:        "All nearby hospitals are unavailable, please call the emergency line",
			FallbackNumber: s.cfg.EmergencyFallbackNumber,
		},
	}
	if err := s.publisher.PublishToUser(ctx, request.RequesterID, event); err != nil {
		log.WithError(err).Warn("Failed to publish AllHospitalsRejected to user channel")
	}
	return nil
}

// UpdateLocation обновляет местоположение пациента у открытого запроса
func (s *dispatchService) UpdateLocation(ctx context.Context, requestID int64, lat, lon float64, at time.Time) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "UpdateLocation",
		"request_id": requestID,
	})

	if requestID <= 0 {
		return ErrInvalidID
	}
	if !geo.ValidCoordinates(lat, lon) {
		return ErrInvalidCoordinates
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	ok, err := s.requests.UpdateLocation(ctx, requestID, lat, lon, at)
	if err != nil {
		log.WithError(err).Error("Failed to update request location")
		return fmt.Errorf("service: could not update location: %w", err)
	}
	if !ok {
		return ErrRequestNotFound
	}
	s.invalidateCache(ctx, requestID, log)
	log.Info("Request location updated")

	event := notify.Event{
		Type:      notify.EventLocationUpdated,
		RequestID: requestID,
		Payload: notify.LocationUpdatedPayload{
			Latitude:  lat,
			Longitude: lon,
			Timestamp: at,
		},
	}
	// Ошибка публикации не откатывает уже сохраненное обновление
	if err := s.publisher.PublishToRequestWatchers(ctx, requestID, event); err != nil {
		log.WithError(err).Warn("Failed to publish LocationUpdated to request watchers")
	}
	return nil
}

// CompleteRequest закрывает запрос; разрешено только его владельцу
func (s *dispatchService) CompleteRequest(ctx context.Context, requestID int64, requesterID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "dispatch",
		"method":       "CompleteRequest",
		"request_id":   requestID,
		"requester_id": requesterID,
	})

	if requestID <= 0 {
		return ErrInvalidID
	}
	if requesterID == "" {
		return ErrEmptyRequesterID
	}

	ok, err := s.requests.Complete(ctx, requestID, requesterID)
	if err != nil {
		log.WithError(err).Error("Failed to complete request")
		return fmt.Errorf("service: could not complete request: %w", err)
	}
	if !ok {
		return ErrRequestNotFound
	}
	s.invalidateCache(ctx, requestID, log)
	log.Info("Request completed")
	return nil
}

// GetRequestStatus возвращает авторитетный статус запроса для опроса клиентом
func (s *dispatchService) GetRequestStatus(ctx context.Context, requestID int64) (*RequestStatusResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "GetRequestStatus",
		"request_id": requestID,
	})

	if requestID <= 0 {
		return nil, ErrInvalidID
	}

	request, err := s.getRequestCached(ctx, requestID, log)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	result := &RequestStatusResult{
		RequestID:           request.ID,
		Status:              request.Status,
		CreatedAt:           request.CreatedAt,
		WaitingMinutes:      int(time.Since(request.CreatedAt).Minutes()),
		HasHospitalResponse: request.HospitalResponseAt != nil,
		Latitude:            request.Latitude,
		Longitude:           request.Longitude,
	}

	if request.AcceptedHospitalID != nil {
		hospital, err := s.hospitals.GetByID(ctx, *request.AcceptedHospitalID)
		if err != nil {
			log.WithError(err).Warn("Failed to load accepted hospital for status")
		} else if hospital != nil {
			result.AcceptedHospital = &HospitalTarget{
				HospitalID:    hospital.ID,
				Name:          hospital.Name,
				Latitude:      hospital.Latitude,
				Longitude:     hospital.Longitude,
				DistanceKm:    geo.DistanceKm(request.Latitude, request.Longitude, hospital.Latitude, hospital.Longitude),
				ContactNumber: hospital.ContactNumber,
			}
		}
	}
	return result, nil
}

// GetHospitalView возвращает открытые запросы, видимые больнице: запрос попадает в выдачу,
// если больница его не отклоняла и либо расстояние в пределах радиуса, либо больница была
// явно оповещена (целевой запрос виден и за пределами радиуса)
func (s *dispatchService) GetHospitalView(ctx context.Context, hospitalID int64, radiusKm float64) ([]*HospitalViewItem, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "GetHospitalView",
		"hospital_id": hospitalID,
	})

	if hospitalID <= 0 {
		return nil, ErrInvalidID
	}
	if radiusKm <= 0 {
		radiusKm = s.cfg.DefaultViewRadiusKm
	}

	hospital, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		log.WithError(err).Error("Failed to load hospital")
		return nil, fmt.Errorf("service: could not load hospital: %w", err)
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	requests, err := s.requests.ListOpen(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list open requests")
		return nil, fmt.Errorf("service: could not list open requests: %w", err)
	}

	items := make([]*HospitalViewItem, 0, len(requests))
	for _, request := range requests {
		if request.IsRejectedBy(hospitalID) {
			continue
		}
		distance := geo.DistanceKm(hospital.Latitude, hospital.Longitude, request.Latitude, request.Longitude)
		targeted := request.IsNotified(hospitalID)
		if distance > radiusKm && !targeted {
			continue
		}
		items = append(items, &HospitalViewItem{
			RequestID:         request.ID,
			Priority:          request.Priority,
			Latitude:          request.Latitude,
			Longitude:         request.Longitude,
			DistanceKm:        distance,
			InjuryDescription: request.InjuryDescription,
			HasMedicalHistory: len(request.MedicalSnapshot) > 0,
			Targeted:          targeted,
			CreatedAt:         request.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority < items[j].Priority
		}
		return items[i].DistanceKm < items[j].DistanceKm
	})

	log.WithField("count", len(items)).Info("Hospital view computed")
	return items, nil
}

// GetRequestDetails возвращает полные детали (включая медицинскую выписку) только
// для запросов в статусе pending - предпросмотр перед принятием. Для остальных
// статусов отвечает not found, поздние выборки деталей неуместны.
func (s *dispatchService) GetRequestDetails(ctx context.Context, requestID, hospitalID int64) (*RequestDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "GetRequestDetails",
		"request_id":  requestID,
		"hospital_id": hospitalID,
	})

	if requestID <= 0 || hospitalID <= 0 {
		return nil, ErrInvalidID
	}

	request, err := s.getRequestCached(ctx, requestID, log)
	if err != nil {
		return nil, err
	}
	if request == nil || request.Status != models.RequestPending {
		return nil, ErrRequestNotFound
	}

	hospital, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		log.WithError(err).Error("Failed to load hospital")
		return nil, fmt.Errorf("service: could not load hospital: %w", err)
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return &RequestDetails{
		RequestID:         request.ID,
		Priority:          request.Priority,
		Latitude:          request.Latitude,
		Longitude:         request.Longitude,
		DistanceKm:        geo.DistanceKm(hospital.Latitude, hospital.Longitude, request.Latitude, request.Longitude),
		InjuryDescription: request.InjuryDescription,
		InjuryPhotoRef:    request.InjuryPhotoRef,
		MedicalSnapshot:   request.MedicalSnapshot,
		MedicalSource:     request.MedicalSource,
		CreatedAt:         request.CreatedAt,
	}, nil
}

// GetStats возвращает сводку по диспетчеризации за настроенное окно времени
func (s *dispatchService) GetStats(ctx context.Context) (*DispatchStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "GetStats",
	})

	created, accepted, openPending, err := s.requests.GetDispatchStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get dispatch stats")
		return nil, fmt.Errorf("service: could not get dispatch stats: %w", err)
	}

	return &DispatchStats{
		WindowMinutes:    s.cfg.StatsTimeWindowMinutes,
		CreatedCount:     created,
		AcceptedCount:    accepted,
		OpenPendingCount: openPending,
	}, nil
}

// getRequestCached читает запрос через кеш; промах добирается из бд и прогревает кеш
func (s *dispatchService) getRequestCached(ctx context.Context, requestID int64, log *logrus.Entry) (*models.EmergencyRequest, error) {
	cached, err := s.requests.GetRequestFromCache(ctx, requestID)
	if err != nil {
		log.WithError(err).Warn("Failed to read request from cache")
	} else if cached != nil {
		return cached, nil
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		log.WithError(err).Error("Failed to get request")
		return nil, fmt.Errorf("service: could not get request: %w", err)
	}
	if request == nil {
		return nil, nil
	}

	if err := s.requests.SetRequestCache(ctx, request); err != nil {
		log.WithError(err).Warn("Failed to cache request")
	}
	return request, nil
}

// invalidateCache сбрасывает кеш запроса после перехода состояния
func (s *dispatchService) invalidateCache(ctx context.Context, requestID int64, log *logrus.Entry) {
	if err := s.requests.InvalidateRequestCache(ctx, requestID); err != nil {
		log.WithError(err).Warn("Failed to invalidate request cache")
	}
}
