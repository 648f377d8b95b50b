package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const (
	// requestCacheTTL - срок жизни кеша снимка запроса; кеш дополнительно
	// сбрасывается явно при каждом переходе состояния
	requestCacheTTL = 30 * time.Second

	// injuryPhotoTTL - срок хранения фото травмы
	injuryPhotoTTL = 24 * time.Hour
)

// requestColumns - общий список колонок выборки запроса
const requestColumns = `
	id,
	requester_id,
	status,
	priority,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	location_updated_at,
	injury_description,
	injury_photo_ref,
	medical_snapshot,
	medical_source,
	notified_hospital_ids,
	rejected_hospital_ids,
	accepted_hospital_id,
	hospital_response_at,
	created_at`

type RequestRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewRequestRepository(db *pgxpool.Pool, redisClient *redis.Client) service.RequestRepository {
	return &RequestRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Insert создает новую запись экстренного запроса в бд
func (r *RequestRepository) Insert(ctx context.Context, request *models.EmergencyRequest) error {
	query := `
		INSERT INTO emergency_requests (
			requester_id, status, priority, location, location_updated_at,
			injury_description, injury_photo_ref, medical_snapshot, medical_source,
			notified_hospital_ids, rejected_hospital_ids
		)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at;
	`
	var snapshot any
	if len(request.MedicalSnapshot) > 0 {
		snapshot = request.MedicalSnapshot
	}
	err := r.db.QueryRow(ctx, query,
		request.RequesterID,
		request.Status,
		request.Priority,
		request.Longitude,
		request.Latitude,
		request.LocationUpdatedAt,
		request.InjuryDescription,
		request.InjuryPhotoRef,
		snapshot,
		request.MedicalSource,
		request.NotifiedHospitalIDs,
		request.RejectedHospitalIDs,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		// Гонка двух одновременных создании от одного пользователя: частичный
		// уникальный индекс по requester_id пропускает только одну открытую
		// запись, проигравший получает конфликт вместо дубликата
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			existing, getErr := r.GetOpenByRequester(ctx, request.RequesterID)
			if getErr == nil && existing != nil {
				return &service.ExistingActiveRequestError{RequestID: existing.ID}
			}
			return &service.ExistingActiveRequestError{}
		}
		return fmt.Errorf("failed to insert emergency request: %w", err)
	}
	return nil
}

// GetOpenByRequester возвращает открытый (pending или accepted) запрос пользователя, nil если его нет
func (r *RequestRepository) GetOpenByRequester(ctx context.Context, requesterID string) (*models.EmergencyRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM emergency_requests
		WHERE requester_id = $1 AND status IN ('pending', 'accepted')
		ORDER BY created_at DESC
		LIMIT 1;
	`
	request, err := scanRequest(r.db.QueryRow(ctx, query, requesterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open request by requester: %w", err)
	}
	return request, nil
}

// GetByID возвращает запрос по id, nil если он не существует
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*models.EmergencyRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM emergency_requests
		WHERE id = $1;
	`
	request, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get request by id: %w", err)
	}
	return request, nil
}

// TryAccept - условный переход pending -> accepted одним UPDATE.
// Побеждает первый успевший: при любом другом текущем статусе обновления не происходит
// и возвращается false. Никакого read-then-write здесь быть не должно.
func (r *RequestRepository) TryAccept(ctx context.Context, id, hospitalID int64, at time.Time) (bool, error) {
	query := `
		UPDATE emergency_requests SET
			status = 'accepted',
			accepted_hospital_id = $2,
			hospital_response_at = $3
		WHERE id = $1 AND status = 'pending';
	`
	cmdTag, err := r.db.Exec(ctx, query, id, hospitalID, at)
	if err != nil {
		return false, fmt.Errorf("failed to accept request: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// AddRejection атомарно добавляет больницу в множество отказавших (повторное
// добавление - no-op) и возвращает актуальные множества для проверки эскалации.
// stillPending=false означает, что запрос уже не в статусе pending и отказ не записан.
func (r *RequestRepository) AddRejection(ctx context.Context, id, hospitalID int64) ([]int64, []int64, bool, error) {
	query := `
		UPDATE emergency_requests SET
			rejected_hospital_ids = CASE
				WHEN $2 = ANY(rejected_hospital_ids) THEN rejected_hospital_ids
				ELSE array_append(rejected_hospital_ids, $2)
			END
		WHERE id = $1 AND status = 'pending'
		RETURNING rejected_hospital_ids, notified_hospital_ids;
	`
	var rejected, notified []int64
	err := r.db.QueryRow(ctx, query, id, hospitalID).Scan(&rejected, &notified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("failed to add rejection: %w", err)
	}
	return rejected, notified, true, nil
}

// TransitionAllRejected - условный переход pending -> all_rejected.
// При гонке двух одновременных отказов успешным будет ровно один вызов.
func (r *RequestRepository) TransitionAllRejected(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE emergency_requests SET
			status = 'all_rejected'
		WHERE id = $1 AND status = 'pending';
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to transition request to all_rejected: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// UpdateLocation обновляет местоположение открытого запроса
func (r *RequestRepository) UpdateLocation(ctx context.Context, id int64, lat, lon float64, at time.Time) (bool, error) {
	query := `
		UPDATE emergency_requests SET
			location = ST_SetSRID(ST_MakePoint($2, $3), 4326),
			location_updated_at = $4
		WHERE id = $1 AND status IN ('pending', 'accepted');
	`
	cmdTag, err := r.db.Exec(ctx, query, id, lon, lat, at)
	if err != nil {
		return false, fmt.Errorf("failed to update request location: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// Complete закрывает запрос; проходит только для его владельца и только из открытого статуса
func (r *RequestRepository) Complete(ctx context.Context, id int64, requesterID string) (bool, error) {
	query := `
		UPDATE emergency_requests SET
			status = 'completed'
		WHERE id = $1 AND requester_id = $2 AND status IN ('pending', 'accepted');
	`
	cmdTag, err := r.db.Exec(ctx, query, id, requesterID)
	if err != nil {
		return false, fmt.Errorf("failed to complete request: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// ListOpen возвращает все запросы в статусе pending для вычисления видимости больниц
func (r *RequestRepository) ListOpen(ctx context.Context) ([]*models.EmergencyRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM emergency_requests
		WHERE status = 'pending'
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.EmergencyRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return requests, nil
}

// GetDispatchStats возвращает количество созданных и принятых запросов за окно
// в минутах, а также число открытых pending запросов
func (r *RequestRepository) GetDispatchStats(ctx context.Context, minutes int) (int, int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')),
			COUNT(*) FILTER (WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute') AND status = 'accepted'),
			COUNT(*) FILTER (WHERE status = 'pending')
		FROM emergency_requests;
	`
	var created, accepted, openPending int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&created, &accepted, &openPending); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to get dispatch stats: %w", err)
	}
	return created, accepted, openPending, nil
}

// StoreInjuryPhoto сохраняет декодированное фото травмы в Redis по ключу-ссылке
func (r *RequestRepository) StoreInjuryPhoto(ctx context.Context, ref string, data []byte) error {
	if err := r.redisClient.Set(ctx, ref, data, injuryPhotoTTL).Err(); err != nil {
		return fmt.Errorf("failed to store injury photo: %w", err)
	}
	return nil
}

// GetRequestFromCache пытается получить снимок запроса из Redis
func (r *RequestRepository) GetRequestFromCache(ctx context.Context, id int64) (*models.EmergencyRequest, error) {
	key := requestCacheKey(id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get request from cache: %w", err)
	}

	request := &models.EmergencyRequest{}
	if err := json.Unmarshal(val, request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request from cache: %w", err)
	}
	return request, nil
}

// SetRequestCache сохраняет снимок запроса в Redis
func (r *RequestRepository) SetRequestCache(ctx context.Context, request *models.EmergencyRequest) error {
	val, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, requestCacheKey(request.ID), val, requestCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set request in cache: %w", err)
	}
	return nil
}

// InvalidateRequestCache удаляет снимок запроса из Redis кэша
func (r *RequestRepository) InvalidateRequestCache(ctx context.Context, id int64) error {
	if err := r.redisClient.Del(ctx, requestCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate request cache: %w", err)
	}
	return nil
}

func requestCacheKey(id int64) string {
	return fmt.Sprintf("emergency_request:%d", id)
}

// scanRequest читает одну строку запроса; подходит и для QueryRow, и для Rows
func scanRequest(row pgx.Row) (*models.EmergencyRequest, error) {
	request := &models.EmergencyRequest{}
	err := row.Scan(
		&request.ID,
		&request.RequesterID,
		&request.Status,
		&request.Priority,
		&request.Latitude,
		&request.Longitude,
		&request.LocationUpdatedAt,
		&request.InjuryDescription,
		&request.InjuryPhotoRef,
		&request.MedicalSnapshot,
		&request.MedicalSource,
		&request.NotifiedHospitalIDs,
		&request.RejectedHospitalIDs,
		&request.AcceptedHospitalID,
		&request.HospitalResponseAt,
		&request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return request, nil
}
