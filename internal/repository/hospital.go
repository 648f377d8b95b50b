package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const hospitalColumns = `
	id,
	name,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	contact_number,
	available,
	specialties,
	created_at`

// HospitalRepository - доступ на чтение к справочнику больниц.
// Записями владеет внешняя система, движок их не изменяет.
type HospitalRepository struct {
	db *pgxpool.Pool
}

func NewHospitalRepository(db *pgxpool.Pool) service.HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetByID возвращает больницу по id, nil если она не существует
func (r *HospitalRepository) GetByID(ctx context.Context, id int64) (*models.Hospital, error) {
	query := `
		SELECT ` + hospitalColumns + `
		FROM hospitals
		WHERE id = $1;
	`
	hospital, err := scanHospital(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital by id: %w", err)
	}
	return hospital, nil
}

// GetByIDs возвращает найденные больницы из списка id; отсутствующие id пропускаются
func (r *HospitalRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Hospital, error) {
	if len(ids) == 0 {
		return []*models.Hospital{}, nil
	}

	query := `
		SELECT ` + hospitalColumns + `
		FROM hospitals
		WHERE id = ANY($1)
		ORDER BY id ASC;
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get hospitals by ids: %w", err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0, len(ids))
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error hospital list iteration: %w", err)
	}
	return hospitals, nil
}

// ListAvailable возвращает первые limit доступных больниц по возрастанию id
func (r *HospitalRepository) ListAvailable(ctx context.Context, limit int) ([]*models.Hospital, error) {
	query := `
		SELECT ` + hospitalColumns + `
		FROM hospitals
		WHERE available = TRUE
		ORDER BY id ASC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list available hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0, limit)
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error hospital list iteration: %w", err)
	}
	return hospitals, nil
}

func scanHospital(row pgx.Row) (*models.Hospital, error) {
	hospital := &models.Hospital{}
	err := row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Latitude,
		&hospital.Longitude,
		&hospital.ContactNumber,
		&hospital.Available,
		&hospital.Specialties,
		&hospital.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return hospital, nil
}
