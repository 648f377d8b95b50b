package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCandidates_ConfiguredList(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestDispatchService(t)
	ctx := context.Background()
	service.cfg.EmergencyHospitalIDs = []int64{5, 3, 7}

	// Действие
	ids, err := service.selectCandidates(ctx)

	// Проверки
	// Настроенный список возвращается как есть, порядок оператора сохраняется
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 7}, ids)
}

func TestSelectCandidates_DefaultHospital(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestDispatchService(t)
	ctx := context.Background()
	service.cfg.EmergencyHospitalIDs = nil
	service.cfg.DefaultHospitalID = 9

	// Действие
	ids, err := service.selectCandidates(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, ids)
}

func TestSelectCandidates_FirstAvailable(t *testing.T) {
	// Подготовка
	service, _, hospitalsMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()
	service.cfg.EmergencyHospitalIDs = nil
	service.cfg.DefaultHospitalID = 0

	// Ожидания
	hospitalsMock.EXPECT().
		ListAvailable(ctx, defaultCandidateCount).
		Return([]*models.Hospital{{ID: 1}, {ID: 4}}, nil).
		Times(1)

	// Действие
	ids, err := service.selectCandidates(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, ids)
}

func TestSelectCandidates_NoHospitalsConfigured(t *testing.T) {
	// Подготовка
	service, _, hospitalsMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()
	service.cfg.EmergencyHospitalIDs = nil
	service.cfg.DefaultHospitalID = 0

	// Ожидания
	hospitalsMock.EXPECT().
		ListAvailable(ctx, defaultCandidateCount).
		Return(nil, nil).
		Times(1)

	// Действие
	ids, err := service.selectCandidates(ctx)

	// Проверки
	require.ErrorIs(t, err, ErrNoHospitalsConfigured)
	assert.Nil(t, ids)
}

func TestSelectCandidates_ListError(t *testing.T) {
	// Подготовка
	service, _, hospitalsMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()
	service.cfg.EmergencyHospitalIDs = nil
	service.cfg.DefaultHospitalID = 0
	dbError := errors.New("connection refused")

	// Ожидания
	hospitalsMock.EXPECT().
		ListAvailable(ctx, defaultCandidateCount).
		Return(nil, dbError).
		Times(1)

	// Действие
	ids, err := service.selectCandidates(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, ids)
	assert.ErrorContains(t, err, "could not list available hospitals")
}
