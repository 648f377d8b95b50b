package service

import (
	"context"
	"fmt"
)

// defaultCandidateCount - сколько доступных больниц берется, когда маршрутизация не настроена
const defaultCandidateCount = 2

// selectCandidates выбирает фиксированный набор больниц для оповещения о новом запросе.
// Порядок правил:
//  1. явный список из конфигурации возвращается как есть, без фильтра доступности
//     (ответственность оператора);
//  2. одиночная больница по умолчанию;
//  3. первые defaultCandidateCount доступных больниц по возрастанию id.
//
// Пустой результат - ошибка конфигурации: диспетчеризация "в никуда" запрещена.
func (s *dispatchService) selectCandidates(ctx context.Context) ([]int64, error) {
	if len(s.cfg.EmergencyHospitalIDs) > 0 {
		ids := make([]int64, len(s.cfg.EmergencyHospitalIDs))
		copy(ids, s.cfg.EmergencyHospitalIDs)
		return ids, nil
	}

	if s.cfg.DefaultHospitalID > 0 {
		return []int64{s.cfg.DefaultHospitalID}, nil
	}

	hospitals, err := s.hospitals.ListAvailable(ctx, defaultCandidateCount)
	if err != nil {
		return nil, fmt.Errorf("service: could not list available hospitals: %w", err)
	}
	if len(hospitals) == 0 {
		return nil, ErrNoHospitalsConfigured
	}

	ids := make([]int64, 0, len(hospitals))
	for _, h := range hospitals {
		ids = append(ids, h.ID)
	}
	return ids, nil
}
