package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/pkg/logger"
	"github.com/elburim/elburim-backend/pkg/measure"
)

var (
	ErrMeasurementNotFound = errors.New("치수 기록을 찾을 수 없습니다")
	ErrInvalidMeasureValue = errors.New("치수 표기를 해석할 수 없습니다")
)

// MeasurementService 치수 서비스 인터페이스.
// 입력은 inch 분수 표기 문자열로 받고, cm 환산값과 상의호칭 추천을 함께 저장한다.
type MeasurementService interface {
	CreateMeasurement(req *CreateMeasurementRequest) (*model.Measurement, error)
	GetMemberMeasurements(memberID uint) ([]model.Measurement, error)
	GetLatestMeasurement(memberID uint) (*model.Measurement, error)
	DeleteMeasurement(id uint) error
}

// CreateMeasurementRequest 치수 등록 요청. 각 부위는 "17 1/4" 같은 inch 표기.
type CreateMeasurementRequest struct {
	MemberID    uint   `json:"member_id" binding:"required"`
	MeasureDate string `json:"measure_date"` // YYYY-MM-DD, 생략 시 오늘
	Shoulder    string `json:"shoulder"`
	Chest       string `json:"chest"`
	Waist       string `json:"waist"`
	Hip         string `json:"hip"`
	Sleeve      string `json:"sleeve"`
	Length      string `json:"length"`
}

type measurementService struct {
	repo         repository.MeasurementRepository
	memberRepo   repository.MemberRepository
	settingsRepo repository.SettingsRepository
}

// NewMeasurementService 치수 서비스 생성자
func NewMeasurementService(
	repo repository.MeasurementRepository,
	memberRepo repository.MemberRepository,
	settingsRepo repository.SettingsRepository,
) MeasurementService {
	return &measurementService{
		repo:         repo,
		memberRepo:   memberRepo,
		settingsRepo: settingsRepo,
	}
}

// parseField 표기 하나를 (inch, cm)로 푼다. 빈 문자열은 0으로 둔다.
func parseField(name, raw string) (float64, float64, error) {
	if raw == "" {
		return 0, 0, nil
	}
	inch, err := measure.ParseInch(raw)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s=%q", ErrInvalidMeasureValue, name, raw)
	}
	return inch, measure.InchToCm(inch), nil
}

// CreateMeasurement 치수 등록 (inch → cm 환산 + 상의호칭 추천)
func (s *measurementService) CreateMeasurement(req *CreateMeasurementRequest) (*model.Measurement, error) {
	if _, err := s.memberRepo.FindByID(req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	measureDate := time.Now()
	if req.MeasureDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.MeasureDate); err == nil {
			measureDate = parsed
		}
	}

	m := &model.Measurement{
		MemberID:    req.MemberID,
		MeasureDate: measureDate,
	}

	fields := []struct {
		name string
		raw  string
		in   *float64
		cm   *float64
	}{
		{"shoulder", req.Shoulder, &m.ShoulderIn, &m.ShoulderCm},
		{"chest", req.Chest, &m.ChestIn, &m.ChestCm},
		{"waist", req.Waist, &m.WaistIn, &m.WaistCm},
		{"hip", req.Hip, &m.HipIn, &m.HipCm},
		{"sleeve", req.Sleeve, &m.SleeveIn, &m.SleeveCm},
		{"length", req.Length, &m.LengthIn, &m.LengthCm},
	}
	for _, f := range fields {
		inch, cm, err := parseField(f.name, f.raw)
		if err != nil {
			return nil, err
		}
		*f.in = inch
		*f.cm = cm
	}

	// 가슴둘레 기준 상의호칭 추천. 규칙 구간 밖이면 비워 둔다.
	if m.ChestCm > 0 {
		rule, err := s.settingsRepo.FindSizeRuleByChestCm(m.ChestCm)
		if err == nil {
			m.TopSize = rule.TopSize
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := s.repo.Create(m); err != nil {
		logger.Error("Failed to create measurement", err, map[string]interface{}{
			"member_id": req.MemberID,
		})
		return nil, err
	}

	logger.Info("Measurement created", map[string]interface{}{
		"member_id": m.MemberID,
		"chest_cm":  m.ChestCm,
		"top_size":  m.TopSize,
	})
	return m, nil
}

// GetMemberMeasurements 회원의 치수 이력 조회
func (s *measurementService) GetMemberMeasurements(memberID uint) ([]model.Measurement, error) {
	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.repo.FindByMemberID(memberID)
}

// GetLatestMeasurement 회원의 최신 치수 조회
func (s *measurementService) GetLatestMeasurement(memberID uint) (*model.Measurement, error) {
	m, err := s.repo.FindLatestByMemberID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeasurementNotFound
		}
		return nil, err
	}
	return m, nil
}

// DeleteMeasurement 치수 기록 삭제
func (s *measurementService) DeleteMeasurement(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeasurementNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
