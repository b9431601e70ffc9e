package service

import (
	"errors"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/pkg/logger"
)

var ErrInvalidSizeRule = errors.New("호칭 규칙의 가슴둘레 구간이 올바르지 않습니다")

// SettingsService 상의호칭 규칙/양식 좌표 설정 서비스 인터페이스
type SettingsService interface {
	GetSizeRules() ([]model.SizeRule, error)
	ReplaceSizeRules(rules []SizeRuleInput) ([]model.SizeRule, error)
	GetFormFields() ([]model.FormField, error)
	UpdateFormField(req *FormFieldInput) (*model.FormField, error)
}

// SizeRuleInput 호칭 규칙 입력
type SizeRuleInput struct {
	ChestMinCm float64 `json:"chest_min_cm" binding:"required"`
	ChestMaxCm float64 `json:"chest_max_cm" binding:"required"`
	TopSize    string  `json:"top_size" binding:"required"`
}

// FormFieldInput 양식 좌표 입력
type FormFieldInput struct {
	FieldKey string  `json:"field_key" binding:"required"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService 설정 서비스 생성자
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// GetSizeRules 호칭 규칙 조회
func (s *settingsService) GetSizeRules() ([]model.SizeRule, error) {
	return s.repo.ListSizeRules()
}

// ReplaceSizeRules 호칭 규칙 전체 교체
func (s *settingsService) ReplaceSizeRules(inputs []SizeRuleInput) ([]model.SizeRule, error) {
	rules := make([]model.SizeRule, 0, len(inputs))
	for _, in := range inputs {
		if in.ChestMinCm > in.ChestMaxCm || in.TopSize == "" {
			return nil, ErrInvalidSizeRule
		}
		rules = append(rules, model.SizeRule{
			ChestMinCm: in.ChestMinCm,
			ChestMaxCm: in.ChestMaxCm,
			TopSize:    in.TopSize,
		})
	}

	if err := s.repo.ReplaceSizeRules(rules); err != nil {
		logger.Error("Failed to replace size rules", err)
		return nil, err
	}
	return s.repo.ListSizeRules()
}

// GetFormFields 양식 좌표 조회
func (s *settingsService) GetFormFields() ([]model.FormField, error) {
	return s.repo.ListFormFields()
}

// UpdateFormField 양식 좌표 저장 (필드키 기준 upsert)
func (s *settingsService) UpdateFormField(req *FormFieldInput) (*model.FormField, error) {
	field := &model.FormField{
		FieldKey: req.FieldKey,
		X:        req.X,
		Y:        req.Y,
	}
	if err := s.repo.UpsertFormField(field); err != nil {
		return nil, err
	}

	fields, err := s.repo.ListFormFields()
	if err != nil {
		return nil, err
	}
	for i := range fields {
		if fields[i].FieldKey == req.FieldKey {
			return &fields[i], nil
		}
	}
	return field, nil
}
