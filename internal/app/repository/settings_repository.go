package repository

import (
	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
)

// SettingsRepository 상의호칭 규칙/양식 좌표 저장소 인터페이스
type SettingsRepository interface {
	ListSizeRules() ([]model.SizeRule, error)
	ReplaceSizeRules(rules []model.SizeRule) error
	FindSizeRuleByChestCm(chestCm float64) (*model.SizeRule, error)

	ListFormFields() ([]model.FormField, error)
	UpsertFormField(field *model.FormField) error
	FormFieldPositions() (map[string][2]float64, error)
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository 설정 저장소 생성자
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// ListSizeRules 상의호칭 규칙 전체 조회 (하한 오름차순)
func (r *settingsRepository) ListSizeRules() ([]model.SizeRule, error) {
	var rules []model.SizeRule
	err := r.db.Order("chest_min_cm ASC").Find(&rules).Error
	return rules, err
}

// ReplaceSizeRules 규칙 전체를 갈아끼운다 (트랜잭션)
func (r *settingsRepository) ReplaceSizeRules(rules []model.SizeRule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.SizeRule{}).Error; err != nil {
			return err
		}
		for i := range rules {
			rules[i].ID = 0
			if err := tx.Create(&rules[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindSizeRuleByChestCm 가슴둘레(cm)가 속하는 규칙 조회
func (r *settingsRepository) FindSizeRuleByChestCm(chestCm float64) (*model.SizeRule, error) {
	var rule model.SizeRule
	err := r.db.Where("chest_min_cm <= ? AND chest_max_cm >= ?", chestCm, chestCm).
		Order("chest_min_cm ASC").
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// ListFormFields 양식 좌표 전체 조회
func (r *settingsRepository) ListFormFields() ([]model.FormField, error) {
	var fields []model.FormField
	err := r.db.Order("id ASC").Find(&fields).Error
	return fields, err
}

// UpsertFormField 필드키 기준으로 좌표 저장 (있으면 수정, 없으면 생성)
func (r *settingsRepository) UpsertFormField(field *model.FormField) error {
	var existing model.FormField
	err := r.db.Where("field_key = ?", field.FieldKey).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(field).Error
	}
	if err != nil {
		return err
	}
	existing.X = field.X
	existing.Y = field.Y
	return r.db.Save(&existing).Error
}

// FormFieldPositions 필드키 → (x, y) 맵 조회 (PDF 생성용)
func (r *settingsRepository) FormFieldPositions() (map[string][2]float64, error) {
	fields, err := r.ListFormFields()
	if err != nil {
		return nil, err
	}
	positions := make(map[string][2]float64, len(fields))
	for _, f := range fields {
		positions[f.FieldKey] = [2]float64{f.X, f.Y}
	}
	return positions, nil
}
