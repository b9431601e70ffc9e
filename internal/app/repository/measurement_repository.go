package repository

import (
	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
)

// MeasurementRepository 치수 이력 저장소 인터페이스
type MeasurementRepository interface {
	Create(measurement *model.Measurement) error
	FindByID(id uint) (*model.Measurement, error)
	FindByMemberID(memberID uint) ([]model.Measurement, error)
	FindLatestByMemberID(memberID uint) (*model.Measurement, error)
	Delete(id uint) error
}

type measurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository 치수 저장소 생성자
func NewMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &measurementRepository{db: db}
}

// Create 치수 기록 생성
func (r *measurementRepository) Create(measurement *model.Measurement) error {
	return r.db.Create(measurement).Error
}

// FindByID 치수 ID로 조회
func (r *measurementRepository) FindByID(id uint) (*model.Measurement, error) {
	var measurement model.Measurement
	if err := r.db.First(&measurement, id).Error; err != nil {
		return nil, err
	}
	return &measurement, nil
}

// FindByMemberID 회원의 치수 이력 조회 (최근 순)
func (r *measurementRepository) FindByMemberID(memberID uint) ([]model.Measurement, error) {
	var measurements []model.Measurement
	err := r.db.Where("member_id = ?", memberID).
		Order("measure_date DESC").
		Find(&measurements).Error
	return measurements, err
}

// FindLatestByMemberID 회원의 최신 치수 조회 (주문서 양식 채우기용)
func (r *measurementRepository) FindLatestByMemberID(memberID uint) (*model.Measurement, error) {
	var measurement model.Measurement
	err := r.db.Where("member_id = ?", memberID).
		Order("measure_date DESC").
		First(&measurement).Error
	if err != nil {
		return nil, err
	}
	return &measurement, nil
}

// Delete 치수 기록 삭제 (소프트 삭제)
func (r *measurementRepository) Delete(id uint) error {
	return r.db.Delete(&model.Measurement{}, id).Error
}
