package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
)

// ConsultationRepository 상담 이력 저장소 인터페이스
type ConsultationRepository interface {
	Create(consultation *model.Consultation) error
	FindByID(id uint) (*model.Consultation, error)
	FindByMemberID(memberID uint) ([]model.Consultation, error)
	Update(consultation *model.Consultation) error
	Delete(id uint) error
	CountByDate(date time.Time) (int64, error)
}

type consultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository 상담 저장소 생성자
func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

// Create 상담 기록 생성
func (r *consultationRepository) Create(consultation *model.Consultation) error {
	return r.db.Create(consultation).Error
}

// FindByID 상담 ID로 조회
func (r *consultationRepository) FindByID(id uint) (*model.Consultation, error) {
	var consultation model.Consultation
	if err := r.db.Preload("Member").First(&consultation, id).Error; err != nil {
		return nil, err
	}
	return &consultation, nil
}

// FindByMemberID 회원의 상담 이력 조회 (최근 순)
func (r *consultationRepository) FindByMemberID(memberID uint) ([]model.Consultation, error) {
	var consultations []model.Consultation
	err := r.db.Where("member_id = ?", memberID).
		Order("consult_date DESC").
		Find(&consultations).Error
	return consultations, err
}

// Update 상담 기록 수정
func (r *consultationRepository) Update(consultation *model.Consultation) error {
	return r.db.Save(consultation).Error
}

// Delete 상담 기록 삭제 (소프트 삭제)
func (r *consultationRepository) Delete(id uint) error {
	return r.db.Delete(&model.Consultation{}, id).Error
}

// CountByDate 특정 날짜의 상담 건수 (상담번호 일련번호 발급용)
// 소프트 삭제 건도 세어 번호가 재사용되지 않게 한다.
func (r *consultationRepository) CountByDate(date time.Time) (int64, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.Unscoped().Model(&model.Consultation{}).
		Where("consult_date >= ? AND consult_date < ?", start, end).
		Count(&count).Error
	return count, err
}
