package repository

import (
	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
)

// ReportRepository 리포트 실행 이력 저장소 인터페이스
type ReportRepository interface {
	Create(run *model.ReportRun) error
	List(kind *model.ReportKind, limit int) ([]model.ReportRun, error)
	FindByID(id uint) (*model.ReportRun, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 리포트 저장소 생성자
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create 실행 이력 기록
func (r *reportRepository) Create(run *model.ReportRun) error {
	return r.db.Create(run).Error
}

// List 실행 이력 조회 (최근 순)
func (r *reportRepository) List(kind *model.ReportKind, limit int) ([]model.ReportRun, error) {
	var runs []model.ReportRun
	query := r.db.Model(&model.ReportRun{})
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&runs).Error
	return runs, err
}

// FindByID 실행 ID로 조회
func (r *reportRepository) FindByID(id uint) (*model.ReportRun, error) {
	var run model.ReportRun
	if err := r.db.First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}
