package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
)

// WorkOrderRepository 주문서 저장소 인터페이스
type WorkOrderRepository interface {
	Create(order *model.WorkOrder) error
	FindByID(id uint) (*model.WorkOrder, error)
	FindByOrderNo(orderNo string) (*model.WorkOrder, error)
	FindByMemberID(memberID uint) ([]model.WorkOrder, error)
	List(status *model.WorkOrderStatus, limit, offset int) ([]model.WorkOrder, int64, error)
	Update(order *model.WorkOrder) error
	UpdateStatus(id uint, status model.WorkOrderStatus) error
	Delete(id uint) error
	CountByDate(date time.Time) (int64, error)
}

type workOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository 주문서 저장소 생성자
func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository {
	return &workOrderRepository{db: db}
}

// Create 주문서 생성
func (r *workOrderRepository) Create(order *model.WorkOrder) error {
	return r.db.Create(order).Error
}

// FindByID 주문서 ID로 조회
func (r *workOrderRepository) FindByID(id uint) (*model.WorkOrder, error) {
	var order model.WorkOrder
	if err := r.db.Preload("Member").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByOrderNo 주문번호로 조회
func (r *workOrderRepository) FindByOrderNo(orderNo string) (*model.WorkOrder, error) {
	var order model.WorkOrder
	if err := r.db.Preload("Member").Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByMemberID 회원의 주문서 목록 조회 (최근 순)
func (r *workOrderRepository) FindByMemberID(memberID uint) ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	err := r.db.Where("member_id = ?", memberID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// List 주문서 목록 조회 (상태 필터 + 페이지네이션)
func (r *workOrderRepository) List(status *model.WorkOrderStatus, limit, offset int) ([]model.WorkOrder, int64, error) {
	var orders []model.WorkOrder
	var total int64

	query := r.db.Model(&model.WorkOrder{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Member").Order("order_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update 주문서 수정
func (r *workOrderRepository) Update(order *model.WorkOrder) error {
	return r.db.Save(order).Error
}

// UpdateStatus 주문서 상태 변경
func (r *workOrderRepository) UpdateStatus(id uint, status model.WorkOrderStatus) error {
	return r.db.Model(&model.WorkOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete 주문서 삭제 (소프트 삭제)
func (r *workOrderRepository) Delete(id uint) error {
	return r.db.Delete(&model.WorkOrder{}, id).Error
}

// CountByDate 특정 날짜의 주문서 건수 (주문번호 일련번호 발급용)
func (r *workOrderRepository) CountByDate(date time.Time) (int64, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.Unscoped().Model(&model.WorkOrder{}).
		Where("order_date >= ? AND order_date < ?", start, end).
		Count(&count).Error
	return count, err
}
