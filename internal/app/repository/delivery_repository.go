package repository

import (
	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
)

// DeliveryRepository 납품달력 변환 결과 저장소 인터페이스.
// 같은 연도를 다시 변환하면 기존 결과를 지우고 새로 채운다.
type DeliveryRepository interface {
	ReplaceYear(year int, entries []model.DeliveryEntry, orders []model.DeliveryOrder) error
	FindEntriesByYear(year int) ([]model.DeliveryEntry, error)
	FindUnresolvedByYear(year int) ([]model.DeliveryEntry, error)
	FindOrdersByYear(year int) ([]model.DeliveryOrder, error)
	FindOrderByNo(orderNo string) (*model.DeliveryOrder, error)
	FindOrdersByCode(customerCode int) ([]model.DeliveryOrder, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository 납품 저장소 생성자
func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

// ReplaceYear 연도 단위로 변환 결과를 갈아끼운다 (트랜잭션)
func (r *deliveryRepository) ReplaceYear(year int, entries []model.DeliveryEntry, orders []model.DeliveryOrder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("year = ?", year).Delete(&model.DeliveryEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("year = ?", year).Delete(&model.DeliveryOrder{}).Error; err != nil {
			return err
		}
		if len(entries) > 0 {
			if err := tx.CreateInBatches(entries, 500).Error; err != nil {
				return err
			}
		}
		if len(orders) > 0 {
			if err := tx.CreateInBatches(orders, 500).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindEntriesByYear 연도의 플랫 엔트리 전체 조회 (원본 스캔 순서)
func (r *deliveryRepository) FindEntriesByYear(year int) ([]model.DeliveryEntry, error) {
	var entries []model.DeliveryEntry
	err := r.db.Where("year = ?", year).Order("id ASC").Find(&entries).Error
	return entries, err
}

// FindUnresolvedByYear 연도의 미해결 엔트리 조회
func (r *deliveryRepository) FindUnresolvedByYear(year int) ([]model.DeliveryEntry, error) {
	var entries []model.DeliveryEntry
	err := r.db.Where("year = ? AND unresolved = ?", year, true).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// FindOrdersByYear 연도의 납품 주문 조회 (주문번호 순)
func (r *deliveryRepository) FindOrdersByYear(year int) ([]model.DeliveryOrder, error) {
	var orders []model.DeliveryOrder
	err := r.db.Where("year = ?", year).Order("order_no ASC").Find(&orders).Error
	return orders, err
}

// FindOrderByNo 주문번호로 납품 주문 조회
func (r *deliveryRepository) FindOrderByNo(orderNo string) (*model.DeliveryOrder, error) {
	var order model.DeliveryOrder
	if err := r.db.Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindOrdersByCode 고객 코드의 납품 주문 조회 (날짜 순)
func (r *deliveryRepository) FindOrdersByCode(customerCode int) ([]model.DeliveryOrder, error) {
	var orders []model.DeliveryOrder
	err := r.db.Where("customer_code = ?", customerCode).
		Order("order_date ASC").
		Find(&orders).Error
	return orders, err
}
