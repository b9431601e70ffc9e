package repository

import (
	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
)

// StockBalance 자재별 부호 합산 잔량
type StockBalance struct {
	StockItemID uint    `json:"stock_item_id"`
	StockNo     string  `json:"stock_no"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Balance     float64 `json:"balance"`
}

// StockRepository 자재/입출고 저장소 인터페이스
type StockRepository interface {
	CreateItem(item *model.StockItem) error
	FindItemByID(id uint) (*model.StockItem, error)
	FindItemByStockNo(stockNo string) (*model.StockItem, error)
	FindFirstItemByCategory(category model.StockCategory) (*model.StockItem, error)
	ListItems(category *model.StockCategory) ([]model.StockItem, error)
	UpdateItem(item *model.StockItem) error
	DeleteItem(id uint) error
	LastStockNo(prefix string) (string, error)

	CreateMovement(movement *model.StockMovement) error
	FindMovementsByItemID(itemID uint) ([]model.StockMovement, error)
	FindMovementsByOrderNo(orderNo string) ([]model.StockMovement, error)
	ListMovements(limit, offset int) ([]model.StockMovement, int64, error)
	Balances() ([]StockBalance, error)
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository 자재 저장소 생성자
func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

// CreateItem 자재 등록
func (r *stockRepository) CreateItem(item *model.StockItem) error {
	return r.db.Create(item).Error
}

// FindItemByID 자재 ID로 조회
func (r *stockRepository) FindItemByID(id uint) (*model.StockItem, error) {
	var item model.StockItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemByStockNo 자재 코드로 조회
func (r *stockRepository) FindItemByStockNo(stockNo string) (*model.StockItem, error) {
	var item model.StockItem
	if err := r.db.Where("stock_no = ?", stockNo).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindFirstItemByCategory 분류의 첫 자재 조회 (자동 출고 기본 원단 선택용)
func (r *stockRepository) FindFirstItemByCategory(category model.StockCategory) (*model.StockItem, error) {
	var item model.StockItem
	err := r.db.Where("category = ?", category).
		Order("stock_no ASC").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems 자재 목록 조회 (분류 필터)
func (r *stockRepository) ListItems(category *model.StockCategory) ([]model.StockItem, error) {
	var items []model.StockItem
	query := r.db.Model(&model.StockItem{})
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	err := query.Order("stock_no ASC").Find(&items).Error
	return items, err
}

// UpdateItem 자재 정보 수정
func (r *stockRepository) UpdateItem(item *model.StockItem) error {
	return r.db.Save(item).Error
}

// DeleteItem 자재 삭제 (소프트 삭제)
func (r *stockRepository) DeleteItem(id uint) error {
	return r.db.Delete(&model.StockItem{}, id).Error
}

// LastStockNo 접두사가 같은 마지막 자재 코드 조회 (없으면 "")
// F/L 같은 분류 접두사별로 일련번호를 따로 매기기 위한 조회다.
func (r *stockRepository) LastStockNo(prefix string) (string, error) {
	var item model.StockItem
	err := r.db.Unscoped().
		Where("stock_no LIKE ?", prefix+"%").
		Order("stock_no DESC").
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return item.StockNo, nil
}

// CreateMovement 입출고 기록 생성
func (r *stockRepository) CreateMovement(movement *model.StockMovement) error {
	return r.db.Create(movement).Error
}

// FindMovementsByItemID 자재의 입출고 이력 조회 (날짜 순)
func (r *stockRepository) FindMovementsByItemID(itemID uint) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Where("stock_item_id = ?", itemID).
		Order("date ASC, id ASC").
		Find(&movements).Error
	return movements, err
}

// FindMovementsByOrderNo 납품 주문번호로 입출고 이력 조회
func (r *stockRepository) FindMovementsByOrderNo(orderNo string) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Where("related_order_no = ?", orderNo).
		Order("date ASC, id ASC").
		Find(&movements).Error
	return movements, err
}

// ListMovements 입출고 전체 이력 조회 (최근 순 + 페이지네이션)
func (r *stockRepository) ListMovements(limit, offset int) ([]model.StockMovement, int64, error) {
	var movements []model.StockMovement
	var total int64

	query := r.db.Model(&model.StockMovement{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("StockItem").Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&movements).Error; err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// Balances 자재별 부호 합산 잔량 조회
func (r *stockRepository) Balances() ([]StockBalance, error) {
	var balances []StockBalance
	err := r.db.Model(&model.StockMovement{}).
		Select("stock_items.id AS stock_item_id, stock_items.stock_no, stock_items.name, stock_items.unit, SUM(stock_movements.quantity_signed) AS balance").
		Joins("JOIN stock_items ON stock_items.id = stock_movements.stock_item_id").
		Group("stock_items.id, stock_items.stock_no, stock_items.name, stock_items.unit").
		Order("stock_items.stock_no ASC").
		Scan(&balances).Error
	return balances, err
}
