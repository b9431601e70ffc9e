package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/pkg/fabric"
	"github.com/elburim/elburim-backend/pkg/logger"
)

var (
	ErrStockItemNotFound  = errors.New("자재를 찾을 수 없습니다")
	ErrNoFabricRegistered = errors.New("등록된 원단 자재가 없습니다")
	ErrNoFabricUsage      = errors.New("주문 품목에서 원단 사용량이 계산되지 않습니다")
	ErrInvalidQuantity    = errors.New("수량은 0보다 커야 합니다")
)

// 자재명 키워드 → 코드 접두사
var categoryKeywords = []struct {
	keyword string
	prefix  string
}{
	{"원단", "F"},
	{"fabric", "F"},
	{"안감", "L"},
	{"lining", "L"},
	{"심지", "I"},
	{"interlining", "I"},
	{"단추", "B"},
	{"button", "B"},
	{"지퍼", "Z"},
	{"zipper", "Z"},
}

var prefixToCategory = map[string]model.StockCategory{
	"F": model.CategoryFabric,
	"L": model.CategoryLining,
	"I": model.CategoryInterlining,
	"B": model.CategoryButton,
	"Z": model.CategoryZipper,
	"A": model.CategoryOther,
}

// 분류별 단위 표준
var categoryUnits = map[model.StockCategory]string{
	model.CategoryFabric:      "m",
	model.CategoryLining:      "m",
	model.CategoryInterlining: "m",
	model.CategoryButton:      "ea",
	model.CategoryZipper:      "ea",
	model.CategoryOther:       "ea",
}

// StockService 자재/입출고 서비스 인터페이스
type StockService interface {
	RegisterItem(req *RegisterStockItemRequest) (*model.StockItem, error)
	GetItem(id uint) (*model.StockItem, error)
	ListItems(category *model.StockCategory) ([]model.StockItem, error)
	RecordMovement(req *RecordMovementRequest) (*model.StockMovement, error)
	ListMovements(page, pageSize int) ([]model.StockMovement, int64, error)
	GetItemMovements(itemID uint) ([]model.StockMovement, error)
	Balances() ([]repository.StockBalance, error)
	AutoStockOut(orderNo string) (*model.StockMovement, error)
}

// RegisterStockItemRequest 자재 등록 요청
type RegisterStockItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	CostPerUnit float64 `json:"cost_per_unit"`
	InitialQty  float64 `json:"initial_qty"`
	Note        string  `json:"note"`
}

// RecordMovementRequest 입출고 등록 요청
type RecordMovementRequest struct {
	StockItemID    uint    `json:"stock_item_id" binding:"required"`
	Date           string  `json:"date"` // YYYY-MM-DD, 생략 시 오늘
	Type           string  `json:"type" binding:"required"` // IN / OUT
	Quantity       float64 `json:"quantity" binding:"required"`
	RelatedOrderNo string  `json:"related_order_no"`
	Note           string  `json:"note"`
}

type stockService struct {
	repo         repository.StockRepository
	deliveryRepo repository.DeliveryRepository
}

// NewStockService 자재 서비스 생성자
func NewStockService(repo repository.StockRepository, deliveryRepo repository.DeliveryRepository) StockService {
	return &stockService{repo: repo, deliveryRepo: deliveryRepo}
}

// DetectCategoryPrefix 자재명 키워드로 분류 접두사를 정한다 (기본 A: 기타)
func DetectCategoryPrefix(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range categoryKeywords {
		if strings.Contains(name, entry.keyword) || strings.Contains(lower, entry.keyword) {
			return entry.prefix
		}
	}
	return "A"
}

// nextStockNo 접두사 내 마지막 번호 + 1 (F001 형식)
func (s *stockService) nextStockNo(prefix string) (string, error) {
	last, err := s.repo.LastStockNo(prefix)
	if err != nil {
		return "", err
	}
	if last == "" {
		return prefix + "001", nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
	if err != nil {
		return "", fmt.Errorf("malformed stock number %q: %w", last, err)
	}
	return fmt.Sprintf("%s%03d", prefix, n+1), nil
}

// RegisterItem 자재 등록 (분류 자동 감지 + 코드 발급 + 초기 입고)
func (s *stockService) RegisterItem(req *RegisterStockItemRequest) (*model.StockItem, error) {
	prefix := DetectCategoryPrefix(req.Name)
	category := prefixToCategory[prefix]

	stockNo, err := s.nextStockNo(prefix)
	if err != nil {
		return nil, err
	}

	item := &model.StockItem{
		StockNo:     stockNo,
		Name:        req.Name,
		Category:    category,
		Unit:        categoryUnits[category],
		CostPerUnit: req.CostPerUnit,
		Note:        req.Note,
	}
	if err := s.repo.CreateItem(item); err != nil {
		logger.Error("Failed to register stock item", err, map[string]interface{}{
			"stock_no": stockNo,
		})
		return nil, err
	}

	logger.Info("Stock item registered", map[string]interface{}{
		"stock_no": item.StockNo,
		"name":     item.Name,
		"category": item.Category,
	})

	if req.InitialQty > 0 {
		_, err := s.RecordMovement(&RecordMovementRequest{
			StockItemID: item.ID,
			Type:        string(model.MovementIn),
			Quantity:    req.InitialQty,
			Note:        "초기입고",
		})
		if err != nil {
			return nil, err
		}
	}
	return item, nil
}

// GetItem 자재 조회
func (s *stockService) GetItem(id uint) (*model.StockItem, error) {
	item, err := s.repo.FindItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListItems 자재 목록 조회
func (s *stockService) ListItems(category *model.StockCategory) ([]model.StockItem, error) {
	return s.repo.ListItems(category)
}

// RecordMovement 입출고 등록. IN은 양수, OUT은 음수 부호를 함께 기록한다.
func (s *stockService) RecordMovement(req *RecordMovementRequest) (*model.StockMovement, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	movementType := model.MovementType(strings.ToUpper(req.Type))
	if movementType != model.MovementIn && movementType != model.MovementOut {
		return nil, fmt.Errorf("잘못된 입출고 구분입니다: %s", req.Type)
	}

	item, err := s.repo.FindItemByID(req.StockItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockItemNotFound
		}
		return nil, err
	}

	date := time.Now()
	if req.Date != "" {
		if parsed, err := time.Parse("2006-01-02", req.Date); err == nil {
			date = parsed
		}
	}

	signed := req.Quantity
	if movementType == model.MovementOut {
		signed = -req.Quantity
	}

	movement := &model.StockMovement{
		StockItemID:    item.ID,
		Date:           date,
		Type:           movementType,
		Quantity:       req.Quantity,
		QuantitySigned: signed,
		Unit:           item.Unit,
		RelatedOrderNo: req.RelatedOrderNo,
		Note:           req.Note,
	}
	if err := s.repo.CreateMovement(movement); err != nil {
		logger.Error("Failed to record stock movement", err, map[string]interface{}{
			"stock_no": item.StockNo,
			"type":     movementType,
		})
		return nil, err
	}

	logger.Info("Stock movement recorded", map[string]interface{}{
		"stock_no": item.StockNo,
		"type":     movementType,
		"quantity": req.Quantity,
	})
	return movement, nil
}

// ListMovements 입출고 이력 조회
func (s *stockService) ListMovements(page, pageSize int) ([]model.StockMovement, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize
	return s.repo.ListMovements(pageSize, offset)
}

// GetItemMovements 자재의 입출고 이력 조회
func (s *stockService) GetItemMovements(itemID uint) ([]model.StockMovement, error) {
	if _, err := s.repo.FindItemByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockItemNotFound
		}
		return nil, err
	}
	return s.repo.FindMovementsByItemID(itemID)
}

// Balances 자재별 잔량 조회
func (s *stockService) Balances() ([]repository.StockBalance, error) {
	return s.repo.Balances()
}

// AutoStockOut 납품 주문의 품목 메모로 원단 소요량을 계산해 자동 출고한다.
// 단일 원단 가정: fabric 분류의 첫 자재가 출고 대상이다.
func (s *stockService) AutoStockOut(orderNo string) (*model.StockMovement, error) {
	order, err := s.deliveryRepo.FindOrderByNo(orderNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeliveryOrderNotFound
		}
		return nil, err
	}

	usage := fabric.Usage(order.Items)
	if usage <= 0 {
		return nil, ErrNoFabricUsage
	}
	usage = math.Round(usage*100) / 100

	item, err := s.repo.FindFirstItemByCategory(model.CategoryFabric)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoFabricRegistered
		}
		return nil, err
	}

	movement, err := s.RecordMovement(&RecordMovementRequest{
		StockItemID:    item.ID,
		Type:           string(model.MovementOut),
		Quantity:       usage,
		RelatedOrderNo: order.OrderNo,
		Note:           "자동 원단 소요 처리",
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Auto stock-out completed", map[string]interface{}{
		"order_no": order.OrderNo,
		"stock_no": item.StockNo,
		"usage_m":  usage,
	})
	return movement, nil
}
