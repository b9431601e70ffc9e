package service

import (
	"errors"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/calendar"
	"github.com/elburim/elburim-backend/internal/excel"
	"github.com/elburim/elburim-backend/pkg/fabric"
	"github.com/elburim/elburim-backend/pkg/logger"
)

var ErrDeliveryOrderNotFound = errors.New("납품 주문을 찾을 수 없습니다")

// TransformSummary 납품달력 변환 한 번의 요약
type TransformSummary struct {
	Year            int                      `json:"year"`
	EntryCount      int                      `json:"entry_count"`
	OrderCount      int                      `json:"order_count"`
	UnresolvedCount int                      `json:"unresolved_count"`
	Collisions      []calendar.CodeCollision `json:"collisions,omitempty"`
	FlatFile        string                   `json:"flat_file"`
	OrdersFile      string                   `json:"orders_file"`
}

// OrderFabricUsage 납품 주문 한 건의 원단 소요량
type OrderFabricUsage struct {
	OrderNo string        `json:"order_no"`
	Items   string        `json:"items"`
	Parsed  []fabric.Item `json:"parsed"`
	UsageM  float64       `json:"usage_m"`
}

// CalendarService 납품달력 변환 서비스 인터페이스
type CalendarService interface {
	TransformFile(path string, year int) (*TransformSummary, error)
	GetOrders(year int) ([]model.DeliveryOrder, error)
	GetOrder(orderNo string) (*model.DeliveryOrder, error)
	GetEntries(year int) ([]model.DeliveryEntry, error)
	GetUnresolved(year int) ([]model.DeliveryEntry, error)
	GetOrderFabricUsage(orderNo string) (*OrderFabricUsage, error)
}

type calendarService struct {
	repo         repository.DeliveryRepository
	dataCleanDir string
}

// NewCalendarService 납품달력 서비스 생성자
func NewCalendarService(repo repository.DeliveryRepository, dataCleanDir string) CalendarService {
	return &calendarService{repo: repo, dataCleanDir: dataCleanDir}
}

// TransformFile 납품달력 xlsx 하나를 변환해 DB에 반영하고 결과 xlsx를 내보낸다.
// 같은 연도를 다시 변환하면 이전 결과가 통째로 교체된다.
func (s *calendarService) TransformFile(path string, year int) (*TransformSummary, error) {
	grid, err := excel.LoadGrid(path)
	if err != nil {
		return nil, err
	}

	result, err := calendar.Transform(grid, year)
	if err != nil {
		return nil, err
	}

	entries := make([]model.DeliveryEntry, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, model.DeliveryEntry{
			Year:         year,
			OrderNo:      e.OrderID,
			CustomerName: e.Name,
			CustomerCode: e.CustomerCode,
			ExplicitCode: e.Code,
			Sequence:     e.Sequence,
			OrderDate:    e.Date,
			Weekday:      e.Weekday,
			Month:        e.Month,
			Day:          e.Day,
			Note1:        e.Notes[0],
			Note2:        e.Notes[1],
			Note3:        e.Notes[2],
			SrcRow:       e.Row,
			SrcCol:       e.Col,
			Unresolved:   e.Unresolved,
			Reason:       e.Reason,
		})
	}

	orders := make([]model.DeliveryOrder, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, model.DeliveryOrder{
			OrderNo:      o.OrderID,
			Year:         year,
			OrderDate:    o.Date,
			CustomerName: o.Name,
			CustomerCode: o.Code,
			Items:        o.Items,
			Weekday:      o.Weekday,
			Month:        o.Month,
			Day:          o.Day,
		})
	}

	if err := s.repo.ReplaceYear(year, entries, orders); err != nil {
		logger.Error("Failed to persist calendar transform", err, map[string]interface{}{
			"year": year,
		})
		return nil, err
	}

	flatFile := filepath.Join(s.dataCleanDir, fmt.Sprintf("delivery_flat_with_id_%d.xlsx", year))
	ordersFile := filepath.Join(s.dataCleanDir, fmt.Sprintf("orders_%d.xlsx", year))
	if err := excel.WriteFlatEntries(flatFile, result.Entries); err != nil {
		return nil, err
	}
	if err := excel.WriteOrderTable(ordersFile, result.Orders); err != nil {
		return nil, err
	}

	logger.Info("Calendar transformed", map[string]interface{}{
		"year":       year,
		"entries":    len(result.Entries),
		"orders":     len(result.Orders),
		"unresolved": len(result.Unresolved),
		"collisions": len(result.Collisions),
	})

	return &TransformSummary{
		Year:            year,
		EntryCount:      len(result.Entries),
		OrderCount:      len(result.Orders),
		UnresolvedCount: len(result.Unresolved),
		Collisions:      result.Collisions,
		FlatFile:        flatFile,
		OrdersFile:      ordersFile,
	}, nil
}

// GetOrders 연도의 납품 주문 조회
func (s *calendarService) GetOrders(year int) ([]model.DeliveryOrder, error) {
	return s.repo.FindOrdersByYear(year)
}

// GetOrder 주문번호로 납품 주문 조회
func (s *calendarService) GetOrder(orderNo string) (*model.DeliveryOrder, error) {
	order, err := s.repo.FindOrderByNo(orderNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeliveryOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetEntries 연도의 플랫 엔트리 전체 조회
func (s *calendarService) GetEntries(year int) ([]model.DeliveryEntry, error) {
	return s.repo.FindEntriesByYear(year)
}

// GetUnresolved 연도의 미해결 엔트리 조회 (진단용)
func (s *calendarService) GetUnresolved(year int) ([]model.DeliveryEntry, error) {
	return s.repo.FindUnresolvedByYear(year)
}

// GetOrderFabricUsage 납품 주문의 품목 메모에서 원단 소요량을 계산한다
func (s *calendarService) GetOrderFabricUsage(orderNo string) (*OrderFabricUsage, error) {
	order, err := s.GetOrder(orderNo)
	if err != nil {
		return nil, err
	}

	return &OrderFabricUsage{
		OrderNo: order.OrderNo,
		Items:   order.Items,
		Parsed:  fabric.ParseItems(order.Items),
		UsageM:  fabric.Usage(order.Items),
	}, nil
}
