package service

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/excel"
	"github.com/elburim/elburim-backend/pkg/logger"
)

// 잔량 경고 기준 (이하일 때 low_stock_alert 시트에 올라간다)
const lowStockThreshold = 10.0

// ReportService 분석 리포트 서비스 인터페이스.
// 납품달력 변환 결과와 회원/재고 데이터를 엮어 xlsx 워크북을 만든다.
type ReportService interface {
	GenerateProduction(year int) (*model.ReportRun, error)
	GenerateCRM(year int) (*model.ReportRun, error)
	GenerateStock() (*model.ReportRun, error)
	ListRuns(kind *model.ReportKind, limit int) ([]model.ReportRun, error)
}

type reportService struct {
	deliveryRepo repository.DeliveryRepository
	memberRepo   repository.MemberRepository
	stockRepo    repository.StockRepository
	reportRepo   repository.ReportRepository
	reportDir    string
}

// NewReportService 리포트 서비스 생성자
func NewReportService(
	deliveryRepo repository.DeliveryRepository,
	memberRepo repository.MemberRepository,
	stockRepo repository.StockRepository,
	reportRepo repository.ReportRepository,
	reportDir string,
) ReportService {
	return &reportService{
		deliveryRepo: deliveryRepo,
		memberRepo:   memberRepo,
		stockRepo:    stockRepo,
		reportRepo:   reportRepo,
		reportDir:    reportDir,
	}
}

const reportDateLayout = "2006-01-02"

func ordersRawSheet(orders []model.DeliveryOrder) excel.Sheet {
	rows := make([][]interface{}, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []interface{}{
			o.OrderNo, o.OrderDate.Format(reportDateLayout), o.CustomerName,
			o.CustomerCode, o.Items, o.Weekday, o.Month, o.Day,
		})
	}
	return excel.Sheet{
		Name:    "orders_raw",
		Headers: []string{"order_id", "order_date", "customer_name", "customer_code", "items", "weekday", "month", "day"},
		Rows:    rows,
	}
}

// GenerateProduction 생산/주문 분석 리포트 생성 (월별/요일별 주문건수)
func (s *reportService) GenerateProduction(year int) (*model.ReportRun, error) {
	orders, err := s.deliveryRepo.FindOrdersByYear(year)
	if err != nil {
		return nil, err
	}

	monthCounts := map[int]int{}
	weekdayCounts := map[string]int{}
	for _, o := range orders {
		monthCounts[o.Month]++
		weekdayCounts[o.Weekday]++
	}

	var monthRows [][]interface{}
	for month := 1; month <= 12; month++ {
		if count, ok := monthCounts[month]; ok {
			monthRows = append(monthRows, []interface{}{month, count})
		}
	}

	weekdays := make([]string, 0, len(weekdayCounts))
	for w := range weekdayCounts {
		weekdays = append(weekdays, w)
	}
	sort.Strings(weekdays)
	var weekdayRows [][]interface{}
	for _, w := range weekdays {
		weekdayRows = append(weekdayRows, []interface{}{w, weekdayCounts[w]})
	}

	sheets := []excel.Sheet{
		ordersRawSheet(orders),
		{Name: "month_summary", Headers: []string{"month", "order_count"}, Rows: monthRows},
		{Name: "weekday_summary", Headers: []string{"weekday", "order_count"}, Rows: weekdayRows},
	}

	path := filepath.Join(s.reportDir, fmt.Sprintf("생산분석_%d.xlsx", year))
	return s.writeAndRecord(model.ReportProduction, year, path, sheets)
}

// GenerateCRM CRM 기본 분석 리포트 생성 (VIP 후보 + 이탈위험 후보)
func (s *reportService) GenerateCRM(year int) (*model.ReportRun, error) {
	members, _, err := s.memberRepo.Search("", nil, 0, 0)
	if err != nil {
		return nil, err
	}
	orders, err := s.deliveryRepo.FindOrdersByYear(year)
	if err != nil {
		return nil, err
	}

	memberRows := make([][]interface{}, 0, len(members))
	for _, m := range members {
		memberRows = append(memberRows, []interface{}{
			m.MemberNo, m.Name, m.BirthDate, m.Phone, m.Address, m.Job,
			m.FirstVisit.Format(reportDateLayout), string(m.Status),
		})
	}

	// 고객 코드별 연간 주문건수 / 최근 주문일
	orderCounts := map[int]int{}
	lastOrder := map[int]string{}
	for _, o := range orders {
		orderCounts[o.CustomerCode]++
		date := o.OrderDate.Format(reportDateLayout)
		if date > lastOrder[o.CustomerCode] {
			lastOrder[o.CustomerCode] = date
		}
	}

	codes := make([]int, 0, len(orderCounts))
	for code := range orderCounts {
		codes = append(codes, code)
	}

	// VIP 후보: 주문건수 내림차순, 동률이면 코드 오름차순
	sort.Slice(codes, func(a, b int) bool {
		if orderCounts[codes[a]] != orderCounts[codes[b]] {
			return orderCounts[codes[a]] > orderCounts[codes[b]]
		}
		return codes[a] < codes[b]
	})
	var vipRows [][]interface{}
	for _, code := range codes {
		vipRows = append(vipRows, []interface{}{code, orderCounts[code]})
	}

	// 이탈위험 후보: 코드 오름차순으로 최근 주문일 나열
	sorted := append([]int(nil), codes...)
	sort.Ints(sorted)
	var lastRows [][]interface{}
	for _, code := range sorted {
		lastRows = append(lastRows, []interface{}{code, lastOrder[code]})
	}

	sheets := []excel.Sheet{
		{
			Name:    "customers_raw",
			Headers: []string{"member_no", "name", "birth_date", "phone", "address", "job", "first_visit", "status"},
			Rows:    memberRows,
		},
		ordersRawSheet(orders),
		{Name: "VIP_candidates_code", Headers: []string{"customer_code", "order_count"}, Rows: vipRows},
		{Name: "last_order_by_code", Headers: []string{"customer_code", "last_order_date"}, Rows: lastRows},
	}

	path := filepath.Join(s.reportDir, fmt.Sprintf("CRM_기본분석_%d.xlsx", year))
	return s.writeAndRecord(model.ReportCRM, year, path, sheets)
}

// GenerateStock 재고 분석 리포트 생성 (월별 사용량 + 잔량 + 부족 경고)
func (s *reportService) GenerateStock() (*model.ReportRun, error) {
	movements, _, err := s.stockRepo.ListMovements(0, 0)
	if err != nil {
		return nil, err
	}
	balances, err := s.stockRepo.Balances()
	if err != nil {
		return nil, err
	}

	rawRows := make([][]interface{}, 0, len(movements))
	type usageKey struct {
		stockNo string
		month   string
	}
	usageSums := map[usageKey]float64{}
	for _, mv := range movements {
		rawRows = append(rawRows, []interface{}{
			mv.Date.Format(reportDateLayout), mv.StockItem.StockNo, mv.StockItem.Name,
			string(mv.Type), mv.Quantity, mv.QuantitySigned, mv.Unit, mv.RelatedOrderNo, mv.Note,
		})
		key := usageKey{stockNo: mv.StockItem.StockNo, month: mv.Date.Format("2006-01")}
		usageSums[key] += mv.QuantitySigned
	}

	usageKeys := make([]usageKey, 0, len(usageSums))
	for k := range usageSums {
		usageKeys = append(usageKeys, k)
	}
	sort.Slice(usageKeys, func(a, b int) bool {
		if usageKeys[a].stockNo != usageKeys[b].stockNo {
			return usageKeys[a].stockNo < usageKeys[b].stockNo
		}
		return usageKeys[a].month < usageKeys[b].month
	})
	var usageRows [][]interface{}
	for _, k := range usageKeys {
		usageRows = append(usageRows, []interface{}{k.stockNo, k.month, usageSums[k]})
	}

	var balanceRows, alertRows [][]interface{}
	for _, b := range balances {
		row := []interface{}{b.StockNo, b.Name, b.Unit, b.Balance}
		balanceRows = append(balanceRows, row)
		if b.Balance <= lowStockThreshold {
			alertRows = append(alertRows, row)
		}
	}

	sheets := []excel.Sheet{
		{
			Name:    "raw_stock",
			Headers: []string{"date", "stock_no", "stock_name", "type", "quantity", "quantity_signed", "unit", "related_order_no", "note"},
			Rows:    rawRows,
		},
		{Name: "usage", Headers: []string{"stock_no", "month", "quantity_signed"}, Rows: usageRows},
		{Name: "balance", Headers: []string{"stock_no", "name", "unit", "balance"}, Rows: balanceRows},
		{Name: "low_stock_alert", Headers: []string{"stock_no", "name", "unit", "balance"}, Rows: alertRows},
	}

	path := filepath.Join(s.reportDir, "재고분석.xlsx")
	return s.writeAndRecord(model.ReportStock, 0, path, sheets)
}

// ListRuns 리포트 실행 이력 조회
func (s *reportService) ListRuns(kind *model.ReportKind, limit int) ([]model.ReportRun, error) {
	return s.reportRepo.List(kind, limit)
}

func (s *reportService) writeAndRecord(kind model.ReportKind, year int, path string, sheets []excel.Sheet) (*model.ReportRun, error) {
	if err := excel.WriteWorkbook(path, sheets); err != nil {
		logger.Error("Failed to write report workbook", err, map[string]interface{}{
			"kind": kind,
			"path": path,
		})
		return nil, err
	}

	sheetNames := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		sheetNames = append(sheetNames, sheet.Name)
	}

	run := &model.ReportRun{
		Kind:     kind,
		Year:     year,
		FilePath: path,
		Sheets:   sheetNames,
	}
	if err := s.reportRepo.Create(run); err != nil {
		return nil, err
	}

	logger.Info("Report generated", map[string]interface{}{
		"kind":   kind,
		"year":   year,
		"path":   path,
		"sheets": sheetNames,
	})
	return run, nil
}
