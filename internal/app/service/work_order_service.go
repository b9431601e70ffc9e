package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/storage"
	"github.com/elburim/elburim-backend/pkg/formpdf"
	"github.com/elburim/elburim-backend/pkg/logger"
)

var (
	ErrWorkOrderNotFound      = errors.New("주문서를 찾을 수 없습니다")
	ErrInvalidWorkOrderStatus = errors.New("잘못된 주문서 상태입니다")
)

// WorkOrderService 주문서 서비스 인터페이스.
// 주문서를 저장하면 고객상담 양식 PDF가 함께 생성된다.
type WorkOrderService interface {
	CreateWorkOrder(ctx context.Context, req *CreateWorkOrderRequest) (*model.WorkOrder, error)
	GetWorkOrder(id uint) (*model.WorkOrder, error)
	GetMemberWorkOrders(memberID uint) ([]model.WorkOrder, error)
	ListWorkOrders(status *model.WorkOrderStatus, page, pageSize int) ([]model.WorkOrder, int64, error)
	UpdateStatus(id uint, status model.WorkOrderStatus) (*model.WorkOrder, error)
	DeleteWorkOrder(id uint) error
}

// CreateWorkOrderRequest 주문서 등록 요청
type CreateWorkOrderRequest struct {
	MemberID     uint   `json:"member_id" binding:"required"`
	OrderDate    string `json:"order_date"`    // YYYY-MM-DD, 생략 시 오늘
	FittingDate  string `json:"fitting_date"`  // YYYY-MM-DD
	DeliveryDate string `json:"delivery_date"` // YYYY-MM-DD
	Amount       int64  `json:"amount"`
	Deposit      int64  `json:"deposit"`
	FabricCode   string `json:"fabric_code"`
	FabricNote   string `json:"fabric_note"`
	OrderDetail  string `json:"order_detail"`
}

type workOrderService struct {
	repo          repository.WorkOrderRepository
	memberRepo    repository.MemberRepository
	settingsRepo  repository.SettingsRepository
	stamper       *formpdf.Stamper
	filledFormDir string
	s3            *storage.S3Storage // nil이면 로컬 저장만 한다
}

// NewWorkOrderService 주문서 서비스 생성자. s3는 nil 허용.
func NewWorkOrderService(
	repo repository.WorkOrderRepository,
	memberRepo repository.MemberRepository,
	settingsRepo repository.SettingsRepository,
	stamper *formpdf.Stamper,
	filledFormDir string,
	s3 *storage.S3Storage,
) WorkOrderService {
	return &workOrderService{
		repo:          repo,
		memberRepo:    memberRepo,
		settingsRepo:  settingsRepo,
		stamper:       stamper,
		filledFormDir: filledFormDir,
		s3:            s3,
	}
}

func parseDateField(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// CreateWorkOrder 주문서 생성 (주문번호 발급 + 양식 PDF 생성 + 선택적 S3 업로드)
func (s *workOrderService) CreateWorkOrder(ctx context.Context, req *CreateWorkOrderRequest) (*model.WorkOrder, error) {
	member, err := s.memberRepo.FindByID(req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	orderDate := time.Now()
	if parsed := parseDateField(req.OrderDate); parsed != nil {
		orderDate = *parsed
	}

	count, err := s.repo.CountByDate(orderDate)
	if err != nil {
		return nil, err
	}
	orderNo := fmt.Sprintf("O%s-%04d", orderDate.Format("20060102"), count+1)

	order := &model.WorkOrder{
		OrderNo:      orderNo,
		MemberID:     member.ID,
		TemplateName: "고객상담양식",
		OrderDate:    orderDate,
		FittingDate:  parseDateField(req.FittingDate),
		DeliveryDate: parseDateField(req.DeliveryDate),
		Amount:       req.Amount,
		Deposit:      req.Deposit,
		Balance:      req.Amount - req.Deposit,
		FabricCode:   req.FabricCode,
		FabricNote:   req.FabricNote,
		OrderDetail:  req.OrderDetail,
		Status:       model.WorkOrderInProgress,
	}

	// 양식에 찍을 필드 값 구성 (필드키는 설정의 좌표 키와 일치해야 한다)
	values := map[string]interface{}{
		"성명":   member.Name,
		"생년월일": member.BirthDate,
		"주소":   member.Address,
		"HP":   member.Phone,
		"주문일":  order.OrderDate,
		"가봉일":  order.FittingDate,
		"납품일":  order.DeliveryDate,
		"주문금액": order.Amount,
		"선금":   order.Deposit,
		"잔금":   order.Balance,
		"원단코드": order.FabricCode,
		"원단설명": order.FabricNote,
		"주문내역": order.OrderDetail,
	}
	if payload, err := json.Marshal(stringifyValues(values)); err == nil {
		order.PayloadJSON = string(payload)
	}

	if err := s.generateFilledPDF(ctx, order, values); err != nil {
		// PDF 실패는 주문서 저장을 막지 않는다. 좌표/템플릿 수정 후 재생성 가능.
		logger.Warn("Failed to generate filled form PDF", map[string]interface{}{
			"order_no": orderNo,
			"error":    err.Error(),
		})
	}

	if err := s.repo.Create(order); err != nil {
		logger.Error("Failed to create work order", err, map[string]interface{}{
			"order_no": orderNo,
		})
		return nil, err
	}

	logger.Info("Work order created", map[string]interface{}{
		"order_no":  order.OrderNo,
		"member_no": member.MemberNo,
		"amount":    order.Amount,
	})
	return order, nil
}

func stringifyValues(values map[string]interface{}) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = formpdf.FormatValue(v)
	}
	return out
}

func (s *workOrderService) generateFilledPDF(ctx context.Context, order *model.WorkOrder, values map[string]interface{}) error {
	raw, err := s.settingsRepo.FormFieldPositions()
	if err != nil {
		return err
	}
	positions := make(map[string]formpdf.FieldPos, len(raw))
	for key, xy := range raw {
		positions[key] = formpdf.FieldPos{X: xy[0], Y: xy[1]}
	}

	outPath := filepath.Join(s.filledFormDir, fmt.Sprintf("%s.pdf", order.OrderNo))
	if err := s.stamper.Generate(outPath, values, positions); err != nil {
		return err
	}
	order.FilledPDFPath = outPath

	if s.s3 != nil {
		result, err := s.s3.UploadFile(ctx, outPath, "filled-forms", "application/pdf")
		if err != nil {
			logger.Warn("Failed to upload filled form to S3", map[string]interface{}{
				"order_no": order.OrderNo,
				"error":    err.Error(),
			})
			return nil
		}
		order.FilledPDFURL = result.FileURL
	}
	return nil
}

// GetWorkOrder 주문서 조회
func (s *workOrderService) GetWorkOrder(id uint) (*model.WorkOrder, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetMemberWorkOrders 회원의 주문서 목록 조회
func (s *workOrderService) GetMemberWorkOrders(memberID uint) ([]model.WorkOrder, error) {
	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.repo.FindByMemberID(memberID)
}

// ListWorkOrders 주문서 목록 조회
func (s *workOrderService) ListWorkOrders(status *model.WorkOrderStatus, page, pageSize int) ([]model.WorkOrder, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.repo.List(status, pageSize, offset)
}

var validStatuses = map[model.WorkOrderStatus]bool{
	model.WorkOrderInProgress:  true,
	model.WorkOrderFittingDone: true,
	model.WorkOrderDelivered:   true,
	model.WorkOrderOnHold:      true,
	model.WorkOrderCancelled:   true,
}

// UpdateStatus 주문서 상태 변경
func (s *workOrderService) UpdateStatus(id uint, status model.WorkOrderStatus) (*model.WorkOrder, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidWorkOrderStatus
	}

	order, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}

	if err := s.repo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status

	logger.Info("Work order status updated", map[string]interface{}{
		"order_no": order.OrderNo,
		"status":   status,
	})
	return order, nil
}

// DeleteWorkOrder 주문서 삭제
func (s *workOrderService) DeleteWorkOrder(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkOrderNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
