package model

import (
	"time"

	"gorm.io/gorm"
)

type WorkOrderStatus string // 주문서 진행 상태

const (
	WorkOrderInProgress  WorkOrderStatus = "in_progress"  // 진행중
	WorkOrderFittingDone WorkOrderStatus = "fitting_done" // 가봉완료
	WorkOrderDelivered   WorkOrderStatus = "delivered"    // 납품완료
	WorkOrderOnHold      WorkOrderStatus = "on_hold"      // 보류
	WorkOrderCancelled   WorkOrderStatus = "cancelled"    // 취소
)

// WorkOrder 주문서(작업지시서). 저장 시 고객상담 양식 PDF가 함께 생성된다.
type WorkOrder struct {
	ID            uint            `gorm:"primarykey" json:"id"`                                   // 주문서 ID
	OrderNo       string          `gorm:"uniqueIndex;not null" json:"order_no"`                   // 주문번호 (O20250107-0001 형식)
	MemberID      uint            `gorm:"not null;index" json:"member_id"`                        // 회원 ID
	TemplateName  string          `json:"template_name"`                                          // 사용한 양식 이름
	OrderDate     time.Time       `gorm:"not null" json:"order_date"`                             // 주문일
	FittingDate   *time.Time      `json:"fitting_date,omitempty"`                                 // 가봉일
	DeliveryDate  *time.Time      `json:"delivery_date,omitempty"`                                // 납품일
	Amount        int64           `json:"amount"`                                                 // 주문금액
	Deposit       int64           `json:"deposit"`                                                // 선금
	Balance       int64           `json:"balance"`                                                // 잔금
	FabricCode    string          `json:"fabric_code"`                                            // 원단코드 (A0-001 등)
	FabricNote    string          `gorm:"type:text" json:"fabric_note"`                           // 원단/색상/메모
	OrderDetail   string          `gorm:"type:text" json:"order_detail"`                          // 주문내역 (작업 지시 내용)
	Status        WorkOrderStatus `gorm:"type:varchar(20);default:'in_progress'" json:"status"`   // 상태
	PayloadJSON   string          `gorm:"type:text" json:"-"`                                     // 양식에 찍힌 전체 필드 스냅샷
	FilledPDFPath string          `json:"filled_pdf_path"`                                        // 생성된 양식 PDF 로컬 경로
	FilledPDFURL  string          `json:"filled_pdf_url,omitempty"`                               // S3 업로드 URL (설정 시)
	CreatedAt     time.Time       `json:"created_at"`                                             // 등록 시각
	UpdatedAt     time.Time       `json:"updated_at"`                                             // 수정 시각
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`                                         // 삭제 시각(소프트 삭제)

	Member Member `gorm:"foreignKey:MemberID" json:"member,omitempty"` // 회원 정보
}

func (WorkOrder) TableName() string {
	return "work_orders"
}
