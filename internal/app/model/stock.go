package model

import (
	"time"

	"gorm.io/gorm"
)

type StockCategory string // 자재 분류
type MovementType string  // 입출고 구분

const (
	CategoryFabric      StockCategory = "fabric"      // 원단
	CategoryLining      StockCategory = "lining"      // 안감
	CategoryInterlining StockCategory = "interlining" // 심지
	CategoryButton      StockCategory = "button"      // 단추
	CategoryZipper      StockCategory = "zipper"      // 지퍼
	CategoryOther       StockCategory = "other"       // 기타 액세서리

	MovementIn  MovementType = "IN"  // 입고
	MovementOut MovementType = "OUT" // 출고
)

type StockItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                     // 자재 ID
	StockNo     string         `gorm:"uniqueIndex;not null" json:"stock_no"`     // 자재 코드 (F001, L002 형식)
	Name        string         `gorm:"not null" json:"name"`                     // 자재명
	Category    StockCategory  `gorm:"type:varchar(20);not null" json:"category"` // 분류
	Unit        string         `gorm:"not null" json:"unit"`                     // 단위 (m / ea)
	CostPerUnit float64        `json:"cost_per_unit"`                            // 단가
	Note        string         `json:"note"`                                     // 비고
	CreatedAt   time.Time      `json:"created_at"`                               // 등록 시각
	UpdatedAt   time.Time      `json:"updated_at"`                               // 수정 시각
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                           // 삭제 시각(소프트 삭제)

	Movements []StockMovement `gorm:"foreignKey:StockItemID" json:"movements,omitempty"` // 입출고 이력
}

func (StockItem) TableName() string {
	return "stock_items"
}

// StockMovement 입출고 한 건. IN은 양수, OUT은 음수 부호를 함께 저장한다.
type StockMovement struct {
	ID             uint         `gorm:"primarykey" json:"id"`                    // 입출고 ID
	StockItemID    uint         `gorm:"not null;index" json:"stock_item_id"`     // 자재 ID
	Date           time.Time    `gorm:"not null;index" json:"date"`              // 일자
	Type           MovementType `gorm:"type:varchar(10);not null" json:"type"`   // IN / OUT
	Quantity       float64      `gorm:"not null" json:"quantity"`                // 수량 (절대값)
	QuantitySigned float64      `gorm:"not null" json:"quantity_signed"`         // 부호 포함 수량 (IN +, OUT -)
	Unit           string       `json:"unit"`                                    // 단위
	RelatedOrderNo string       `gorm:"index" json:"related_order_no,omitempty"` // 연관 납품 주문번호
	Note           string       `json:"note"`                                    // 비고
	CreatedAt      time.Time    `json:"created_at"`                              // 등록 시각

	StockItem StockItem `gorm:"foreignKey:StockItemID" json:"stock_item,omitempty"` // 자재 정보
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
