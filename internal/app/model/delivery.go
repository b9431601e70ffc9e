package model

import (
	"time"
)

// DeliveryEntry 납품달력 셀 하나에서 나온 플랫 엔트리.
// 변환 결과를 그대로 보존하며, 미해결 엔트리도 진단용으로 남긴다.
type DeliveryEntry struct {
	ID           uint       `gorm:"primarykey" json:"id"`           // 엔트리 ID
	Year         int        `gorm:"not null;index" json:"year"`     // 변환 기준 연도
	OrderNo      string     `gorm:"index" json:"order_no"`          // 주문번호 (미해결이면 "")
	CustomerName string     `gorm:"not null" json:"customer_name"`  // 달력에 적힌 고객 이름
	CustomerCode int        `gorm:"index" json:"customer_code"`     // 해결된 고객 코드
	ExplicitCode string     `json:"explicit_code"`                  // 괄호 안 명시 코드 원문 ("" = 없음)
	Sequence     int        `json:"sequence"`                       // (코드, 연도) 내 순번
	OrderDate    *time.Time `json:"order_date,omitempty"`           // 해결된 납품일 (미해결이면 null)
	Weekday      string     `json:"weekday"`                        // 요일 토큰
	Month        *int       `json:"month,omitempty"`                // 블록의 월
	Day          *int       `json:"day,omitempty"`                  // 요일 열의 일
	Note1        string     `json:"note1"`                          // 품목 메모 1
	Note2        string     `json:"note2"`                          // 품목 메모 2
	Note3        string     `json:"note3"`                          // 품목 메모 3
	SrcRow       int        `json:"src_row"`                        // 원본 시트 행 (추적용)
	SrcCol       int        `json:"src_col"`                        // 원본 시트 열 (추적용)
	Unresolved   bool       `gorm:"index" json:"unresolved"`        // 주문번호 미부여 여부
	Reason       string     `json:"reason,omitempty"`               // 미해결 사유
	CreatedAt    time.Time  `json:"created_at"`                     // 변환 시각
}

func (DeliveryEntry) TableName() string {
	return "delivery_entries"
}

// DeliveryOrder 주문번호당 한 행으로 접힌 납품 주문
type DeliveryOrder struct {
	ID           uint      `gorm:"primarykey" json:"id"`                 // 납품 주문 ID
	OrderNo      string    `gorm:"uniqueIndex;not null" json:"order_no"` // 주문번호 ({연도}-{코드:04d}-{순번:02d})
	Year         int       `gorm:"not null;index" json:"year"`           // 연도
	OrderDate    time.Time `gorm:"not null;index" json:"order_date"`     // 납품일
	CustomerName string    `gorm:"not null" json:"customer_name"`        // 고객 이름
	CustomerCode int       `gorm:"not null;index" json:"customer_code"`  // 고객 코드
	Items        string    `json:"items"`                                // 품목 메모 (", " 연결, 예: "상2, 하1")
	Weekday      string    `json:"weekday"`                              // 요일 토큰
	Month        int       `json:"month"`                                // 월
	Day          int       `json:"day"`                                  // 일
	CreatedAt    time.Time `json:"created_at"`                           // 변환 시각
}

func (DeliveryOrder) TableName() string {
	return "delivery_orders"
}
