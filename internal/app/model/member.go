package model

import (
	"time"

	"gorm.io/gorm"
)

type MemberStatus string // 회원 등록 상태

const (
	MemberStatusActive MemberStatus = "active" // 정상
	MemberStatusHold   MemberStatus = "hold"   // 등록보류
)

type Member struct {
	ID         uint           `gorm:"primarykey" json:"id"`                            // 회원 ID
	MemberNo   string         `gorm:"uniqueIndex;not null" json:"member_no"`           // 회원번호 (M0001 형식)
	Name       string         `gorm:"not null;index" json:"name"`                      // 이름
	BirthDate  string         `json:"birth_date"`                                      // 생년월일 (YYYY-MM-DD)
	Phone      string         `gorm:"index" json:"phone"`                              // 전화번호 (010-0000-0000)
	Address    string         `json:"address"`                                         // 주소
	Job        string         `json:"job"`                                             // 직업
	FirstVisit time.Time      `json:"first_visit"`                                     // 첫방문일
	Note       string         `gorm:"type:text" json:"note"`                           // 메모/특이사항
	Status     MemberStatus   `gorm:"type:varchar(20);default:'active'" json:"status"` // 등록상태
	CreatedAt  time.Time      `json:"created_at"`                                      // 생성 시각
	UpdatedAt  time.Time      `json:"updated_at"`                                      // 수정 시각
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                  // 삭제 시각(소프트 삭제)

	Consultations []Consultation `gorm:"foreignKey:MemberID" json:"consultations,omitempty"` // 상담 이력
	Measurements  []Measurement  `gorm:"foreignKey:MemberID" json:"measurements,omitempty"`  // 치수 이력
	WorkOrders    []WorkOrder    `gorm:"foreignKey:MemberID" json:"work_orders,omitempty"`   // 주문서 목록
}

func (Member) TableName() string {
	return "members"
}
