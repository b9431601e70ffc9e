package model

import (
	"time"

	"gorm.io/gorm"
)

type Consultation struct {
	ID           uint           `gorm:"primarykey" json:"id"`                   // 상담 ID
	ConsultNo    string         `gorm:"uniqueIndex;not null" json:"consult_no"` // 상담번호 (C20250107-0001 형식)
	MemberID     uint           `gorm:"not null;index" json:"member_id"`        // 회원 ID
	ConsultDate  time.Time      `gorm:"not null" json:"consult_date"`           // 상담일
	VisitPurpose string         `json:"visit_purpose"`                          // 방문목적
	Referrer     string         `json:"referrer"`                               // 소개인
	SpecialNotes string         `gorm:"type:text" json:"special_notes"`         // 고객특이사항
	Note         string         `gorm:"type:text" json:"note"`                  // 상담메모
	CreatedAt    time.Time      `json:"created_at"`                             // 등록 시각
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                         // 삭제 시각(소프트 삭제)

	Member Member `gorm:"foreignKey:MemberID" json:"-"` // 회원 정보
}

func (Consultation) TableName() string {
	return "consultations"
}
