package model

import (
	"time"

	"gorm.io/gorm"
)

// Measurement 현장에서 inch로 입력받고 cm 환산값을 함께 저장한다
type Measurement struct {
	ID          uint           `gorm:"primarykey" json:"id"`            // 치수 ID
	MemberID    uint           `gorm:"not null;index" json:"member_id"` // 회원 ID
	MeasureDate time.Time      `gorm:"not null" json:"measure_date"`    // 측정일
	ShoulderIn  float64        `json:"shoulder_in"`                     // 어깨 (inch)
	ShoulderCm  float64        `json:"shoulder_cm"`                     // 어깨 (cm)
	ChestIn     float64        `json:"chest_in"`                        // 가슴 (inch)
	ChestCm     float64        `json:"chest_cm"`                        // 가슴 (cm)
	WaistIn     float64        `json:"waist_in"`                        // 허리 (inch)
	WaistCm     float64        `json:"waist_cm"`                        // 허리 (cm)
	HipIn       float64        `json:"hip_in"`                          // 엉덩이 (inch)
	HipCm       float64        `json:"hip_cm"`                          // 엉덩이 (cm)
	SleeveIn    float64        `json:"sleeve_in"`                       // 소매 (inch)
	SleeveCm    float64        `json:"sleeve_cm"`                       // 소매 (cm)
	LengthIn    float64        `json:"length_in"`                       // 총장 (inch)
	LengthCm    float64        `json:"length_cm"`                       // 총장 (cm)
	TopSize     string         `json:"top_size"`                        // 추천 상의호칭 (K50 등, 규칙 없으면 "")
	CreatedAt   time.Time      `json:"created_at"`                      // 등록 시각
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                  // 삭제 시각(소프트 삭제)

	Member Member `gorm:"foreignKey:MemberID" json:"-"` // 회원 정보
}

func (Measurement) TableName() string {
	return "measurements"
}
