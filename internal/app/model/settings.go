package model

import (
	"time"
)

// SizeRule 가슴둘레(cm) 구간 → 상의호칭 추천 규칙
type SizeRule struct {
	ID         uint      `gorm:"primarykey" json:"id"`          // 규칙 ID
	ChestMinCm float64   `gorm:"not null" json:"chest_min_cm"`  // 가슴 cm 하한
	ChestMaxCm float64   `gorm:"not null" json:"chest_max_cm"`  // 가슴 cm 상한
	TopSize    string    `gorm:"not null" json:"top_size"`      // 상의호칭 (K48, K50 등)
	CreatedAt  time.Time `json:"created_at"`                    // 등록 시각
	UpdatedAt  time.Time `json:"updated_at"`                    // 수정 시각
}

func (SizeRule) TableName() string {
	return "size_rules"
}

// FormField 고객상담 양식 위에 값을 찍을 좌표.
// x, y는 A4 포인트 기준이라 숫자만 바꾸면 출력 위치를 조정할 수 있다.
type FormField struct {
	ID        uint      `gorm:"primarykey" json:"id"`                  // 필드 ID
	FieldKey  string    `gorm:"uniqueIndex;not null" json:"field_key"` // 필드키 (성명, 주문일 등)
	X         float64   `gorm:"not null" json:"x"`                     // x 좌표 (pt)
	Y         float64   `gorm:"not null" json:"y"`                     // y 좌표 (pt)
	CreatedAt time.Time `json:"created_at"`                            // 등록 시각
	UpdatedAt time.Time `json:"updated_at"`                            // 수정 시각
}

func (FormField) TableName() string {
	return "form_fields"
}
