package model

import (
	"time"

	"github.com/lib/pq"
)

type ReportKind string // 리포트 종류

const (
	ReportProduction ReportKind = "production" // 생산/주문 분석
	ReportCRM        ReportKind = "crm"        // CRM 기본 분석
	ReportStock      ReportKind = "stock"      // 재고 분석
)

// ReportRun 리포트 생성 이력. 스케줄러/수동 실행 모두 여기 남는다.
type ReportRun struct {
	ID        uint           `gorm:"primarykey" json:"id"`                  // 실행 ID
	Kind      ReportKind     `gorm:"type:varchar(20);not null" json:"kind"` // 리포트 종류
	Year      int            `gorm:"not null" json:"year"`                  // 대상 연도
	FilePath  string         `gorm:"not null" json:"file_path"`             // 생성된 xlsx 경로
	Sheets    pq.StringArray `gorm:"type:text[]" json:"sheets"`             // 워크북에 담긴 시트 이름들
	CreatedAt time.Time      `json:"created_at"`                            // 생성 시각
}

func (ReportRun) TableName() string {
	return "report_runs"
}
