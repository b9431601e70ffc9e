package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/elburim/elburim-backend/internal/app/service"
	"github.com/elburim/elburim-backend/pkg/logger"
)

// ReportScheduler 분석 리포트 자동 생성 스케줄러
type ReportScheduler struct {
	cron          *cron.Cron
	reportService service.ReportService
	targetYear    int
}

// NewReportScheduler 리포트 스케줄러 생성
func NewReportScheduler(reportService service.ReportService, targetYear int) *ReportScheduler {
	return &ReportScheduler{
		cron:          cron.New(),
		reportService: reportService,
		targetYear:    targetYear,
	}
}

// Start 스케줄러 시작
func (s *ReportScheduler) Start() error {
	// 매일 새벽 2시에 생산/CRM/재고 리포트 갱신 (KST 기준)
	// cron 표현식: "0 2 * * *" = 매일 2시 0분
	_, err := s.cron.AddFunc("0 2 * * *", func() {
		logger.Info("Starting scheduled report generation", map[string]interface{}{
			"year": s.targetYear,
		})

		if _, err := s.reportService.GenerateProduction(s.targetYear); err != nil {
			logger.Error("Failed to generate production report from scheduler", err)
		}
		if _, err := s.reportService.GenerateCRM(s.targetYear); err != nil {
			logger.Error("Failed to generate CRM report from scheduler", err)
		}
		if _, err := s.reportService.GenerateStock(); err != nil {
			logger.Error("Failed to generate stock report from scheduler", err)
		}

		logger.Info("Finished scheduled report generation", nil)
	})

	if err != nil {
		logger.Error("Failed to add cron job for report generation", err)
		return err
	}

	s.cron.Start()
	logger.Info("Report scheduler started successfully (daily at 2:00 AM)", nil)

	return nil
}

// Stop 스케줄러 중지
func (s *ReportScheduler) Stop() {
	logger.Info("Stopping report scheduler...", nil)
	s.cron.Stop()
	logger.Info("Report scheduler stopped", nil)
}
