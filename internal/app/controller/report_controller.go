package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/service"
	apperrors "github.com/elburim/elburim-backend/internal/errors"
)

// ReportController 분석 리포트 컨트롤러
type ReportController struct {
	service     service.ReportService
	defaultYear int
}

// NewReportController 리포트 컨트롤러 생성자
func NewReportController(service service.ReportService, defaultYear int) *ReportController {
	return &ReportController{service: service, defaultYear: defaultYear}
}

func (c *ReportController) yearParam(ctx *gin.Context) int {
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			return year
		}
	}
	return c.defaultYear
}

// GenerateProductionReport 생산/주문 분석 리포트 생성
// POST /api/v1/reports/production?year=2025
func (c *ReportController) GenerateProductionReport(ctx *gin.Context) {
	run, err := c.service.GenerateProduction(c.yearParam(ctx))
	if err != nil {
		apperrors.RespondWithError(ctx, http.StatusInternalServerError, apperrors.ReportGenFailed, "생산 분석 리포트 생성에 실패했습니다")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"report": run})
}

// GenerateCRMReport CRM 기본 분석 리포트 생성
// POST /api/v1/reports/crm?year=2025
func (c *ReportController) GenerateCRMReport(ctx *gin.Context) {
	run, err := c.service.GenerateCRM(c.yearParam(ctx))
	if err != nil {
		apperrors.RespondWithError(ctx, http.StatusInternalServerError, apperrors.ReportGenFailed, "CRM 분석 리포트 생성에 실패했습니다")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"report": run})
}

// GenerateStockReport 재고 분석 리포트 생성
// POST /api/v1/reports/stock
func (c *ReportController) GenerateStockReport(ctx *gin.Context) {
	run, err := c.service.GenerateStock()
	if err != nil {
		apperrors.RespondWithError(ctx, http.StatusInternalServerError, apperrors.ReportGenFailed, "재고 분석 리포트 생성에 실패했습니다")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"report": run})
}

// ListReportRuns 리포트 실행 이력 조회
// GET /api/v1/reports?kind=production&limit=20
func (c *ReportController) ListReportRuns(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	var kind *model.ReportKind
	if kindStr := ctx.Query("kind"); kindStr != "" {
		k := model.ReportKind(kindStr)
		kind = &k
	}

	runs, err := c.service.ListRuns(kind, limit)
	if err != nil {
		apperrors.InternalError(ctx, "리포트 이력 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"reports": runs})
}
