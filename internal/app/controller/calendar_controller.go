package controller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elburim/elburim-backend/internal/app/service"
	"github.com/elburim/elburim-backend/internal/calendar"
	apperrors "github.com/elburim/elburim-backend/internal/errors"
)

// CalendarController 납품달력 변환 컨트롤러
type CalendarController struct {
	service     service.CalendarService
	defaultYear int
}

// NewCalendarController 납품달력 컨트롤러 생성자
func NewCalendarController(service service.CalendarService, defaultYear int) *CalendarController {
	return &CalendarController{service: service, defaultYear: defaultYear}
}

func (c *CalendarController) yearParam(ctx *gin.Context) int {
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			return year
		}
	}
	return c.defaultYear
}

// TransformCalendar 납품달력 xlsx 업로드 + 변환
// POST /api/v1/calendar/transform?year=2025  (multipart: file)
func (c *CalendarController) TransformCalendar(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationRequired, "납품달력 파일이 필요합니다")
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".xlsx") {
		apperrors.BadRequest(ctx, apperrors.UploadInvalidFileType, "xlsx 파일만 업로드할 수 있습니다")
		return
	}

	tmpDir, err := os.MkdirTemp("", "delivery-cal-*")
	if err != nil {
		apperrors.InternalError(ctx, "업로드 파일 처리 중 오류가 발생했습니다")
		return
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(file.Filename))
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		apperrors.InternalError(ctx, "업로드 파일 저장 중 오류가 발생했습니다")
		return
	}

	summary, err := c.service.TransformFile(tmpPath, c.yearParam(ctx))
	if err != nil {
		if errors.Is(err, calendar.ErrHeaderNotFound) {
			apperrors.UnprocessableEntity(ctx, apperrors.CalendarHeaderNotFound, "달력에서 월/일 헤더를 찾을 수 없습니다")
			return
		}
		apperrors.UnprocessableEntity(ctx, apperrors.CalendarInvalidFile, "달력 파일을 변환할 수 없습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetDeliveryOrders 변환된 납품 주문 조회
// GET /api/v1/calendar/orders?year=2025
func (c *CalendarController) GetDeliveryOrders(ctx *gin.Context) {
	year := c.yearParam(ctx)

	orders, err := c.service.GetOrders(year)
	if err != nil {
		apperrors.InternalError(ctx, "납품 주문 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"year":   year,
		"orders": orders,
		"total":  len(orders),
	})
}

// GetDeliveryOrder 주문번호로 납품 주문 조회
// GET /api/v1/calendar/orders/:orderNo
func (c *CalendarController) GetDeliveryOrder(ctx *gin.Context) {
	order, err := c.service.GetOrder(ctx.Param("orderNo"))
	if err != nil {
		if errors.Is(err, service.ErrDeliveryOrderNotFound) {
			apperrors.NotFound(ctx, apperrors.CalendarOrderNotFound, "납품 주문을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "납품 주문 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// GetUnresolvedEntries 미해결 엔트리 조회 (진단용)
// GET /api/v1/calendar/unresolved?year=2025
func (c *CalendarController) GetUnresolvedEntries(ctx *gin.Context) {
	year := c.yearParam(ctx)

	entries, err := c.service.GetUnresolved(year)
	if err != nil {
		apperrors.InternalError(ctx, "미해결 엔트리 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"year":    year,
		"entries": entries,
		"total":   len(entries),
	})
}

// GetOrderFabricUsage 납품 주문의 원단 소요량 조회
// GET /api/v1/calendar/orders/:orderNo/fabric-usage
func (c *CalendarController) GetOrderFabricUsage(ctx *gin.Context) {
	usage, err := c.service.GetOrderFabricUsage(ctx.Param("orderNo"))
	if err != nil {
		if errors.Is(err, service.ErrDeliveryOrderNotFound) {
			apperrors.NotFound(ctx, apperrors.CalendarOrderNotFound, "납품 주문을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "원단 소요량 계산 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"fabric_usage": usage})
}
