package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/service"
	apperrors "github.com/elburim/elburim-backend/internal/errors"
)

// StockController 자재/입출고 컨트롤러
type StockController struct {
	service service.StockService
}

// NewStockController 자재 컨트롤러 생성자
func NewStockController(service service.StockService) *StockController {
	return &StockController{service: service}
}

// RegisterItem 자재 등록 (분류/코드 자동 발급)
// POST /api/v1/stock/items
func (c *StockController) RegisterItem(ctx *gin.Context) {
	var req service.RegisterStockItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	item, err := c.service.RegisterItem(&req)
	if err != nil {
		apperrors.InternalError(ctx, "자재 등록 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"item": item})
}

// ListItems 자재 목록 조회
// GET /api/v1/stock/items?category=fabric
func (c *StockController) ListItems(ctx *gin.Context) {
	var category *model.StockCategory
	if categoryStr := ctx.Query("category"); categoryStr != "" {
		cat := model.StockCategory(categoryStr)
		category = &cat
	}

	items, err := c.service.ListItems(category)
	if err != nil {
		apperrors.InternalError(ctx, "자재 목록 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

// GetItemMovements 자재의 입출고 이력 조회
// GET /api/v1/stock/items/:id/movements
func (c *StockController) GetItemMovements(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 자재 ID입니다")
		return
	}

	movements, err := c.service.GetItemMovements(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrStockItemNotFound) {
			apperrors.NotFound(ctx, apperrors.StockItemNotFound, "자재를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "입출고 이력 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"movements": movements})
}

// RecordMovement 입출고 등록
// POST /api/v1/stock/movements
func (c *StockController) RecordMovement(ctx *gin.Context) {
	var req service.RecordMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	movement, err := c.service.RecordMovement(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStockItemNotFound):
			apperrors.NotFound(ctx, apperrors.StockItemNotFound, "자재를 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidQuantity):
			apperrors.BadRequest(ctx, apperrors.StockInvalidMovement, "수량은 0보다 커야 합니다")
		default:
			apperrors.BadRequest(ctx, apperrors.StockInvalidMovement, "입출고 기록을 저장할 수 없습니다")
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"movement": movement})
}

// ListMovements 입출고 전체 이력 조회
// GET /api/v1/stock/movements?page=1&page_size=50
func (c *StockController) ListMovements(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "50"))

	movements, total, err := c.service.ListMovements(page, pageSize)
	if err != nil {
		apperrors.InternalError(ctx, "입출고 이력 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"movements": movements,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetBalances 자재별 잔량 조회
// GET /api/v1/stock/balances
func (c *StockController) GetBalances(ctx *gin.Context) {
	balances, err := c.service.Balances()
	if err != nil {
		apperrors.InternalError(ctx, "재고 잔량 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"balances": balances})
}

// AutoStockOutRequest 자동 출고 요청
type AutoStockOutRequest struct {
	OrderNo string `json:"order_no" binding:"required"`
}

// AutoStockOut 납품 주문 기준 원단 자동 출고
// POST /api/v1/stock/auto-out
func (c *StockController) AutoStockOut(ctx *gin.Context) {
	var req AutoStockOutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	movement, err := c.service.AutoStockOut(req.OrderNo)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDeliveryOrderNotFound):
			apperrors.NotFound(ctx, apperrors.CalendarOrderNotFound, "납품 주문을 찾을 수 없습니다")
		case errors.Is(err, service.ErrNoFabricUsage):
			apperrors.UnprocessableEntity(ctx, apperrors.StockNoUsage, "주문 품목에서 원단 사용량이 계산되지 않습니다")
		case errors.Is(err, service.ErrNoFabricRegistered):
			apperrors.UnprocessableEntity(ctx, apperrors.StockNoFabric, "등록된 원단 자재가 없습니다")
		default:
			apperrors.InternalError(ctx, "자동 출고 처리 중 오류가 발생했습니다")
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"movement": movement})
}
