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

// WorkOrderController 주문서 컨트롤러
type WorkOrderController struct {
	service service.WorkOrderService
}

// NewWorkOrderController 주문서 컨트롤러 생성자
func NewWorkOrderController(service service.WorkOrderService) *WorkOrderController {
	return &WorkOrderController{service: service}
}

// CreateWorkOrder 주문서 등록 (양식 PDF 자동 생성)
// POST /api/v1/work-orders
func (c *WorkOrderController) CreateWorkOrder(ctx *gin.Context) {
	var req service.CreateWorkOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	order, err := c.service.CreateWorkOrder(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "주문서 등록 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"work_order": order})
}

// GetWorkOrder 주문서 조회
// GET /api/v1/work-orders/:id
func (c *WorkOrderController) GetWorkOrder(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 주문서 ID입니다")
		return
	}

	order, err := c.service.GetWorkOrder(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrWorkOrderNotFound) {
			apperrors.NotFound(ctx, apperrors.OrderNotFound, "주문서를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "주문서 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"work_order": order})
}

// ListWorkOrders 주문서 목록 조회
// GET /api/v1/work-orders?status=in_progress&page=1&page_size=20
func (c *WorkOrderController) ListWorkOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	var status *model.WorkOrderStatus
	if statusStr := ctx.Query("status"); statusStr != "" {
		s := model.WorkOrderStatus(statusStr)
		status = &s
	}

	orders, total, err := c.service.ListWorkOrders(status, page, pageSize)
	if err != nil {
		apperrors.InternalError(ctx, "주문서 목록 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"work_orders": orders,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
	})
}

// GetMemberWorkOrders 회원의 주문서 목록 조회
// GET /api/v1/members/:id/work-orders
func (c *WorkOrderController) GetMemberWorkOrders(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 회원 ID입니다")
		return
	}

	orders, err := c.service.GetMemberWorkOrders(uint(memberID))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "주문서 목록 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"work_orders": orders})
}

// UpdateStatusRequest 상태 변경 요청
type UpdateStatusRequest struct {
	Status model.WorkOrderStatus `json:"status" binding:"required"`
}

// UpdateWorkOrderStatus 주문서 상태 변경
// PATCH /api/v1/work-orders/:id/status
func (c *WorkOrderController) UpdateWorkOrderStatus(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 주문서 ID입니다")
		return
	}

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	order, err := c.service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkOrderNotFound):
			apperrors.NotFound(ctx, apperrors.OrderNotFound, "주문서를 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidWorkOrderStatus):
			apperrors.BadRequest(ctx, apperrors.OrderInvalidStatus, "잘못된 주문서 상태입니다")
		default:
			apperrors.InternalError(ctx, "상태 변경 중 오류가 발생했습니다")
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"work_order": order})
}

// DeleteWorkOrder 주문서 삭제
// DELETE /api/v1/work-orders/:id
func (c *WorkOrderController) DeleteWorkOrder(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 주문서 ID입니다")
		return
	}

	if err := c.service.DeleteWorkOrder(uint(id)); err != nil {
		if errors.Is(err, service.ErrWorkOrderNotFound) {
			apperrors.NotFound(ctx, apperrors.OrderNotFound, "주문서를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "주문서 삭제 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "주문서가 삭제되었습니다"})
}
