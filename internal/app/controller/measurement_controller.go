package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elburim/elburim-backend/internal/app/service"
	apperrors "github.com/elburim/elburim-backend/internal/errors"
)

// MeasurementController 치수 컨트롤러
type MeasurementController struct {
	service service.MeasurementService
}

// NewMeasurementController 치수 컨트롤러 생성자
func NewMeasurementController(service service.MeasurementService) *MeasurementController {
	return &MeasurementController{service: service}
}

// CreateMeasurement 치수 등록 (inch 분수 표기 입력)
// POST /api/v1/measurements
func (c *MeasurementController) CreateMeasurement(ctx *gin.Context) {
	var req service.CreateMeasurementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	measurement, err := c.service.CreateMeasurement(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidMeasureValue):
			apperrors.UnprocessableEntity(ctx, apperrors.MeasureInvalidValue, "치수 표기를 해석할 수 없습니다: "+err.Error())
		default:
			apperrors.InternalError(ctx, "치수 등록 중 오류가 발생했습니다")
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"measurement": measurement})
}

// GetMemberMeasurements 회원의 치수 이력 조회
// GET /api/v1/members/:id/measurements
func (c *MeasurementController) GetMemberMeasurements(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 회원 ID입니다")
		return
	}

	measurements, err := c.service.GetMemberMeasurements(uint(memberID))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "치수 이력 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"measurements": measurements})
}

// GetLatestMeasurement 회원의 최신 치수 조회
// GET /api/v1/members/:id/measurements/latest
func (c *MeasurementController) GetLatestMeasurement(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 회원 ID입니다")
		return
	}

	measurement, err := c.service.GetLatestMeasurement(uint(memberID))
	if err != nil {
		if errors.Is(err, service.ErrMeasurementNotFound) {
			apperrors.NotFound(ctx, apperrors.MeasureNotFound, "치수 기록이 없습니다")
			return
		}
		apperrors.InternalError(ctx, "치수 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"measurement": measurement})
}

// DeleteMeasurement 치수 기록 삭제
// DELETE /api/v1/measurements/:id
func (c *MeasurementController) DeleteMeasurement(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 치수 ID입니다")
		return
	}

	if err := c.service.DeleteMeasurement(uint(id)); err != nil {
		if errors.Is(err, service.ErrMeasurementNotFound) {
			apperrors.NotFound(ctx, apperrors.MeasureNotFound, "치수 기록을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "치수 삭제 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "치수 기록이 삭제되었습니다"})
}
