package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elburim/elburim-backend/internal/app/service"
	apperrors "github.com/elburim/elburim-backend/internal/errors"
)

// ConsultationController 상담 이력 컨트롤러
type ConsultationController struct {
	service service.ConsultationService
}

// NewConsultationController 상담 컨트롤러 생성자
func NewConsultationController(service service.ConsultationService) *ConsultationController {
	return &ConsultationController{service: service}
}

// CreateConsultation 상담 기록 등록
// POST /api/v1/consultations
func (c *ConsultationController) CreateConsultation(ctx *gin.Context) {
	var req service.CreateConsultationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	consultation, err := c.service.CreateConsultation(&req)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "상담 등록 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"consultation": consultation})
}

// GetMemberConsultations 회원의 상담 이력 조회
// GET /api/v1/members/:id/consultations
func (c *ConsultationController) GetMemberConsultations(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 회원 ID입니다")
		return
	}

	consultations, err := c.service.GetMemberConsultations(uint(memberID))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "상담 이력 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"consultations": consultations})
}

// UpdateConsultation 상담 기록 수정
// PUT /api/v1/consultations/:id
func (c *ConsultationController) UpdateConsultation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 상담 ID입니다")
		return
	}

	var req service.UpdateConsultationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	consultation, err := c.service.UpdateConsultation(uint(id), &req)
	if err != nil {
		if errors.Is(err, service.ErrConsultationNotFound) {
			apperrors.NotFound(ctx, apperrors.ConsultNotFound, "상담 기록을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "상담 수정 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"consultation": consultation})
}

// DeleteConsultation 상담 기록 삭제
// DELETE /api/v1/consultations/:id
func (c *ConsultationController) DeleteConsultation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 상담 ID입니다")
		return
	}

	if err := c.service.DeleteConsultation(uint(id)); err != nil {
		if errors.Is(err, service.ErrConsultationNotFound) {
			apperrors.NotFound(ctx, apperrors.ConsultNotFound, "상담 기록을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "상담 삭제 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "상담 기록이 삭제되었습니다"})
}
