package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elburim/elburim-backend/internal/app/service"
	apperrors "github.com/elburim/elburim-backend/internal/errors"
)

// SettingsController 상의호칭 규칙/양식 좌표 설정 컨트롤러
type SettingsController struct {
	service service.SettingsService
}

// NewSettingsController 설정 컨트롤러 생성자
func NewSettingsController(service service.SettingsService) *SettingsController {
	return &SettingsController{service: service}
}

// GetSizeRules 호칭 규칙 조회
// GET /api/v1/settings/size-rules
func (c *SettingsController) GetSizeRules(ctx *gin.Context) {
	rules, err := c.service.GetSizeRules()
	if err != nil {
		apperrors.InternalError(ctx, "호칭 규칙 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"size_rules": rules})
}

// ReplaceSizeRulesRequest 호칭 규칙 교체 요청
type ReplaceSizeRulesRequest struct {
	Rules []service.SizeRuleInput `json:"rules" binding:"required"`
}

// ReplaceSizeRules 호칭 규칙 전체 교체
// PUT /api/v1/settings/size-rules
func (c *SettingsController) ReplaceSizeRules(ctx *gin.Context) {
	var req ReplaceSizeRulesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	rules, err := c.service.ReplaceSizeRules(req.Rules)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSizeRule) {
			apperrors.BadRequest(ctx, apperrors.ValidationInvalidRange, "호칭 규칙의 가슴둘레 구간이 올바르지 않습니다")
			return
		}
		apperrors.InternalError(ctx, "호칭 규칙 저장 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"size_rules": rules})
}

// GetFormFields 양식 좌표 조회
// GET /api/v1/settings/form-fields
func (c *SettingsController) GetFormFields(ctx *gin.Context) {
	fields, err := c.service.GetFormFields()
	if err != nil {
		apperrors.InternalError(ctx, "양식 좌표 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"form_fields": fields})
}

// UpdateFormField 양식 좌표 저장
// PUT /api/v1/settings/form-fields
func (c *SettingsController) UpdateFormField(ctx *gin.Context) {
	var req service.FormFieldInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	field, err := c.service.UpdateFormField(&req)
	if err != nil {
		apperrors.InternalError(ctx, "양식 좌표 저장 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"form_field": field})
}
