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

// MemberController 회원 컨트롤러
type MemberController struct {
	service service.MemberService
}

// NewMemberController 회원 컨트롤러 생성자
func NewMemberController(service service.MemberService) *MemberController {
	return &MemberController{service: service}
}

// CreateMember 회원 등록
// POST /api/v1/members
func (c *MemberController) CreateMember(ctx *gin.Context) {
	var req service.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	member, err := c.service.CreateMember(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberPhoneExists):
			apperrors.Conflict(ctx, apperrors.MemberPhoneExists, "이미 등록된 전화번호입니다")
		case errors.Is(err, service.ErrMemberNameEmpty):
			apperrors.BadRequest(ctx, apperrors.ValidationRequired, "회원 이름은 필수입니다")
		default:
			apperrors.InternalError(ctx, "회원 등록 중 오류가 발생했습니다")
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"member": member})
}

// GetMember 회원 상세 조회 (상담/치수/주문서 이력 포함)
// GET /api/v1/members/:id
func (c *MemberController) GetMember(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 회원 ID입니다")
		return
	}

	member, err := c.service.GetMember(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "회원 조회 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"member": member})
}

// SearchMembers 회원 검색
// GET /api/v1/members?keyword=홍&status=active&page=1&page_size=20
func (c *MemberController) SearchMembers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	keyword := ctx.Query("keyword")

	var status *model.MemberStatus
	if statusStr := ctx.Query("status"); statusStr != "" {
		s := model.MemberStatus(statusStr)
		status = &s
	}

	members, total, err := c.service.SearchMembers(keyword, status, page, pageSize)
	if err != nil {
		apperrors.InternalError(ctx, "회원 검색 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"members":   members,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateMember 회원 정보 수정
// PUT /api/v1/members/:id
func (c *MemberController) UpdateMember(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 회원 ID입니다")
		return
	}

	var req service.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	member, err := c.service.UpdateMember(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
		case errors.Is(err, service.ErrMemberPhoneExists):
			apperrors.Conflict(ctx, apperrors.MemberPhoneExists, "이미 등록된 전화번호입니다")
		case errors.Is(err, service.ErrMemberNameEmpty):
			apperrors.BadRequest(ctx, apperrors.ValidationRequired, "회원 이름은 필수입니다")
		default:
			apperrors.InternalError(ctx, "회원 수정 중 오류가 발생했습니다")
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"member": member})
}

// DeleteMember 회원 삭제
// DELETE /api/v1/members/:id
func (c *MemberController) DeleteMember(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 회원 ID입니다")
		return
	}

	if err := c.service.DeleteMember(uint(id)); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(ctx, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(ctx, "회원 삭제 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "회원이 삭제되었습니다"})
}
