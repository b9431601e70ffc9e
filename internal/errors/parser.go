package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환
// 보안상 민감한 정보는 숨기되, 사용자가 문제를 해결할 수 있는 정보 제공
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM 기본 에러
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. PostgreSQL 에러 파싱

	// 2-1. Unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// 2-2. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStr)
	}

	// 2-3. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "필수 항목이 누락되었습니다",
		}
	}

	// 3. 네트워크/연결 에러
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "데이터베이스 연결에 실패했습니다. 잠시 후 다시 시도해주세요",
		}
	}

	// 4. 기본 내부 서버 오류
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

// parseDuplicateKeyError Unique constraint 위반 에러 파싱
func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// 회원 전화번호 중복
	if strings.Contains(errLower, "phone") || strings.Contains(errLower, "idx_members_phone") {
		return ErrorInfo{
			Code:    MemberPhoneExists,
			Message: "이미 등록된 전화번호입니다",
		}
	}

	// 회원번호 중복
	if strings.Contains(errLower, "member_no") || strings.Contains(errLower, "idx_members_member_no") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "이미 사용 중인 회원번호입니다",
		}
	}

	// 자재 코드 중복
	if strings.Contains(errLower, "stock_no") || strings.Contains(errLower, "idx_stock_items_stock_no") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "이미 등록된 자재 코드입니다",
		}
	}

	// 납품 주문번호 중복
	if strings.Contains(errLower, "order_no") || strings.Contains(errLower, "idx_delivery_orders_order_no") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "이미 존재하는 주문번호입니다",
		}
	}

	// 기본 중복 메시지
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "이미 존재하는 데이터입니다",
	}
}

// parseForeignKeyError Foreign key constraint 위반 에러 파싱
func parseForeignKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// 삭제 시 참조 중인 데이터가 있는 경우
	if strings.Contains(errLower, "still referenced") || strings.Contains(errLower, "is still referenced by") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "연결된 데이터가 있어 삭제할 수 없습니다",
		}
	}

	if strings.Contains(errLower, "member_id") || strings.Contains(errLower, "fk_members") {
		return ErrorInfo{
			Code:    MemberNotFound,
			Message: "존재하지 않는 회원입니다",
		}
	}
	if strings.Contains(errLower, "stock_item_id") || strings.Contains(errLower, "fk_stock_items") {
		return ErrorInfo{
			Code:    StockItemNotFound,
			Message: "존재하지 않는 자재입니다",
		}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "참조하는 데이터를 찾을 수 없습니다",
	}
}

// getNotFoundMessage context에 따른 Not Found 메시지
func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "member") || strings.Contains(contextLower, "회원") {
		return "회원을 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "consult") || strings.Contains(contextLower, "상담") {
		return "상담 기록을 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "measure") || strings.Contains(contextLower, "치수") {
		return "치수 기록을 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "order") || strings.Contains(contextLower, "주문") {
		return "주문을 찾을 수 없습니다"
	}
	if strings.Contains(contextLower, "stock") || strings.Contains(contextLower, "재고") || strings.Contains(contextLower, "자재") {
		return "자재를 찾을 수 없습니다"
	}

	return "요청한 데이터를 찾을 수 없습니다"
}

// getDefaultErrorMessage context에 따른 기본 에러 메시지
func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") || strings.Contains(contextLower, "생성") || strings.Contains(contextLower, "등록") {
		return "등록 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
	if strings.Contains(contextLower, "update") || strings.Contains(contextLower, "수정") {
		return "수정 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
	if strings.Contains(contextLower, "delete") || strings.Contains(contextLower, "삭제") {
		return "삭제 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
	if strings.Contains(contextLower, "transform") || strings.Contains(contextLower, "변환") {
		return "달력 변환 중 오류가 발생했습니다. 파일을 확인해주세요"
	}

	return "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
}
