package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // 잘못된 ID
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"  // 범위 초과
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 회원 (MEMBER_) ====================
	MemberNotFound    = "MEMBER_NOT_FOUND"     // 회원 없음
	MemberPhoneExists = "MEMBER_PHONE_EXISTS"  // 전화번호 중복
	MemberInvalidID   = "MEMBER_INVALID_ID"    // 회원번호 형식 오류 (M0001)

	// ==================== 상담 (CONSULT_) ====================
	ConsultNotFound = "CONSULT_NOT_FOUND" // 상담 기록 없음

	// ==================== 치수 (MEASURE_) ====================
	MeasureNotFound      = "MEASURE_NOT_FOUND"       // 치수 기록 없음
	MeasureInvalidValue  = "MEASURE_INVALID_VALUE"   // 치수 표기 해석 불가
	MeasureNoSizeRule    = "MEASURE_NO_SIZE_RULE"    // 맞는 호칭 규칙 없음

	// ==================== 주문서 (ORDER_) ====================
	OrderNotFound       = "ORDER_NOT_FOUND"        // 주문서 없음
	OrderFormGenFailed  = "ORDER_FORM_GEN_FAILED"  // 양식 PDF 생성 실패
	OrderInvalidStatus  = "ORDER_INVALID_STATUS"   // 잘못된 상태값

	// ==================== 납품달력 (CALENDAR_) ====================
	CalendarHeaderNotFound = "CALENDAR_HEADER_NOT_FOUND" // "월/일" 헤더 없음
	CalendarInvalidFile    = "CALENDAR_INVALID_FILE"     // xlsx 파일 읽기 실패
	CalendarOrderNotFound  = "CALENDAR_ORDER_NOT_FOUND"  // 변환된 주문 없음

	// ==================== 재고 (STOCK_) ====================
	StockItemNotFound     = "STOCK_ITEM_NOT_FOUND"     // 자재 없음
	StockNoFabric         = "STOCK_NO_FABRIC"          // 원단 자재 미등록
	StockNoUsage          = "STOCK_NO_USAGE"           // 원단 소요량 계산 불가
	StockInvalidMovement  = "STOCK_INVALID_MOVEMENT"   // 잘못된 입출고 기록

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadFailed          = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== 리포트 (REPORT_) ====================
	ReportGenFailed = "REPORT_GEN_FAILED" // 리포트 생성 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalConfigError   = "INTERNAL_CONFIG_ERROR"   // 설정 오류
)
