package calendar

import (
	"github.com/elburim/elburim-backend/pkg/logger"
)

// Result 납품달력 변환 한 번의 전체 산출물
type Result struct {
	HeaderRow  int             // 요일 헤더 행 인덱스
	Columns    []WeekdayColumn // 요일 열 배치
	Entries    []AssignedEntry // 모든 플랫 엔트리 (미해결 포함, 코드·날짜순)
	Orders     []OrderRow      // 주문번호당 한 행
	Unresolved []AssignedEntry // 주문번호를 받지 못한 엔트리 (달력 수정용 진단)
	Collisions []CodeCollision // 명시/대체 코드 충돌 보고
}

// Transform 납품달력 그리드를 주문 테이블로 변환한다.
//
// 흐름은 한 방향이다: 요일 헤더 탐색 → 날짜 블록 분할 → 셀 단위 엔트리
// 추출 → 코드/주문번호 부여 → 주문 테이블 접기. 그리드는 읽기만 하고
// I/O는 전혀 없어, 같은 입력이면 항상 같은 결과가 나온다.
func Transform(g *Grid, year int) (*Result, error) {
	headerRow, cols, err := ScanHeader(g)
	if err != nil {
		return nil, err
	}

	blocks := SplitBlocks(g, headerRow, cols)

	var flat []FlatEntry
	for _, b := range blocks {
		flat = append(flat, ExtractEntries(g, b, cols, year)...)
	}

	entries, collisions := AssignOrderIDs(flat)
	orders := BuildOrderTable(entries)

	var unresolved []AssignedEntry
	for _, e := range entries {
		if e.Unresolved {
			unresolved = append(unresolved, e)
		}
	}

	logger.Info("Delivery calendar transformed", map[string]interface{}{
		"year":         year,
		"weekday_cols": len(cols),
		"blocks":       len(blocks),
		"entries":      len(entries),
		"orders":       len(orders),
		"unresolved":   len(unresolved),
		"collisions":   len(collisions),
	})

	return &Result{
		HeaderRow:  headerRow,
		Columns:    cols,
		Entries:    entries,
		Orders:     orders,
		Unresolved: unresolved,
		Collisions: collisions,
	}, nil
}
