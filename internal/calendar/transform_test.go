package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFrom 테스트용 그리드 생성 헬퍼. nil은 빈 셀.
func gridFrom(rows [][]interface{}) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := NewGrid(len(rows), cols)
	for ri, r := range rows {
		for ci, v := range r {
			switch t := v.(type) {
			case nil:
			case int:
				g.Set(ri, ci, IntCell(int64(t)))
			case float64:
				g.Set(ri, ci, FloatCell(t))
			case string:
				g.Set(ri, ci, StringCell(t))
			default:
				panic("unsupported cell type")
			}
		}
	}
	return g
}

// scenarioGrid 스펙 시나리오 A 형태: 헤더 행 인덱스 2, 요일 열 {1:월, 5:화},
// 1월 컨텍스트에서 날짜 헤더 {1:3, 5:4}, 그 아래 이름 셀.
func scenarioGrid(nameCell string) *Grid {
	return gridFrom([][]interface{}{
		{"엘부림 납품달력"},
		{nil},
		{"월/일", "월", nil, nil, nil, "화"},
		{"1월", 3, nil, nil, nil, 4},
		{nil, nameCell, "상2", "하1", nil, nil},
	})
}

func TestScanHeader_FindsWeekdayColumns(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"제목"},
		{"월/일", "일", nil, "월", nil, "화", "수", "목", "금", "토"},
	})

	headerRow, cols, err := ScanHeader(g)
	require.NoError(t, err)
	assert.Equal(t, 1, headerRow)
	require.Len(t, cols, 7)

	seen := map[int]bool{}
	for _, wc := range cols {
		assert.False(t, seen[wc.Col], "column index must be unique")
		seen[wc.Col] = true
		assert.Contains(t, []string{"일", "월", "화", "수", "목", "금", "토"}, wc.Label)
	}
	assert.Equal(t, WeekdayColumn{Col: 1, Label: "일"}, cols[0])
	assert.Equal(t, WeekdayColumn{Col: 3, Label: "월"}, cols[1])
}

func TestScanHeader_HeaderNotFound(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"그냥 텍스트", "월"},
		{nil, 1},
	})

	_, _, err := ScanHeader(g)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestScanHeader_DuplicateWeekdayKeepsFirst(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"월/일", "월", nil, "월", "화"},
	})

	_, cols, err := ScanHeader(g)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, WeekdayColumn{Col: 1, Label: "월"}, cols[0])
	assert.Equal(t, WeekdayColumn{Col: 4, Label: "화"}, cols[1])
}

func TestSplitBlocks_BlocksAreOrderedAndDisjoint(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"월/일", "월", "화"},
		{"1월", 6, 7},
		{nil, "김고객", nil},
		{nil, "박고객", nil},
		{nil, 13, 14},
		{nil, "이고객", nil},
	})

	headerRow, cols, err := ScanHeader(g)
	require.NoError(t, err)

	blocks := SplitBlocks(g, headerRow, cols)
	require.Len(t, blocks, 2)

	// 블록 구간은 겹침도 빈틈도 없어야 한다
	assert.Equal(t, 1, blocks[0].Header.Row)
	assert.Equal(t, 2, blocks[0].BodyStart)
	assert.Equal(t, 4, blocks[0].BodyEnd)
	assert.Equal(t, 4, blocks[1].Header.Row)
	assert.Equal(t, 5, blocks[1].BodyStart)
	assert.Equal(t, 6, blocks[1].BodyEnd)

	require.NotNil(t, blocks[0].Header.Month)
	assert.Equal(t, 1, *blocks[0].Header.Month)
	assert.Equal(t, map[int]int{1: 6, 2: 7}, blocks[0].Header.Days)
}

func TestSplitBlocks_HolidayAnnotationAndMonthCarry(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"월/일", "수"},
		{"1월", "1(신정)"},
		{nil, "김고객"},
		{nil, 8}, // 월 표기 없는 다음 블록 → 1월 유지
		{nil, "박고객"},
		{"엉터리월", 15}, // 1~12 밖이거나 숫자가 아니면 무시
		{nil, "최고객"},
	})

	headerRow, cols, err := ScanHeader(g)
	require.NoError(t, err)

	blocks := SplitBlocks(g, headerRow, cols)
	require.Len(t, blocks, 3)

	assert.Equal(t, map[int]int{1: 1}, blocks[0].Header.Days)
	for _, b := range blocks {
		require.NotNil(t, b.Header.Month)
		assert.Equal(t, 1, *b.Header.Month)
	}
}

func TestSplitBlocks_NoMonthContextYieldsNilMonth(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"월/일", "금"},
		{nil, 3},
		{nil, "김고객"},
	})

	headerRow, cols, err := ScanHeader(g)
	require.NoError(t, err)

	blocks := SplitBlocks(g, headerRow, cols)
	require.Len(t, blocks, 1)
	assert.Nil(t, blocks[0].Header.Month)
}

func TestExtractEntries_ScenarioA_ExplicitCode(t *testing.T) {
	g := scenarioGrid("홍길동(1001)")

	headerRow, cols, err := ScanHeader(g)
	require.NoError(t, err)
	blocks := SplitBlocks(g, headerRow, cols)
	require.Len(t, blocks, 1)

	entries := ExtractEntries(g, blocks[0], cols, 2025)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "홍길동", e.Name)
	assert.Equal(t, "1001", e.Code)
	assert.Equal(t, "월", e.Weekday)
	require.NotNil(t, e.Date)
	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), *e.Date)
	assert.Equal(t, [3]string{"상2", "하1", ""}, e.Notes)
	assert.Equal(t, 4, e.Row)
	assert.Equal(t, 1, e.Col)
}

func TestExtractEntries_InvalidDayGivesNilDate(t *testing.T) {
	// 시나리오 C: 4월 31일은 존재하지 않는다
	g := gridFrom([][]interface{}{
		{"월/일", "목"},
		{"4월", 31},
		{nil, "김선희"},
	})

	headerRow, cols, err := ScanHeader(g)
	require.NoError(t, err)
	blocks := SplitBlocks(g, headerRow, cols)
	entries := ExtractEntries(g, blocks[0], cols, 2025)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Date)
	require.NotNil(t, entries[0].Day)
	assert.Equal(t, 31, *entries[0].Day)
}

func TestExtractEntries_NumericNoteCellsKeepValues(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"월/일", "토"},
		{"2월", 8},
		{nil, "박재단", 2, 1.5, "비고"},
	})

	headerRow, cols, err := ScanHeader(g)
	require.NoError(t, err)
	blocks := SplitBlocks(g, headerRow, cols)
	entries := ExtractEntries(g, blocks[0], cols, 2025)
	require.Len(t, entries, 1)
	assert.Equal(t, [3]string{"2", "1.5", "비고"}, entries[0].Notes)
}

func TestAssignOrderIDs_ScenarioB_SyntheticCode(t *testing.T) {
	g := scenarioGrid("김선희")

	res, err := Transform(g, 2025)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)

	e := res.Entries[0]
	assert.Equal(t, 1, e.CustomerCode) // 첫 등장 이름 → 대체 코드 1
	assert.Equal(t, "2025-0001-01", e.OrderID)
}

func TestAssignOrderIDs_SequencePerCodeAndYear(t *testing.T) {
	// 같은 고객이 세 날짜에 세 번 등장 → 같은 코드, 순번 01/02/03
	g := gridFrom([][]interface{}{
		{"월/일", "월", "화"},
		{"1월", 6, 7},
		{nil, "홍길동(1001)", nil},
		{nil, 13, 14},
		{nil, nil, "홍길동(1001)"},
		{nil, 20, 21},
		{nil, "홍길동(1001)", nil},
	})

	res, err := Transform(g, 2025)
	require.NoError(t, err)
	require.Len(t, res.Orders, 3)

	assert.Equal(t, "2025-1001-01", res.Orders[0].OrderID)
	assert.Equal(t, "2025-1001-02", res.Orders[1].OrderID)
	assert.Equal(t, "2025-1001-03", res.Orders[2].OrderID)
	assert.True(t, res.Orders[0].Date.Before(res.Orders[1].Date))
	assert.True(t, res.Orders[1].Date.Before(res.Orders[2].Date))
}

func TestAssignOrderIDs_SameDayTieBreakByScanOrder(t *testing.T) {
	// 같은 날 두 번 등장해도 스캔 순서대로 01, 02
	entries := []FlatEntry{
		{Date: datePtr(2025, 3, 5), Name: "홍길동", Code: "7", Row: 10, Col: 1},
		{Date: datePtr(2025, 3, 5), Name: "홍길동", Code: "7", Row: 11, Col: 1},
	}

	out, collisions := AssignOrderIDs(entries)
	require.Empty(t, collisions)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-0007-01", out[0].OrderID)
	assert.Equal(t, 10, out[0].Row)
	assert.Equal(t, "2025-0007-02", out[1].OrderID)
	assert.Equal(t, 11, out[1].Row)
}

func TestAssignOrderIDs_SequenceResetsOnYearChange(t *testing.T) {
	entries := []FlatEntry{
		{Date: datePtr(2024, 12, 30), Name: "홍길동", Code: "7"},
		{Date: datePtr(2025, 1, 6), Name: "홍길동", Code: "7"},
	}

	out, _ := AssignOrderIDs(entries)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-0007-01", out[0].OrderID)
	assert.Equal(t, "2025-0007-01", out[1].OrderID)
}

func TestAssignOrderIDs_MixedCodesUseSeparateNumbering(t *testing.T) {
	entries := []FlatEntry{
		{Date: datePtr(2025, 1, 3), Name: "홍길동", Code: "1001"},
		{Date: datePtr(2025, 1, 4), Name: "김선희"}, // 코드 없음 → 대체 코드 1
	}

	out, collisions := AssignOrderIDs(entries)
	require.Empty(t, collisions)
	require.Len(t, out, 2)

	byName := map[string]AssignedEntry{}
	for _, e := range out {
		byName[e.Name] = e
	}
	assert.Equal(t, 1001, byName["홍길동"].CustomerCode)
	assert.Equal(t, 1, byName["김선희"].CustomerCode)
	assert.False(t, byName["김선희"].Unresolved)
}

func TestAssignOrderIDs_SyntheticCollisionIsReportedNotMerged(t *testing.T) {
	// 명시 코드 1과 대체 코드 1이 충돌 → 합치지 않고 미해결 + 충돌 보고
	entries := []FlatEntry{
		{Date: datePtr(2025, 1, 3), Name: "홍길동", Code: "1"},
		{Date: datePtr(2025, 1, 4), Name: "김선희"},
	}

	out, collisions := AssignOrderIDs(entries)
	require.Len(t, collisions, 1)
	assert.Equal(t, 1, collisions[0].Code)
	assert.Equal(t, "김선희", collisions[0].SyntheticName)

	byName := map[string]AssignedEntry{}
	for _, e := range out {
		byName[e.Name] = e
	}
	assert.False(t, byName["홍길동"].Unresolved)
	assert.Equal(t, "2025-0001-01", byName["홍길동"].OrderID)
	assert.True(t, byName["김선희"].Unresolved)
	assert.Equal(t, ReasonCodeCollision, byName["김선희"].Reason)
	assert.Empty(t, byName["김선희"].OrderID)
}

func TestTransform_OrderIDsAreUnique(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"월/일", "월", "화", "수"},
		{"1월", 6, 7, 8},
		{nil, "홍길동(1001)", "김선희(1002)", "홍길동(1001)"},
		{nil, "박영수(1003)", nil, nil},
		{nil, 13, 14, 15},
		{nil, "홍길동(1001)", "박영수(1003)", "김선희(1002)"},
	})

	res, err := Transform(g, 2025)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, o := range res.Orders {
		assert.False(t, seen[o.OrderID], "duplicate order id %s", o.OrderID)
		seen[o.OrderID] = true
	}
	assert.Len(t, res.Orders, 7)

	// (코드, 연도) 그룹 안에서 순번은 빈틈 없는 1..N
	seqByCode := map[int][]int{}
	for _, o := range res.Orders {
		seqByCode[o.Code] = append(seqByCode[o.Code], 0)
	}
	for _, e := range res.Entries {
		if e.OrderID == "" {
			continue
		}
		seqByCode[e.CustomerCode][e.Sequence-1] = e.Sequence
	}
	for code, seqs := range seqByCode {
		for i, s := range seqs {
			assert.Equal(t, i+1, s, "code %d has a gap in sequence", code)
		}
	}
}

func TestTransform_UnresolvedExcludedFromOrderTable(t *testing.T) {
	// 시나리오 C 전체 흐름: 4월 31일 엔트리는 주문 테이블에서 빠지고
	// 미해결 목록에는 남는다
	g := gridFrom([][]interface{}{
		{"월/일", "월", "화"},
		{"4월", 30, 31},
		{nil, "홍길동(1001)", "김선희(1002)"},
	})

	res, err := Transform(g, 2025)
	require.NoError(t, err)

	require.Len(t, res.Orders, 1)
	assert.Equal(t, "2025-1001-01", res.Orders[0].OrderID)

	require.Len(t, res.Unresolved, 1)
	assert.Equal(t, "김선희", res.Unresolved[0].Name)
	assert.Equal(t, ReasonNoDate, res.Unresolved[0].Reason)
}

func TestTransform_HeaderNotFoundIsFatal(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"아무 헤더도 없음"},
		{nil, "홍길동(1001)"},
	})

	res, err := Transform(g, 2025)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
	assert.Nil(t, res)
}

func TestTransform_ItemsJoinSkipsEmptyNotes(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"월/일", "월"},
		{"1월", 6},
		{nil, "홍길동(1001)", "상2", nil, "조1"},
	})

	res, err := Transform(g, 2025)
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "상2, 조1", res.Orders[0].Items)
}

func TestTransform_Idempotent(t *testing.T) {
	g := gridFrom([][]interface{}{
		{"월/일", "월", "화"},
		{"1월", 6, 7},
		{nil, "홍길동(1001)", "김선희"},
		{nil, 13, 14},
		{nil, "박영수", "홍길동(1001)"},
	})

	first, err := Transform(g, 2025)
	require.NoError(t, err)
	second, err := Transform(g, 2025)
	require.NoError(t, err)

	assert.Equal(t, first.Entries, second.Entries)
	assert.Equal(t, first.Orders, second.Orders)
	assert.Equal(t, first.Unresolved, second.Unresolved)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
