package calendar

import (
	"errors"
	"strings"

	"github.com/elburim/elburim-backend/pkg/logger"
)

// headerSentinel 요일 헤더 행을 표시하는 0열 고정 문구
const headerSentinel = "월/일"

// weekdayLabels 요일 열 후보 (일~토)
var weekdayLabels = []string{"일", "월", "화", "수", "목", "금", "토"}

// ErrHeaderNotFound 그리드 전체에서 "월/일" 헤더 행을 찾지 못한 경우.
// 이후 단계가 전부 무의미하므로 변환 전체를 중단한다.
var ErrHeaderNotFound = errors.New("calendar: weekday header row not found")

// WeekdayColumn 요일 하나가 배정된 열
type WeekdayColumn struct {
	Col   int    // 열 인덱스
	Label string // 요일 토큰 (일/월/화/수/목/금/토)
}

func isWeekdayLabel(s string) bool {
	for _, w := range weekdayLabels {
		if s == w {
			return true
		}
	}
	return false
}

// ScanHeader 요일 헤더 행을 찾아 요일 열 배치를 돌려준다.
//
// 0열이 정확히 "월/일"인 첫 행이 헤더이며, 그 행의 나머지 열 중 값이 요일
// 토큰과 정확히 일치하는 열을 왼쪽부터 순서대로 수집한다. 같은 요일 토큰이
// 두 번 나오는 시트(잘못 만든 달력)는 첫 번째 열만 인정한다 — 원본 달력의
// 동작을 그대로 유지하는 것으로, 고치지 않고 경고만 남긴다.
func ScanHeader(g *Grid) (int, []WeekdayColumn, error) {
	headerRow := -1
	for r := 0; r < g.Rows(); r++ {
		c := g.At(r, 0)
		if c.Kind == CellString && strings.TrimSpace(c.Text) == headerSentinel {
			headerRow = r
			break
		}
	}
	if headerRow < 0 {
		return 0, nil, ErrHeaderNotFound
	}

	var cols []WeekdayColumn
	seen := map[string]int{} // 요일 토큰 → 처음 나온 열
	for c := 1; c < g.Cols(); c++ {
		cell := g.At(headerRow, c)
		if cell.Kind != CellString {
			continue
		}
		label := strings.TrimSpace(cell.Text)
		if !isWeekdayLabel(label) {
			continue
		}
		if first, dup := seen[label]; dup {
			logger.Warn("Duplicate weekday column in header, keeping first", map[string]interface{}{
				"label":     label,
				"first_col": first,
				"dup_col":   c,
			})
			continue
		}
		seen[label] = c
		cols = append(cols, WeekdayColumn{Col: c, Label: label})
	}

	return headerRow, cols, nil
}
