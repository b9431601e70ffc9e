package calendar

import (
	"regexp"
	"strings"
	"time"
)

// noteSlots 이름 셀 오른쪽에서 품목 메모로 읽는 셀 수
const noteSlots = 3

// FlatEntry 날짜 셀 하나에서 발견된 고객 이름 한 건.
// EntryExtractor가 만들고 이후에는 수정하지 않는다.
type FlatEntry struct {
	Date    *time.Time      // 해결된 납품일 (월 정보가 없거나 달력상 불가능한 날짜면 nil)
	Name    string          // 원본 고객 이름
	Code    string          // "이름(1234)" 형태에서 파싱한 명시 코드, 없으면 ""
	Weekday string          // 요일 토큰
	Month   *int            // 블록의 월
	Day     *int            // 요일 열의 일
	Notes   [noteSlots]string // 오른쪽 인접 셀 최대 3칸의 품목 메모 ("" = 없음)
	Row     int             // 원본 행 (추적용)
	Col     int             // 원본 열 (추적용)
}

// nameCodeRe "홍길동(1234)" — 끝 괄호 안 숫자 묶음이 고객 코드
var nameCodeRe = regexp.MustCompile(`^(.+)\((\d+)\)$`)

// parseNameAndCode 셀 문자열에서 이름과 명시 코드를 분리한다.
// 괄호 코드가 없으면 전체 문자열이 이름이고 코드는 "".
func parseNameAndCode(raw string) (string, string) {
	s := strings.TrimSpace(raw)
	if m := nameCodeRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	return s, ""
}

// resolveDate 연도/월/일을 실제 달력 날짜로 맞춰본다.
// 4월 31일처럼 존재하지 않는 조합이면 nil (time.Date의 자동 보정을 거르기 위해
// 구성 후 년월일을 되비교한다).
func resolveDate(year int, month, day *int) *time.Time {
	if month == nil || day == nil {
		return nil
	}
	t := time.Date(year, time.Month(*month), *day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != *month || t.Day() != *day {
		return nil
	}
	return &t
}

// ExtractEntries 블록 본문에서 플랫 엔트리를 뽑아낸다.
//
// 본문 행 × 요일 열에서 비어 있지 않은 문자열 셀마다 엔트리 하나를 만든다.
// 품목 메모는 이름 셀 오른쪽 3칸을 그대로 가져오며, 그리드 밖이면 빈 값으로
// 둔다. 메모 영역이 다음 요일 열과 겹치는 좁은 시트도 자르지 않고 그대로
// 읽는다 — 원본 달력이 그 동작에 의존하고 있어서 여기서 바꾸지 않는다.
func ExtractEntries(g *Grid, block Block, cols []WeekdayColumn, year int) []FlatEntry {
	var entries []FlatEntry

	for r := block.BodyStart; r < block.BodyEnd; r++ {
		for _, wc := range cols {
			cell := g.At(r, wc.Col)
			if cell.Kind != CellString || strings.TrimSpace(cell.Text) == "" {
				continue
			}

			name, code := parseNameAndCode(cell.Text)

			var day *int
			if d, ok := block.Header.Days[wc.Col]; ok {
				dd := d
				day = &dd
			}

			var notes [noteSlots]string
			for i := 0; i < noteSlots; i++ {
				notes[i] = g.At(r, wc.Col+1+i).String()
			}

			entries = append(entries, FlatEntry{
				Date:    resolveDate(year, block.Header.Month, day),
				Name:    name,
				Code:    code,
				Weekday: wc.Label,
				Month:   block.Header.Month,
				Day:     day,
				Notes:   notes,
				Row:     r,
				Col:     wc.Col,
			})
		}
	}

	return entries
}
