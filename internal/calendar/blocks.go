package calendar

import (
	"regexp"
	"strconv"
	"strings"
)

// DateHeader 날짜 헤더 행. 요일 열마다 그 주의 일(day-of-month)을 선언한다.
type DateHeader struct {
	Row   int         // 헤더 행 인덱스
	Month *int        // 이 블록에 적용되는 월 (아직 월 정보를 못 본 경우 nil)
	Days  map[int]int // 요일 열 → 일
}

// Block 날짜 헤더 하나와 그 아래 이름 행 구간.
// 본문은 [BodyStart, BodyEnd) 범위로, 다음 날짜 헤더 직전까지다.
type Block struct {
	Header    DateHeader
	BodyStart int
	BodyEnd   int
}

var leadingDigitsRe = regexp.MustCompile(`^(\d+)`)

// parseDay 셀에서 일(day) 숫자를 꺼낸다.
// 숫자 셀은 그대로, "1(신정)"처럼 공휴일 주석이 붙은 문자열은 앞자리 숫자만 취한다.
func parseDay(c Cell) (int, bool) {
	switch c.Kind {
	case CellInt:
		return int(c.Int), true
	case CellFloat:
		return int(c.Float), true
	case CellString:
		m := leadingDigitsRe.FindStringSubmatch(strings.TrimSpace(c.Text))
		if m == nil {
			return 0, false
		}
		d, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return d, true
	default:
		return 0, false
	}
}

// parseMonthToken 0열 셀에서 "1월", "2월" 같은 월 표기를 읽는다.
// "월"로 끝나고 앞부분이 1~12 정수일 때만 인정하며, 그 외는 무시한다
// (이전 월이 그대로 유지됨).
func parseMonthToken(c Cell) (int, bool) {
	if c.Kind != CellString {
		return 0, false
	}
	s := strings.TrimSpace(c.Text)
	if !strings.HasSuffix(s, "월") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "월")))
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

// dayValues 행의 요일 열들에서 일 숫자를 전부 수집한다.
// 하나라도 있으면 그 행은 날짜 헤더 행이다.
func dayValues(g *Grid, row int, cols []WeekdayColumn) map[int]int {
	var days map[int]int
	for _, wc := range cols {
		if d, ok := parseDay(g.At(row, wc.Col)); ok {
			if days == nil {
				days = map[int]int{}
			}
			days[wc.Col] = d
		}
	}
	return days
}

// SplitBlocks 헤더 아래 전체 행을 날짜 헤더 기준 블록으로 나눈다.
//
// 달력 시트는 "날짜 숫자 행" 아래에 이름 행이 몇 줄이든 이어지는 구조라
// 블록 폭을 고정할 수 없고, 다음 날짜 헤더가 나오는 순간까지를 한 블록으로
// 본다. 월(current month)은 0열의 "N월" 표기를 만날 때마다 갱신되는
// 누적 상태로, 블록 생성 시점의 값이 헤더에 박제된다.
func SplitBlocks(g *Grid, headerRow int, cols []WeekdayColumn) []Block {
	var blocks []Block
	var currentMonth *int

	r := headerRow + 1
	for r < g.Rows() {
		if m, ok := parseMonthToken(g.At(r, 0)); ok {
			month := m
			currentMonth = &month
		}

		days := dayValues(g, r, cols)
		if days == nil {
			r++
			continue
		}

		// 날짜 헤더 발견 → 다음 날짜 헤더 직전까지가 본문
		end := r + 1
		for end < g.Rows() && dayValues(g, end, cols) == nil {
			end++
		}

		blocks = append(blocks, Block{
			Header: DateHeader{
				Row:   r,
				Month: currentMonth,
				Days:  days,
			},
			BodyStart: r + 1,
			BodyEnd:   end,
		})
		r = end
	}

	return blocks
}
