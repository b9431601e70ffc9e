package calendar

import (
	"strings"
	"time"
)

// OrderRow 주문번호 하나당 한 행. 하류 리포트와 원단 소요 계산이 읽는
// 최종 산출물이다.
type OrderRow struct {
	OrderID string
	Date    time.Time
	Name    string
	Code    int
	Items   string // 품목 메모 1~3을 ", "로 이어 붙인 문자열
	Weekday string
	Month   int
	Day     int
}

// BuildOrderTable 주문번호 기준으로 엔트리를 한 행씩 접는다.
//
// 같은 주문번호를 공유하는 엔트리는 날짜/이름/코드가 같으므로 첫 엔트리가
// 대표 필드를 제공하고, 품목 메모는 그룹 안에서 슬롯 순서(1→2→3), 그다음
// 등장 순서로 비어 있지 않은 것만 이어 붙인다. 주문번호가 없는(미해결)
// 엔트리는 이 표에서 빠지며, 별도의 미해결 목록으로 보고된다.
func BuildOrderTable(entries []AssignedEntry) []OrderRow {
	var rows []OrderRow
	index := map[string]int{} // 주문번호 → rows 인덱스

	for _, e := range entries {
		if e.OrderID == "" {
			continue
		}

		i, ok := index[e.OrderID]
		if !ok {
			row := OrderRow{
				OrderID: e.OrderID,
				Name:    e.Name,
				Code:    e.CustomerCode,
				Weekday: e.Weekday,
			}
			if e.Date != nil {
				row.Date = *e.Date
			}
			if e.Month != nil {
				row.Month = *e.Month
			}
			if e.Day != nil {
				row.Day = *e.Day
			}
			rows = append(rows, row)
			i = len(rows) - 1
			index[e.OrderID] = i
		}

		var items []string
		if rows[i].Items != "" {
			items = append(items, rows[i].Items)
		}
		for _, note := range e.Notes {
			if note != "" {
				items = append(items, note)
			}
		}
		rows[i].Items = strings.Join(items, ", ")
	}

	return rows
}
