package excel

import (
	"time"

	"github.com/elburim/elburim-backend/internal/calendar"
)

const dateLayout = "2006-01-02"

// WriteFlatEntries 주문번호까지 붙은 플랫 엔트리를 xlsx로 저장한다
func WriteFlatEntries(path string, entries []calendar.AssignedEntry) error {
	headers := []string{
		"order_id", "order_date", "customer_name_raw", "customer_code_raw",
		"order_seq", "weekday", "month", "day",
		"item_info_1", "item_info_2", "item_info_3",
		"src_row", "src_col", "unresolved", "reason",
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.OrderID,
			formatDatePtr(e.Date),
			e.Name,
			e.Code,
			e.Sequence,
			e.Weekday,
			intPtrValue(e.Month),
			intPtrValue(e.Day),
			e.Notes[0],
			e.Notes[1],
			e.Notes[2],
			e.Row,
			e.Col,
			e.Unresolved,
			e.Reason,
		})
	}

	return WriteWorkbook(path, []Sheet{{Name: "delivery_flat", Headers: headers, Rows: rows}})
}

// WriteOrderTable 주문 테이블(주문번호당 1행)을 xlsx로 저장한다
func WriteOrderTable(path string, orders []calendar.OrderRow) error {
	headers := []string{
		"order_id", "order_date", "customer_name_raw", "customer_code_raw",
		"items", "weekday", "month", "day",
	}

	rows := make([][]interface{}, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []interface{}{
			o.OrderID,
			o.Date.Format(dateLayout),
			o.Name,
			o.Code,
			o.Items,
			o.Weekday,
			o.Month,
			o.Day,
		})
	}

	return WriteWorkbook(path, []Sheet{{Name: "orders", Headers: headers, Rows: rows}})
}

func formatDatePtr(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func intPtrValue(p *int) interface{} {
	if p == nil {
		return ""
	}
	return *p
}
