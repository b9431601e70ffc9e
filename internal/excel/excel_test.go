package excel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/elburim/elburim-backend/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbookAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	err := WriteWorkbook(path, []Sheet{
		{
			Name:    "month_summary",
			Headers: []string{"month", "order_count"},
			Rows:    [][]interface{}{{1, 3}, {2, 5}},
		},
		{
			Name:    "weekday_summary",
			Headers: []string{"weekday", "order_count"},
			Rows:    [][]interface{}{{"금", 4}},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"month_summary", "weekday_summary"}, f.GetSheetList())

	rows, err := f.GetRows("month_summary")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"month", "order_count"}, rows[0])
	assert.Equal(t, []string{"1", "3"}, rows[1])

	rows, err = f.GetRows("weekday_summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"금", "4"}, rows[1])
}

func TestWriteWorkbook_NoSheets(t *testing.T) {
	err := WriteWorkbook(filepath.Join(t.TempDir(), "empty.xlsx"), nil)
	assert.Error(t, err)
}

func TestLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "월/일"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "금"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "1월"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 3))
	require.NoError(t, f.SetCellValue(sheet, "B3", "홍길동(1001)"))
	require.NoError(t, f.SetCellValue(sheet, "C3", 2.5))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	grid, err := LoadGrid(path)
	require.NoError(t, err)

	assert.Equal(t, calendar.StringCell("월/일"), grid.At(0, 0))
	assert.Equal(t, calendar.StringCell("금"), grid.At(0, 1))
	assert.Equal(t, calendar.StringCell("1월"), grid.At(1, 0))
	assert.Equal(t, calendar.IntCell(3), grid.At(1, 1))
	assert.Equal(t, calendar.StringCell("홍길동(1001)"), grid.At(2, 1))
	assert.Equal(t, calendar.FloatCell(2.5), grid.At(2, 2))
	assert.Equal(t, calendar.EmptyCell(), grid.At(2, 0))
}

func TestWriteOrderTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")

	orders := []calendar.OrderRow{
		{
			OrderID: "2025-1001-01",
			Date:    time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			Name:    "홍길동",
			Code:    1001,
			Items:   "상2, 하1",
			Weekday: "금",
			Month:   1,
			Day:     3,
		},
	}
	require.NoError(t, WriteOrderTable(path, orders))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("orders")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-1001-01", rows[1][0])
	assert.Equal(t, "2025-01-03", rows[1][1])
	assert.Equal(t, "상2, 하1", rows[1][4])
}
