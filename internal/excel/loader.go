package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elburim/elburim-backend/internal/calendar"
	"github.com/xuri/excelize/v2"
)

// LoadGrid 납품달력 xlsx의 첫 시트를 셀 격자로 읽는다.
// 헤더 없이 시트 전체를 그대로 옮기며, 숫자로만 이루어진 셀은 정수/실수로,
// 나머지는 문자열로 분류한다. "1(신정)" 같은 공휴일 주석은 문자열로 남는다.
func LoadGrid(path string) (*calendar.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in calendar file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	grid := calendar.NewGrid(len(rows), cols)
	for r, row := range rows {
		for c, raw := range row {
			grid.Set(r, c, classifyCell(raw))
		}
	}
	return grid, nil
}

func classifyCell(raw string) calendar.Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return calendar.EmptyCell()
	}
	if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
		return calendar.IntCell(iv)
	}
	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return calendar.FloatCell(fv)
	}
	return calendar.StringCell(s)
}
