// Package excel xlsx 읽기/쓰기. 납품달력 원본을 셀 격자로 읽어 오고,
// 변환 결과와 분석 보고서를 통상적인 헤더+행 시트로 내보낸다.
package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sheet 헤더 한 줄과 데이터 행들로 이루어진 시트
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// WriteWorkbook sheets를 순서대로 담은 통합 문서를 path에 저장한다
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// 기본 Sheet1을 첫 시트 이름으로 바꾼다
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
			}
		}

		headerRow := make([]interface{}, len(sheet.Headers))
		for j, h := range sheet.Headers {
			headerRow[j] = h
		}
		if err := setRow(f, sheet.Name, 1, headerRow); err != nil {
			return err
		}
		for r, row := range sheet.Rows {
			if err := setRow(f, sheet.Name, r+2, row); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", rowNum, sheet, err)
	}
	return nil
}
