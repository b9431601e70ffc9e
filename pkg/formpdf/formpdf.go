// Package formpdf A4 배경 이미지(양식 스캔본) 위에 필드 값을 좌표로 찍어
// 주문서 PDF를 만든다. 좌표는 포인트 단위이고 좌하단 원점 기준이다.
package formpdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// A4 크기 (포인트)
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	fontSize   = 11
)

// FieldPos 필드가 찍힐 좌표 (포인트, 좌하단 원점)
type FieldPos struct {
	X float64
	Y float64
}

// Stamper 양식 템플릿 하나에 대한 PDF 생성기
type Stamper struct {
	templatePath string // 배경 PNG 경로
	fontPath     string // 한글 TTF 경로 ("" 이면 내장 폰트)
}

// NewStamper creates a Stamper for the given template image.
func NewStamper(templatePath, fontPath string) *Stamper {
	return &Stamper{templatePath: templatePath, fontPath: fontPath}
}

// FormatValue 좌표 찍기 전에 값을 문자열로 정리한다
func FormatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format("2006-01-02")
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Generate 배경 위에 values를 positions 좌표대로 찍어 outPath에 저장한다.
// positions에 없는 필드키는 건너뛴다.
func (s *Stamper) Generate(outPath string, values map[string]interface{}, positions map[string]FieldPos) error {
	if _, err := os.Stat(s.templatePath); err != nil {
		return fmt.Errorf("form template not found: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	fontName := "Helvetica"
	if s.fontPath != "" {
		fontName = "form"
		pdf.AddUTF8Font(fontName, "", s.fontPath)
	}

	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: imageType(s.templatePath), ReadDpi: false}
	pdf.ImageOptions(s.templatePath, 0, 0, pageWidth, pageHeight, false, opts, 0, "")

	pdf.SetFont(fontName, "", fontSize)
	for key, pos := range positions {
		v, ok := values[key]
		if !ok {
			continue
		}
		text := FormatValue(v)
		if text == "" {
			continue
		}
		// 좌표는 좌하단 원점이라 위에서부터 재는 fpdf 축으로 뒤집는다
		pdf.Text(pos.X, pageHeight-pos.Y, text)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	default:
		return "PNG"
	}
}
