package formpdf

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplatePNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 100, 141))
	for y := 0; y < 141; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.White)
		}
	}

	path := filepath.Join(t.TempDir(), "template.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestFormatValue(t *testing.T) {
	d := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "홍길동", FormatValue("홍길동"))
	assert.Equal(t, "2025-03-01", FormatValue(d))
	assert.Equal(t, "2025-03-01", FormatValue(&d))
	assert.Equal(t, "", FormatValue((*time.Time)(nil)))
	assert.Equal(t, "150000", FormatValue(150000))
}

func TestGenerate(t *testing.T) {
	template := writeTemplatePNG(t)
	out := filepath.Join(t.TempDir(), "order.pdf")

	s := NewStamper(template, "")
	err := s.Generate(out, map[string]interface{}{
		"성명":   "Hong Gildong",
		"주문금액": 150000,
		"비고":   "", // 빈 값은 찍지 않는다
	}, map[string]FieldPos{
		"성명":   {X: 90, Y: 770},
		"주문금액": {X: 470, Y: 770},
		"비고":   {X: 90, Y: 500},
	})
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerate_MissingTemplate(t *testing.T) {
	s := NewStamper(filepath.Join(t.TempDir(), "nope.png"), "")
	err := s.Generate(filepath.Join(t.TempDir(), "out.pdf"), nil, nil)
	assert.Error(t, err)
}
