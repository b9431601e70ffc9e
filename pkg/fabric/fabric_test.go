package fabric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseItems(t *testing.T) {
	items := ParseItems("상2, 하1")
	assert.Equal(t, []Item{{Code: "상", Qty: 2}, {Code: "하", Qty: 1}}, items)
}

func TestParseItems_SkipsUnknownAndMalformed(t *testing.T) {
	items := ParseItems("상1, 수선, 모x, 조2")
	assert.Equal(t, []Item{{Code: "상", Qty: 1}, {Code: "조", Qty: 2}}, items)

	assert.Nil(t, ParseItems(""))
	assert.Nil(t, ParseItems("가봉 예정"))
}

func TestParseItems_IgnoresSpacing(t *testing.T) {
	items := ParseItems(" 상 2 ,하1 ")
	assert.Equal(t, []Item{{Code: "상", Qty: 2}, {Code: "하", Qty: 1}}, items)
}

func TestUsage(t *testing.T) {
	// 상2(3.2) + 하1(1.1) + 조1(0.8)
	assert.InDelta(t, 5.1, Usage("상2, 하1, 조1"), 1e-9)
	assert.InDelta(t, 0.0, Usage("수선"), 1e-9)
	assert.InDelta(t, 1.6, Usage("상1, 비고"), 1e-9)
}

func TestMaterialCost(t *testing.T) {
	// (3.2 + 1.1) m * 30000원 = 129000원
	assert.InDelta(t, 129000, MaterialCost(Usage("상2, 하1"), 30000), 1e-6)
}
