// Package fabric 주문 품목 문자열에서 원단 소요량을 계산한다.
// 품목 문자열은 납품달력 변환이 만드는 "상2, 하1" 형태의 미니 문법으로,
// 한 글자 품목 코드 뒤에 수량 정수가 붙는다.
package fabric

import (
	"strings"
	"unicode/utf8"
)

// UsageRule 품목 코드 → 벌당 원단 소요량 (m)
var UsageRule = map[string]float64{
	"상": 1.6, // 상의
	"하": 1.1, // 하의
	"조": 0.8, // 조끼
}

// Item 품목 코드와 수량 한 쌍
type Item struct {
	Code string // 품목 코드 (상/하/조)
	Qty  int    // 수량
}

// ParseItems "상2, 하1" 문자열을 품목 목록으로 푼다.
// 규칙에 없는 코드나 수량이 숫자가 아닌 조각은 조용히 건너뛴다 —
// 달력 메모에는 원단과 무관한 비고가 섞여 들어오기 때문이다.
func ParseItems(text string) []Item {
	if text == "" {
		return nil
	}

	compact := strings.ReplaceAll(text, " ", "")
	var items []Item
	for _, part := range strings.Split(compact, ",") {
		if utf8.RuneCountInString(part) < 2 {
			continue
		}

		runes := []rune(part)
		code := string(runes[0])
		numStr := string(runes[1:])

		qty := 0
		valid := numStr != ""
		for _, r := range numStr {
			if r < '0' || r > '9' {
				valid = false
				break
			}
			qty = qty*10 + int(r-'0')
		}
		if !valid {
			continue
		}

		if _, ok := UsageRule[code]; ok {
			items = append(items, Item{Code: code, Qty: qty})
		}
	}
	return items
}

// Usage 품목 문자열의 총 원단 소요량 (m)
func Usage(text string) float64 {
	total := 0.0
	for _, item := range ParseItems(text) {
		total += UsageRule[item.Code] * float64(item.Qty)
	}
	return total
}

// MaterialCost 소요량과 단가로 재료비 계산
func MaterialCost(usage, costPerUnit float64) float64 {
	return usage * costPerUnit
}
