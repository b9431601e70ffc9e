// Package measure 치수 표기 해석과 단위 환산.
// 현장에서는 "17 1/4", "17¼", "17-1/4" 같은 분수 표기가 섞여 들어오므로
// 먼저 표기를 정규화한 뒤 숫자로 푼다.
package measure

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNotation 치수 표기를 숫자로 해석할 수 없는 경우
var ErrInvalidNotation = errors.New("measure: invalid size notation")

// 유니코드 분수 기호 → 공백 분수 표기
var charNormalizeMap = map[string]string{
	"¼": " 1/4",
	"½": " 1/2",
	"¾": " 3/4",
}

var (
	plainNumberRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
	fractionRe    = regexp.MustCompile(`^(\d+)/(\d+)$`)
	mixedRe       = regexp.MustCompile(`^(\d+(?:\.\d+)?) (\d+)/(\d+)$`)
	spacesRe      = regexp.MustCompile(`\s+`)
)

// normalize 기호/구분자를 정리해 "정수 분자/분모" 꼴로 맞춘다
func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	for k, v := range charNormalizeMap {
		s = strings.ReplaceAll(s, k, v)
	}
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "+", " ")
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ParseInch 치수 표기를 inch 숫자로 해석한다.
//
//	"17"       -> 17.0
//	"17.25"    -> 17.25
//	"17 1/4"   -> 17.25
//	"1/4"      -> 0.25
//	"17¼"      -> 17.25
//	"17-1/4"   -> 17.25
//	"17 + 1/4" -> 17.25
func ParseInch(raw string) (float64, error) {
	s := normalize(raw)
	if s == "" {
		return 0, ErrInvalidNotation
	}

	if plainNumberRe.MatchString(s) {
		return strconv.ParseFloat(s, 64)
	}

	if m := fractionRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, ErrInvalidNotation
		}
		return num / den, nil
	}

	if m := mixedRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return 0, ErrInvalidNotation
		}
		return whole + num/den, nil
	}

	return 0, ErrInvalidNotation
}

// InchToCm inch → cm 환산 (소수 첫째 자리 반올림)
func InchToCm(inch float64) float64 {
	return math.Round(inch*2.54*10) / 10
}
