package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnresolvableCode 코드 결정 규칙으로 고객 코드를 정할 수 없는 엔트리.
// 엔트리 단위 오류라 전체 변환을 중단하지 않고, 해당 엔트리만 미해결로
// 남겨 진단 목록에 올린다.
var ErrUnresolvableCode = errors.New("calendar: customer code cannot be resolved")

// 미해결 사유
const (
	ReasonNoDate        = "no-date"        // 월 정보 부재 또는 달력상 불가능한 날짜
	ReasonInvalidCode   = "invalid-code"   // 명시 코드가 정수 범위를 벗어남
	ReasonCodeCollision = "code-collision" // 대체 코드가 명시 코드와 충돌
)

// AssignedEntry 코드·순번·주문번호가 붙은 플랫 엔트리
type AssignedEntry struct {
	FlatEntry
	CustomerCode int    // 해결된 고객 코드 (미해결이면 0일 수 있음)
	Sequence     int    // (코드, 연도) 내 순번, 주문번호 미부여 시 0
	OrderID      string // "{연도}-{코드:04d}-{순번:02d}", 미부여 시 ""
	Unresolved   bool   // 주문번호를 못 받은 엔트리
	Reason       string // 미해결 사유 (Reason* 상수)
}

// CodeCollision 이름 기반 대체 코드가 다른 고객의 명시 코드와 겹친 경우.
// 명시/대체 두 번호 공간을 섞지 않는 대신, 겹침이 실제로 발생하면 합치지
// 않고 보고한다.
type CodeCollision struct {
	Code          int    // 충돌한 코드 값
	SyntheticName string // 대체 코드를 받으려던 고객 이름
}

// AssignOrderIDs 플랫 엔트리 전체에 고객 코드와 주문번호를 부여한다.
//
// 명시 코드("이름(1234)")가 하나라도 있으면 명시 코드를 그대로 쓰고, 코드가
// 없는 엔트리에만 코드 없는 엔트리 중 첫 등장 순서로 대체 코드를 매긴다.
// 명시 코드가 전혀 없으면 모든 엔트리에 이름 첫 등장 순서(1부터)로 대체
// 코드를 매긴다. 날짜가 nil인 엔트리는 연도를 알 수 없어 주문번호 없이
// 미해결로 남긴다. 순번은 (코드, 연도)마다 날짜순 1부터 시작하며, 같은 날짜는
// 원본 스캔 순서를 유지한다.
func AssignOrderIDs(entries []FlatEntry) ([]AssignedEntry, []CodeCollision) {
	out := make([]AssignedEntry, len(entries))
	for i, e := range entries {
		out[i] = AssignedEntry{FlatEntry: e}
	}

	anyExplicit := false
	for _, e := range entries {
		if e.Code != "" {
			anyExplicit = true
			break
		}
	}

	var collisions []CodeCollision

	if !anyExplicit {
		// 전부 대체 코드: 이름 첫 등장 순서대로 1, 2, 3, …
		nameToCode := map[string]int{}
		next := 1
		for i := range out {
			code, ok := nameToCode[out[i].Name]
			if !ok {
				code = next
				nameToCode[out[i].Name] = code
				next++
			}
			out[i].CustomerCode = code
		}
	} else {
		explicitCodes := map[int]bool{}
		for i := range out {
			if out[i].Code == "" {
				continue
			}
			code, err := strconv.Atoi(out[i].Code)
			if err != nil {
				out[i].Unresolved = true
				out[i].Reason = ReasonInvalidCode
				continue
			}
			out[i].CustomerCode = code
			explicitCodes[code] = true
		}

		// 코드 없는 엔트리는 별도 번호 공간에서 대체 코드를 받는다.
		// 명시 코드와 겹치면 합치지 않고 미해결 처리 + 충돌 보고.
		nameToCode := map[string]int{}
		next := 1
		for i := range out {
			if out[i].Code != "" || out[i].Unresolved {
				continue
			}
			code, ok := nameToCode[out[i].Name]
			if !ok {
				code = next
				nameToCode[out[i].Name] = code
				next++
				if explicitCodes[code] {
					collisions = append(collisions, CodeCollision{
						Code:          code,
						SyntheticName: out[i].Name,
					})
				}
			}
			out[i].CustomerCode = code
			if explicitCodes[code] {
				out[i].Unresolved = true
				out[i].Reason = ReasonCodeCollision
			}
		}
	}

	// 날짜를 못 푼 엔트리는 연도가 없어 주문번호를 만들 수 없다
	for i := range out {
		if out[i].Date == nil && !out[i].Unresolved {
			out[i].Unresolved = true
			out[i].Reason = ReasonNoDate
		}
	}

	// 코드 → 날짜 → 원본 스캔 순서로 안정 정렬 (날짜 nil은 코드 내 맨 뒤)
	sort.SliceStable(out, func(a, b int) bool {
		ea, eb := &out[a], &out[b]
		if ea.CustomerCode != eb.CustomerCode {
			return ea.CustomerCode < eb.CustomerCode
		}
		switch {
		case ea.Date == nil && eb.Date == nil:
			return false
		case ea.Date == nil:
			return false
		case eb.Date == nil:
			return true
		}
		return ea.Date.Before(*eb.Date)
	})

	// (코드, 연도)가 바뀔 때마다 순번 1부터 다시 시작
	prevCode, prevYear, seq := 0, 0, 0
	first := true
	for i := range out {
		if out[i].Unresolved {
			continue
		}
		year := out[i].Date.Year()
		if first || out[i].CustomerCode != prevCode || year != prevYear {
			seq = 1
			prevCode, prevYear = out[i].CustomerCode, year
			first = false
		} else {
			seq++
		}
		out[i].Sequence = seq
		out[i].OrderID = fmt.Sprintf("%d-%04d-%02d", year, out[i].CustomerCode, seq)
	}

	return out, collisions
}
