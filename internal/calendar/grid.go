package calendar

import "strconv"

// CellKind 셀 값의 종류
type CellKind int

const (
	CellEmpty  CellKind = iota // 빈 셀
	CellInt                    // 정수 셀
	CellFloat                  // 실수 셀
	CellString                 // 문자열 셀
)

// Cell 스프레드시트 셀 하나의 값.
// 종류별 필드를 함께 들고 다니는 tagged union 형태로, Kind에 따라 하나만 유효하다.
type Cell struct {
	Kind  CellKind
	Int   int64
	Float float64
	Text  string
}

func EmptyCell() Cell           { return Cell{Kind: CellEmpty} }
func IntCell(v int64) Cell      { return Cell{Kind: CellInt, Int: v} }
func FloatCell(v float64) Cell  { return Cell{Kind: CellFloat, Float: v} }
func StringCell(s string) Cell  { return Cell{Kind: CellString, Text: s} }

// IsEmpty 빈 셀 여부
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String 셀 값을 표시용 문자열로 변환 (빈 셀은 "")
func (c Cell) String() string {
	switch c.Kind {
	case CellInt:
		return strconv.FormatInt(c.Int, 10)
	case CellFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	case CellString:
		return c.Text
	default:
		return ""
	}
}

// Grid 달력 시트를 그대로 옮긴 2차원 셀 행렬.
// 행 우선(dense row-major)으로 저장하며 로드 이후에는 읽기 전용으로 다룬다.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid 지정한 크기의 빈 그리드 생성
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds (row, col)이 그리드 범위 안인지 확인
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At (row, col) 셀 조회. 범위를 벗어나면 빈 셀을 돌려준다.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return EmptyCell()
	}
	return g.cells[row*g.cols+col]
}

// Set (row, col) 셀 설정. 범위 밖이면 무시한다.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = c
}
