package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func setupCalendarServiceTest(t *testing.T) (*gorm.DB, CalendarService, string) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	dataCleanDir := t.TempDir()
	svc := NewCalendarService(repository.NewDeliveryRepository(testDB), dataCleanDir)
	return testDB, svc, dataCleanDir
}

// writeCalendarFixture 1월 블록 하나짜리 납품달력 xlsx를 만든다.
// 3일(금)에 홍길동(1001) 주문 2건 메모, 10일(금)에 코드 없는 김철수.
func writeCalendarFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	cells := map[string]interface{}{
		"A1": "월/일",
		"B1": "수", "C1": "목", "D1": "금",
		"A2": "1월",
		"B2": 1, "C2": 2, "D2": 3,
		"D3": "홍길동(1001)",
		"E3": "상2", "F3": "하1",
		"A5": "", "B5": 8, "C5": 9, "D5": 10,
		"D6": "김철수",
		"E6": "조1",
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}

	path := filepath.Join(t.TempDir(), "납품달력.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestCalendarService_TransformFile(t *testing.T) {
	testDB, svc, dataCleanDir := setupCalendarServiceTest(t)
	defer db.CleanupTestDB(testDB)

	path := writeCalendarFixture(t)

	summary, err := svc.TransformFile(path, 2025)
	require.NoError(t, err)
	assert.Equal(t, 2025, summary.Year)
	assert.Equal(t, 2, summary.EntryCount)
	assert.Equal(t, 2, summary.OrderCount)
	assert.Equal(t, 0, summary.UnresolvedCount)

	orders, err := svc.GetOrders(2025)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// 코드 없는 김철수는 대체 코드 1을 받아 주문번호가 먼저 온다
	assert.Equal(t, "2025-0001-01", orders[0].OrderNo)
	assert.Equal(t, "김철수", orders[0].CustomerName)
	assert.Equal(t, "조1", orders[0].Items)

	assert.Equal(t, "2025-1001-01", orders[1].OrderNo)
	assert.Equal(t, "홍길동", orders[1].CustomerName)
	assert.Equal(t, "상2, 하1", orders[1].Items)
	assert.Equal(t, "금", orders[1].Weekday)
	assert.Equal(t, 1, orders[1].Month)
	assert.Equal(t, 3, orders[1].Day)

	// 결과 xlsx가 함께 내보내진다
	for _, file := range []string{summary.FlatFile, summary.OrdersFile} {
		info, err := os.Stat(file)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Equal(t, dataCleanDir, filepath.Dir(file))
	}
}

func TestCalendarService_TransformFile_ReplacesYear(t *testing.T) {
	testDB, svc, _ := setupCalendarServiceTest(t)
	defer db.CleanupTestDB(testDB)

	path := writeCalendarFixture(t)

	_, err := svc.TransformFile(path, 2025)
	require.NoError(t, err)
	_, err = svc.TransformFile(path, 2025)
	require.NoError(t, err)

	// 재변환해도 중복이 쌓이지 않는다
	orders, err := svc.GetOrders(2025)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	entries, err := svc.GetEntries(2025)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCalendarService_GetOrderFabricUsage(t *testing.T) {
	testDB, svc, _ := setupCalendarServiceTest(t)
	defer db.CleanupTestDB(testDB)

	path := writeCalendarFixture(t)
	_, err := svc.TransformFile(path, 2025)
	require.NoError(t, err)

	usage, err := svc.GetOrderFabricUsage("2025-1001-01")
	require.NoError(t, err)
	assert.Equal(t, "상2, 하1", usage.Items)
	assert.InDelta(t, 4.3, usage.UsageM, 1e-9)

	_, err = svc.GetOrderFabricUsage("2025-9999-01")
	assert.ErrorIs(t, err, ErrDeliveryOrderNotFound)
}
