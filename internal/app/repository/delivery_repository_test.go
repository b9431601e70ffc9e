package repository

import (
	"testing"
	"time"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDeliveryTest(t *testing.T) (*gorm.DB, DeliveryRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewDeliveryRepository(testDB)
	return testDB, repo
}

func deliveryDate(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestDeliveryRepository_ReplaceYear(t *testing.T) {
	testDB, repo := setupDeliveryTest(t)
	defer db.CleanupTestDB(testDB)

	d1 := deliveryDate(2025, 1, 3)
	entries := []model.DeliveryEntry{
		{Year: 2025, OrderNo: "2025-1001-01", CustomerName: "홍길동", CustomerCode: 1001, Sequence: 1, OrderDate: &d1, Weekday: "금"},
		{Year: 2025, CustomerName: "김철수", Unresolved: true, Reason: "no-date"},
	}
	orders := []model.DeliveryOrder{
		{OrderNo: "2025-1001-01", Year: 2025, OrderDate: d1, CustomerName: "홍길동", CustomerCode: 1001, Items: "상2, 하1", Weekday: "금", Month: 1, Day: 3},
	}
	require.NoError(t, repo.ReplaceYear(2025, entries, orders))

	// 같은 연도 재변환 시 기존 결과가 교체된다
	d2 := deliveryDate(2025, 2, 7)
	require.NoError(t, repo.ReplaceYear(2025, []model.DeliveryEntry{
		{Year: 2025, OrderNo: "2025-1002-01", CustomerName: "이영희", CustomerCode: 1002, Sequence: 1, OrderDate: &d2, Weekday: "금"},
	}, []model.DeliveryOrder{
		{OrderNo: "2025-1002-01", Year: 2025, OrderDate: d2, CustomerName: "이영희", CustomerCode: 1002, Weekday: "금", Month: 2, Day: 7},
	}))

	got, err := repo.FindEntriesByYear(2025)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-1002-01", got[0].OrderNo)

	gotOrders, err := repo.FindOrdersByYear(2025)
	require.NoError(t, err)
	require.Len(t, gotOrders, 1)
	assert.Equal(t, "이영희", gotOrders[0].CustomerName)
}

func TestDeliveryRepository_FindUnresolvedByYear(t *testing.T) {
	testDB, repo := setupDeliveryTest(t)
	defer db.CleanupTestDB(testDB)

	d1 := deliveryDate(2025, 1, 3)
	require.NoError(t, repo.ReplaceYear(2025, []model.DeliveryEntry{
		{Year: 2025, OrderNo: "2025-1001-01", CustomerName: "홍길동", CustomerCode: 1001, OrderDate: &d1},
		{Year: 2025, CustomerName: "김철수", Unresolved: true, Reason: "no-date"},
		{Year: 2025, CustomerName: "박민수", Unresolved: true, Reason: "code-collision"},
	}, nil))

	unresolved, err := repo.FindUnresolvedByYear(2025)
	require.NoError(t, err)
	require.Len(t, unresolved, 2)
	assert.Equal(t, "김철수", unresolved[0].CustomerName)
	assert.Equal(t, "code-collision", unresolved[1].Reason)
}

func TestDeliveryRepository_FindOrderByNo(t *testing.T) {
	testDB, repo := setupDeliveryTest(t)
	defer db.CleanupTestDB(testDB)

	d1 := deliveryDate(2025, 1, 3)
	require.NoError(t, repo.ReplaceYear(2025, nil, []model.DeliveryOrder{
		{OrderNo: "2025-1001-01", Year: 2025, OrderDate: d1, CustomerName: "홍길동", CustomerCode: 1001, Items: "상1", Weekday: "금", Month: 1, Day: 3},
	}))

	order, err := repo.FindOrderByNo("2025-1001-01")
	require.NoError(t, err)
	assert.Equal(t, "홍길동", order.CustomerName)

	_, err = repo.FindOrderByNo("2025-9999-01")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
