package service

import (
	"testing"
	"time"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStockServiceTest(t *testing.T) (*gorm.DB, StockService, repository.DeliveryRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	deliveryRepo := repository.NewDeliveryRepository(testDB)
	svc := NewStockService(repository.NewStockRepository(testDB), deliveryRepo)
	return testDB, svc, deliveryRepo
}

func TestDetectCategoryPrefix(t *testing.T) {
	assert.Equal(t, "F", DetectCategoryPrefix("이태리 순모 원단 네이비"))
	assert.Equal(t, "L", DetectCategoryPrefix("큐프라 안감"))
	assert.Equal(t, "I", DetectCategoryPrefix("접착 심지"))
	assert.Equal(t, "B", DetectCategoryPrefix("혼 단추 4구"))
	assert.Equal(t, "Z", DetectCategoryPrefix("YKK zipper 18cm"))
	assert.Equal(t, "A", DetectCategoryPrefix("어깨 패드"))
}

func TestStockService_RegisterItem(t *testing.T) {
	testDB, svc, _ := setupStockServiceTest(t)
	defer db.CleanupTestDB(testDB)

	item, err := svc.RegisterItem(&RegisterStockItemRequest{
		Name:        "이태리 순모 원단 네이비",
		CostPerUnit: 30000,
		InitialQty:  50,
	})
	require.NoError(t, err)
	assert.Equal(t, "F001", item.StockNo)
	assert.Equal(t, model.CategoryFabric, item.Category)
	assert.Equal(t, "m", item.Unit)

	// 초기 입고가 기록된다
	movements, err := svc.GetItemMovements(item.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, model.MovementIn, movements[0].Type)
	assert.Equal(t, 50.0, movements[0].QuantitySigned)

	// 같은 분류는 일련번호가 이어진다
	second, err := svc.RegisterItem(&RegisterStockItemRequest{Name: "영국산 울 원단 그레이"})
	require.NoError(t, err)
	assert.Equal(t, "F002", second.StockNo)

	// 다른 분류는 번호 공간이 분리된다
	lining, err := svc.RegisterItem(&RegisterStockItemRequest{Name: "큐프라 안감"})
	require.NoError(t, err)
	assert.Equal(t, "L001", lining.StockNo)
}

func TestStockService_RecordMovement_Signs(t *testing.T) {
	testDB, svc, _ := setupStockServiceTest(t)
	defer db.CleanupTestDB(testDB)

	item, err := svc.RegisterItem(&RegisterStockItemRequest{Name: "원단 테스트"})
	require.NoError(t, err)

	in, err := svc.RecordMovement(&RecordMovementRequest{
		StockItemID: item.ID,
		Type:        "IN",
		Quantity:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, in.QuantitySigned)

	out, err := svc.RecordMovement(&RecordMovementRequest{
		StockItemID: item.ID,
		Type:        "OUT",
		Quantity:    4.3,
	})
	require.NoError(t, err)
	assert.Equal(t, -4.3, out.QuantitySigned)

	balances, err := svc.Balances()
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.InDelta(t, 15.7, balances[0].Balance, 1e-9)

	_, err = svc.RecordMovement(&RecordMovementRequest{StockItemID: item.ID, Type: "IN", Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestStockService_AutoStockOut(t *testing.T) {
	testDB, svc, deliveryRepo := setupStockServiceTest(t)
	defer db.CleanupTestDB(testDB)

	orderDate := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, deliveryRepo.ReplaceYear(2025, nil, []model.DeliveryOrder{
		{OrderNo: "2025-1001-01", Year: 2025, OrderDate: orderDate, CustomerName: "홍길동", CustomerCode: 1001, Items: "상2, 하1", Weekday: "금", Month: 1, Day: 3},
		{OrderNo: "2025-1002-01", Year: 2025, OrderDate: orderDate, CustomerName: "김철수", CustomerCode: 1002, Items: "수선", Weekday: "금", Month: 1, Day: 3},
	}))

	item, err := svc.RegisterItem(&RegisterStockItemRequest{Name: "이태리 원단", InitialQty: 50})
	require.NoError(t, err)

	// 상2(3.2m) + 하1(1.1m) = 4.3m 출고
	movement, err := svc.AutoStockOut("2025-1001-01")
	require.NoError(t, err)
	assert.Equal(t, model.MovementOut, movement.Type)
	assert.InDelta(t, 4.3, movement.Quantity, 1e-9)
	assert.InDelta(t, -4.3, movement.QuantitySigned, 1e-9)
	assert.Equal(t, "2025-1001-01", movement.RelatedOrderNo)
	assert.Equal(t, item.ID, movement.StockItemID)

	// 원단 소요가 없는 주문은 출고하지 않는다
	_, err = svc.AutoStockOut("2025-1002-01")
	assert.ErrorIs(t, err, ErrNoFabricUsage)

	// 없는 주문번호
	_, err = svc.AutoStockOut("2025-9999-01")
	assert.ErrorIs(t, err, ErrDeliveryOrderNotFound)
}
