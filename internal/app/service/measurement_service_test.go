package service

import (
	"testing"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMeasurementServiceTest(t *testing.T) (*gorm.DB, MeasurementService, *model.Member) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	// 기본 상의호칭 규칙
	rules := []model.SizeRule{
		{ChestMinCm: 92, ChestMaxCm: 95, TopSize: "K48"},
		{ChestMinCm: 96, ChestMaxCm: 99, TopSize: "K50"},
		{ChestMinCm: 100, ChestMaxCm: 103, TopSize: "K52"},
		{ChestMinCm: 104, ChestMaxCm: 107, TopSize: "K54"},
	}
	for i := range rules {
		require.NoError(t, testDB.Create(&rules[i]).Error)
	}

	memberRepo := repository.NewMemberRepository(testDB)
	member := &model.Member{MemberNo: "M0001", Name: "홍길동", Status: model.MemberStatusActive}
	require.NoError(t, memberRepo.Create(member))

	svc := NewMeasurementService(
		repository.NewMeasurementRepository(testDB),
		memberRepo,
		repository.NewSettingsRepository(testDB),
	)
	return testDB, svc, member
}

func TestMeasurementService_CreateMeasurement(t *testing.T) {
	testDB, svc, member := setupMeasurementServiceTest(t)
	defer db.CleanupTestDB(testDB)

	// 가슴 38인치 = 96.5cm → K50 구간
	m, err := svc.CreateMeasurement(&CreateMeasurementRequest{
		MemberID: member.ID,
		Shoulder: "17 1/4",
		Chest:    "38",
		Waist:    "32 1/2",
	})
	require.NoError(t, err)

	assert.InDelta(t, 17.25, m.ShoulderIn, 1e-9)
	assert.InDelta(t, 43.8, m.ShoulderCm, 1e-9)
	assert.InDelta(t, 96.5, m.ChestCm, 1e-9)
	assert.InDelta(t, 82.6, m.WaistCm, 1e-9) // 32.5 * 2.54 = 82.55 -> 82.6
	assert.Equal(t, "K50", m.TopSize)

	// 비운 부위는 0으로 남는다
	assert.Zero(t, m.HipIn)
	assert.Zero(t, m.HipCm)
}

func TestMeasurementService_CreateMeasurement_NoRuleMatch(t *testing.T) {
	testDB, svc, member := setupMeasurementServiceTest(t)
	defer db.CleanupTestDB(testDB)

	// 가슴 34인치 = 86.4cm → 규칙 구간 밖이라 호칭을 비워 둔다
	m, err := svc.CreateMeasurement(&CreateMeasurementRequest{
		MemberID: member.ID,
		Chest:    "34",
	})
	require.NoError(t, err)
	assert.Equal(t, "", m.TopSize)
}

func TestMeasurementService_CreateMeasurement_InvalidNotation(t *testing.T) {
	testDB, svc, member := setupMeasurementServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.CreateMeasurement(&CreateMeasurementRequest{
		MemberID: member.ID,
		Chest:    "38 1/0",
	})
	assert.ErrorIs(t, err, ErrInvalidMeasureValue)
}

func TestMeasurementService_GetLatestMeasurement(t *testing.T) {
	testDB, svc, member := setupMeasurementServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.CreateMeasurement(&CreateMeasurementRequest{
		MemberID:    member.ID,
		MeasureDate: "2025-01-10",
		Chest:       "38",
	})
	require.NoError(t, err)
	_, err = svc.CreateMeasurement(&CreateMeasurementRequest{
		MemberID:    member.ID,
		MeasureDate: "2025-03-02",
		Chest:       "39",
	})
	require.NoError(t, err)

	latest, err := svc.GetLatestMeasurement(member.ID)
	require.NoError(t, err)
	assert.InDelta(t, 39.0, latest.ChestIn, 1e-9)
}
