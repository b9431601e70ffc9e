package db

import (
	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Member{},
		&model.Consultation{},
		&model.Measurement{},
		&model.WorkOrder{},
		&model.DeliveryEntry{},
		&model.DeliveryOrder{},
		&model.StockItem{},
		&model.StockMovement{},
		&model.SizeRule{},
		&model.FormField{},
		&model.ReportRun{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

func seedInitialData() error {
	if err := seedSizeRules(); err != nil {
		return err
	}
	return seedFormFields()
}

// seedSizeRules 상의호칭 기본 규칙 (설정에서 수정 가능)
func seedSizeRules() error {
	var count int64
	if err := DB.Model(&model.SizeRule{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("Seeding default size rules...")

	rules := []model.SizeRule{
		{ChestMinCm: 92, ChestMaxCm: 95, TopSize: "K48"},
		{ChestMinCm: 96, ChestMaxCm: 99, TopSize: "K50"},
		{ChestMinCm: 100, ChestMaxCm: 103, TopSize: "K52"},
		{ChestMinCm: 104, ChestMaxCm: 107, TopSize: "K54"},
	}
	for _, rule := range rules {
		if err := DB.Create(&rule).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedFormFields 고객상담 양식 좌표 기본값.
// 좌표는 A4 포인트 기준이라 설정 API에서 숫자만 바꾸면 된다.
func seedFormFields() error {
	var count int64
	if err := DB.Model(&model.FormField{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("Seeding default form field coordinates...")

	fields := []model.FormField{
		{FieldKey: "성명", X: 90, Y: 770},
		{FieldKey: "생년월일", X: 260, Y: 770},
		{FieldKey: "주소", X: 90, Y: 735},
		{FieldKey: "HP", X: 90, Y: 700},
		{FieldKey: "주문일", X: 120, Y: 660},
		{FieldKey: "가봉일", X: 260, Y: 660},
		{FieldKey: "납품일", X: 400, Y: 660},
		{FieldKey: "주문금액", X: 470, Y: 770},
		{FieldKey: "선금", X: 470, Y: 740},
		{FieldKey: "잔금", X: 470, Y: 710},
		{FieldKey: "원단코드", X: 480, Y: 610},
		{FieldKey: "원단설명", X: 90, Y: 610},
		{FieldKey: "주문내역", X: 90, Y: 560},
	}
	for _, f := range fields {
		if err := DB.Create(&f).Error; err != nil {
			return err
		}
	}
	return nil
}
