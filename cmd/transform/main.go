package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/elburim/elburim-backend/config"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/app/service"
	"github.com/elburim/elburim-backend/internal/db"
)

// 납품달력 xlsx를 한 번에 변환하는 배치 도구.
// 서버 없이 연초 데이터 정리를 돌릴 때 쓴다.
func main() {
	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	filePath := flag.String("file", cfg.Shop.DeliveryCalFile, "납품달력 xlsx 경로")
	year := flag.Int("year", cfg.Shop.TargetYear, "주문 연도")
	flag.Parse()

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	deliveryRepo := repository.NewDeliveryRepository(db.GetDB())
	calendarService := service.NewCalendarService(deliveryRepo, cfg.Shop.DataCleanDir)

	fmt.Printf("Transforming delivery calendar: %s (year %d)\n", *filePath, *year)

	summary, err := calendarService.TransformFile(*filePath, *year)
	if err != nil {
		log.Fatal("Transform failed:", err)
	}

	fmt.Println("Transform completed.")
	fmt.Printf("  entries:    %d\n", summary.EntryCount)
	fmt.Printf("  orders:     %d\n", summary.OrderCount)
	fmt.Printf("  unresolved: %d\n", summary.UnresolvedCount)
	if len(summary.Collisions) > 0 {
		fmt.Printf("  collisions: %v\n", summary.Collisions)
	}
	fmt.Printf("  flat file:  %s\n", summary.FlatFile)
	fmt.Printf("  order file: %s\n", summary.OrdersFile)
}
