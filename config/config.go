package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Shop     ShopConfig
	S3       S3Config
	CORS     CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ShopConfig 매장 운영 설정
type ShopConfig struct {
	TargetYear      int    // 납품달력 기준 연도
	DataCleanDir    string // 변환 결과 xlsx 출력 폴더
	ReportDir       string // 분석 리포트 출력 폴더
	FilledFormDir   string // 작성된 주문서 PDF 폴더
	FormTemplate    string // 고객상담 양식 배경 이미지 (A4 PNG)
	FormFont        string // PDF용 한글 TTF 경로 (비어 있으면 기본 폰트)
	DeliveryCalFile string // 납품달력 원본 xlsx (cmd/transform 기본 입력)
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "elburim"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Shop: ShopConfig{
			TargetYear:      getEnvInt("SHOP_TARGET_YEAR", time.Now().Year()),
			DataCleanDir:    getEnv("SHOP_DATA_CLEAN_DIR", "./data_clean"),
			ReportDir:       getEnv("SHOP_REPORT_DIR", "./reports"),
			FilledFormDir:   getEnv("SHOP_FILLED_FORM_DIR", "./data_members/filled_forms"),
			FormTemplate:    getEnv("SHOP_FORM_TEMPLATE", "./data_members/measure_images/elburim_customer_service.png"),
			FormFont:        getEnv("SHOP_FORM_FONT", ""),
			DeliveryCalFile: getEnv("SHOP_DELIVERY_CAL_FILE", "./data_raw/납품달력.xlsx"),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "ap-northeast-2"),
			Bucket:          getEnv("AWS_S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %s, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
