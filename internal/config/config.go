package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Shop      ShopConfig
	Currency  CurrencyConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Mongo     MongoConfig
	JWT       JWTConfig
	Auth      AuthConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
	Kafka     KafkaConfig
	UPI       UPIConfig
	Export    ExportConfig
	Chrome    ChromeConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type ShopConfig struct {
	Name     string
	Address  string
	Phone    string
	GSTIN    string
	Timezone string
}

// Location resolves the shop timezone, falling back to UTC
func (c *ShopConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown SHOP_TIMEZONE %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

type CurrencyConfig struct {
	Locale         string
	Code           string
	FallbackSymbol string
}

// StorageConfig selects the blob store driver: memory, file, postgres, redis or mongo
type StorageConfig struct {
	Driver   string
	FilePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

// AuthConfig holds the two fixed operator accounts
type AuthConfig struct {
	AdminUsername   string
	AdminPassword   string
	CashierUsername string
	CashierPassword string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrinterConfig struct {
	Type    string // usb, network or none
	USBPath string
	Address string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type UPIConfig struct {
	VPA       string
	PayeeName string
}

// ExportConfig controls archiving of CSV exports to an S3-compatible bucket
type ExportConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string
}

type ChromeConfig struct {
	Path    string
	Timeout time.Duration
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "snacksbunk-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("SHOP_NAME", "Snacks Bunk")
	viper.SetDefault("SHOP_ADDRESS", "")
	viper.SetDefault("SHOP_PHONE", "")
	viper.SetDefault("SHOP_GSTIN", "")
	viper.SetDefault("SHOP_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("CURRENCY_LOCALE", "en-IN")
	viper.SetDefault("CURRENCY_CODE", "INR")
	viper.SetDefault("CURRENCY_FALLBACK_SYMBOL", "₹")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("STORAGE_FILE_PATH", "./storage")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "snacksbunk")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY_PREFIX", "snacksbunk:")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "snacksbunk")
	viper.SetDefault("MONGO_COLLECTION", "blobs")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 12)
	viper.SetDefault("AUTH_ADMIN_USERNAME", "admin")
	viper.SetDefault("AUTH_ADMIN_PASSWORD", "admin123")
	viper.SetDefault("AUTH_CASHIER_USERNAME", "cashier")
	viper.SetDefault("AUTH_CASHIER_PASSWORD", "cashier123")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 10)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("KAFKA_BROKERS", []string{})
	viper.SetDefault("KAFKA_TOPIC", "snacksbunk.bills")
	viper.SetDefault("UPI_VPA", "")
	viper.SetDefault("UPI_PAYEE_NAME", "Snacks Bunk")
	viper.SetDefault("EXPORT_S3_BUCKET", "")
	viper.SetDefault("EXPORT_S3_REGION", "auto")
	viper.SetDefault("EXPORT_S3_ENDPOINT", "")
	viper.SetDefault("EXPORT_S3_ACCESS_KEY_ID", "")
	viper.SetDefault("EXPORT_S3_SECRET_ACCESS_KEY", "")
	viper.SetDefault("EXPORT_S3_PREFIX", "exports/")
	viper.SetDefault("CHROME_PATH", "")
	viper.SetDefault("CHROME_TIMEOUT_SECONDS", 30)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Shop: ShopConfig{
			Name:     viper.GetString("SHOP_NAME"),
			Address:  viper.GetString("SHOP_ADDRESS"),
			Phone:    viper.GetString("SHOP_PHONE"),
			GSTIN:    viper.GetString("SHOP_GSTIN"),
			Timezone: viper.GetString("SHOP_TIMEZONE"),
		},
		Currency: CurrencyConfig{
			Locale:         viper.GetString("CURRENCY_LOCALE"),
			Code:           viper.GetString("CURRENCY_CODE"),
			FallbackSymbol: viper.GetString("CURRENCY_FALLBACK_SYMBOL"),
		},
		Storage: StorageConfig{
			Driver:   viper.GetString("STORAGE_DRIVER"),
			FilePath: viper.GetString("STORAGE_FILE_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Addr:      viper.GetString("REDIS_ADDR"),
			Password:  viper.GetString("REDIS_PASSWORD"),
			DB:        viper.GetInt("REDIS_DB"),
			KeyPrefix: viper.GetString("REDIS_KEY_PREFIX"),
		},
		Mongo: MongoConfig{
			URI:        viper.GetString("MONGO_URI"),
			Database:   viper.GetString("MONGO_DATABASE"),
			Collection: viper.GetString("MONGO_COLLECTION"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Auth: AuthConfig{
			AdminUsername:   viper.GetString("AUTH_ADMIN_USERNAME"),
			AdminPassword:   viper.GetString("AUTH_ADMIN_PASSWORD"),
			CashierUsername: viper.GetString("AUTH_CASHIER_USERNAME"),
			CashierPassword: viper.GetString("AUTH_CASHIER_PASSWORD"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Kafka: KafkaConfig{
			Brokers: viper.GetStringSlice("KAFKA_BROKERS"),
			Topic:   viper.GetString("KAFKA_TOPIC"),
		},
		UPI: UPIConfig{
			VPA:       viper.GetString("UPI_VPA"),
			PayeeName: viper.GetString("UPI_PAYEE_NAME"),
		},
		Export: ExportConfig{
			Bucket:          viper.GetString("EXPORT_S3_BUCKET"),
			Region:          viper.GetString("EXPORT_S3_REGION"),
			Endpoint:        viper.GetString("EXPORT_S3_ENDPOINT"),
			AccessKeyID:     viper.GetString("EXPORT_S3_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("EXPORT_S3_SECRET_ACCESS_KEY"),
			Prefix:          viper.GetString("EXPORT_S3_PREFIX"),
		},
		Chrome: ChromeConfig{
			Path:    viper.GetString("CHROME_PATH"),
			Timeout: time.Duration(viper.GetInt("CHROME_TIMEOUT_SECONDS")) * time.Second,
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
