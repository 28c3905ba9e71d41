package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"expertise/cmd"
	httpin "expertise/internal/adapters/in/http"
	"expertise/internal/adapters/out/miniostore"
	"expertise/internal/adapters/out/payments"
	"expertise/internal/adapters/out/postgres/analysisrepo"
	"expertise/internal/adapters/out/postgres/commentrepo"
	"expertise/internal/adapters/out/postgres/documentrepo"
	"expertise/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	migrateDB(gormDB)

	documentStore := mustCreateDocumentStore(configs)
	paymentGateway := payments.NewGateway(configs.PaymentGatewayURL)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		documentStore,
		paymentGateway,
	)
	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:         goDotEnvVariable("JWT_SECRET"),
		S3Endpoint:        goDotEnvVariable("S3_ENDPOINT"),
		S3AccessKey:       goDotEnvVariable("S3_ACCESS_KEY"),
		S3SecretKey:       goDotEnvVariable("S3_SECRET_KEY"),
		S3Bucket:          goDotEnvVariable("S3_BUCKET"),
		S3Region:          goDotEnvVariable("S3_REGION"),
		S3UseSSL:          goDotEnvBool("S3_USE_SSL"),
		PaymentGatewayURL: goDotEnvVariable("PAYMENT_GATEWAY_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&analysisrepo.AnalysisDTO{},
		&documentrepo.DocumentDTO{},
		&commentrepo.CommentDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func mustCreateDocumentStore(configs cmd.Config) *miniostore.Store {
	store, err := miniostore.New(miniostore.Config{
		Endpoint:  configs.S3Endpoint,
		AccessKey: configs.S3AccessKey,
		SecretKey: configs.S3SecretKey,
		Bucket:    configs.S3Bucket,
		Region:    configs.S3Region,
		UseSSL:    configs.S3UseSSL,
	})
	if err != nil {
		log.Fatalf("Error creating document store: %v", err)
	}
	if err = store.EnsureBucket(context.Background()); err != nil {
		log.Fatalf("Error preparing document bucket: %v", err)
	}
	return store
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateSetStatusCommandHandler(),
		app.CreateSaveAnalysisCommandHandler(),
		app.CreateCompletePaymentCommandHandler(),
		app.CreateAddCommentCommandHandler(),
		app.CreateAttachDocumentsCommandHandler(),
		app.CreateGetClientOrdersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderDetailsQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
		app.CreateGetDocumentContentQueryHandler(),
	)

	api := e.Group("/api/v1", httpin.NewAuthMiddleware(configs.JWTSecret))
	server.RegisterRoutes(api)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
