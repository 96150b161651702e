package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/cache"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/config"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/handler"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/repository"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/service"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/telegram"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Загрузка конфигурации приложения
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Подключение к PostgreSQL
	db, err := sql.Open("postgres", fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	))
	if err != nil {
		logger.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	// Проверка соединения с БД
	if err := db.Ping(); err != nil {
		logger.Fatalf("Ошибка проверки соединения с БД: %v", err)
	}

	// Инициализация репозиториев
	logger.Info("Инициализация репозиториев...")
	chartRepo := repository.NewChartRepository(db, logger)
	subRepo := repository.NewSubscriptionRepository(db, logger)

	cacheConfig := cache.Config{
		MaxEntries: cfg.CacheMaxEntries,
		TTL:        cfg.CacheTTL,
	}
	chartCache := cache.New(cacheConfig)
	pairCache := cache.New(cacheConfig)

	// Инициализация сервисов
	logger.Info("Инициализация сервисов...")
	var almanacClient *service.AlmanacClient
	if cfg.AlmanacURL != "" {
		almanacClient = service.NewAlmanacClient(cfg.AlmanacURL, logger)
	}

	chartService := service.NewChartService(chartRepo, chartCache, logger)
	horoscopeService := service.NewHoroscopeService(almanacClient, logger)
	compatService, err := service.NewCompatibilityService(pairCache, cfg.PrecomputeMatrix, logger)
	if err != nil {
		logger.Fatalf("Ошибка инициализации сервиса совместимости: %v", err)
	}
	emailSender := service.NewEmailSender(logger)

	// Telegram-бот опционален: без токена рассылка идёт только по email
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var messenger service.Messenger
	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, subRepo, chartService, horoscopeService, compatService, logger)
		if err != nil {
			logger.Fatalf("Ошибка инициализации Telegram-бота: %v", err)
		}
		messenger = bot
		go bot.Start(ctx)
	}

	dispatchService := service.NewDispatchService(subRepo, chartService, horoscopeService, emailSender, messenger, logger)

	// Инициализация HTTP обработчиков
	logger.Info("Инициализация обработчиков API...")
	chartHandler := handler.NewChartHandler(chartService, logger)
	horoscopeHandler := handler.NewHoroscopeHandler(chartService, horoscopeService, logger)
	compatHandler := handler.NewCompatibilityHandler(compatService, logger)
	almanacHandler := handler.NewAlmanacHandler(logger)
	subHandler := handler.NewSubscriptionHandler(subRepo, logger)

	// Настройка маршрутизатора
	router := mux.NewRouter()
	apiRouter := router.PathPrefix("/api").Subrouter()

	chartRouter := apiRouter.PathPrefix("/charts").Subrouter()
	chartHandler.RegisterRoutes(chartRouter)

	horoscopeRouter := apiRouter.PathPrefix("/horoscopes").Subrouter()
	horoscopeHandler.RegisterRoutes(horoscopeRouter)

	compatRouter := apiRouter.PathPrefix("/compatibility").Subrouter()
	compatHandler.RegisterRoutes(compatRouter)

	almanacRouter := apiRouter.PathPrefix("/almanac").Subrouter()
	almanacHandler.RegisterRoutes(almanacRouter)

	subRouter := apiRouter.PathPrefix("/subscriptions").Subrouter()
	subHandler.RegisterRoutes(subRouter)

	// Настройка планировщика ежедневной рассылки
	logger.Info("Настройка планировщика рассылки гороскопов...")
	c := cron.New()
	_, err = c.AddFunc(cfg.DispatchSchedule, func() {
		dispatchService.DispatchDaily(context.Background())
	})
	if err != nil {
		logger.Fatalf("Ошибка настройки планировщика: %v", err)
	}
	c.Start()

	// Настройка и запуск HTTP сервера
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Infof("Запуск сервера на порту :%s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание сигналов для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Завершение работы сервера...")
	cancel()
	c.Stop()
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Errorf("Ошибка при завершении работы сервера: %v", err)
	}
	logger.Info("Сервер успешно остановлен")
}
