// @title           Record Book API
// @version         1.0
// @description     Student record book backend.
// @description     Provides user authentication and record CRUD.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения Record Book.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - обязательную проверку включённого TLS (сервер работает только по HTTPS);
//   - инициализацию подключения к базе данных и управление его жизненным циклом;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск фоновой очистки просроченных отозванных токенов;
//   - настройку и запуск HTTPS-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/api"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/config"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-record-book/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/repository"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/service"
	"github.com/IvanChernomyrdin/go-record-book/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-record-book/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}
	// хочу только https
	if !cfg.TLS.Enabled {
		sugar.Fatal("tls must be enabled")
	}
	// подключаем базу данных
	if err := config.Init(cfg.DB.DSN); err != nil {
		sugar.Fatal(err)
	}

	db := config.GetDB()
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	// создаём репы
	repos := service.Repositories{
		Users:   repository.NewUsersRepository(db),
		Records: repository.NewRecordsRepository(db),
		Tokens:  repository.NewTokensRepository(db),
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// проверка токенов для защищённых маршрутов
	verifier := middleware.NewJWTVerifier(svc.Tokens)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier)
	// создаём роутер
	router := h.NewRouter(handler)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// фоновая очистка revoked_tokens, чтобы таблица не росла бесконечно
	g.Go(func() error {
		svc.Tokens.RunJanitor(ctx, func(deleted int64, err error) {
			if err != nil {
				sugar.Errorf("revoked tokens sweep failed: %v", err)
				return
			}
			if deleted > 0 {
				sugar.Infof("revoked tokens sweep: deleted %d expired rows", deleted)
			}
		})
		return nil
	})

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		if err := server.ListenAndServeTLS(
			cfg.TLS.CertFile,
			cfg.TLS.KeyFile,
		); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
