package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"booklist/internal/httpx"
	"booklist/internal/platform/googlebooks"
	"booklist/internal/store"
	"booklist/internal/web"

	"github.com/gorilla/handlers"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const maxFormBytes = 1 << 20

func main() {
	_ = godotenv.Load(".env")

	serverAddress := ":" + getEnv("PORT", "3000")
	databaseURL := mustGetEnv("DATABASE_URL")
	booksBaseURL := getEnv("GOOGLE_BOOKS_URL", "")
	allowedOrigins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",")

	dbPool := mustOpenDB(databaseURL)
	defer dbPool.Close()

	bookStore := store.NewBookPG(dbPool)
	booksClient := googlebooks.NewClient(booksBaseURL, "booklist/1.0", 2)
	handler := web.NewHandler(bookStore, booksClient)

	router := handler.Routes()

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
	)

	chain := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(
			httpx.RecoveryMiddleware(
				httpx.SecurityHeadersMiddleware(
					httpx.RequestSizeLimitMiddleware(maxFormBytes)(
						cors(
							httpx.MethodOverrideMiddleware(router)))))))

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      chain,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", serverAddress)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Fatalf("missing required environment variable: %s", key)
	return ""
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
