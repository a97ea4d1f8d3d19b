package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"contenthub/internal/config"
	apphttp "contenthub/internal/http"
	"contenthub/internal/httpx"
	"contenthub/internal/library"
	"contenthub/internal/platform/drive"
	"contenthub/internal/platform/openlibrary"
	"contenthub/internal/prefs"
	"contenthub/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	dbPool := mustOpenDB(cfg.DatabaseDSN)
	defer dbPool.Close()

	bookRepository := store.NewBookPG(dbPool)
	postRepository := store.NewPostPG(dbPool)
	noteRepository := store.NewNotePG(dbPool)
	todoRepository := store.NewTodoPG(dbPool)
	projectRepository := store.NewProjectPG(dbPool)

	driveClient := drive.NewClient(cfg.DriveAPIKey, 5, 2)
	coverClient := openlibrary.NewClient("contenthub/1.0", 5, 2)
	libraryService := library.NewService(driveClient, coverClient, library.Config{
		APIKey:       cfg.DriveAPIKey,
		FolderID:     cfg.DriveFolderID,
		CoverTimeout: cfg.CoverTimeout,
		DemoRatings:  cfg.DemoRatings,
	})

	prefsService := prefs.NewService(
		prefs.NewPGStore(dbPool),
		prefs.NewFileStore(cfg.ThemeFallbackPath),
	)

	bookHandler := apphttp.NewBookHandler(bookRepository)
	postHandler := apphttp.NewPostHandler(postRepository)
	noteHandler := apphttp.NewNoteHandler(noteRepository)
	todoHandler := apphttp.NewTodoHandler(todoRepository)
	projectHandler := apphttp.NewProjectHandler(projectRepository)
	libraryHandler := apphttp.NewLibraryHandler(libraryService)
	prefsHandler := apphttp.NewPrefsHandler(prefsService)
	dashboardHandler := apphttp.NewDashboardHandler(
		todoRepository, noteRepository, postRepository, bookRepository, projectRepository)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /v1/books", bookHandler.List)
	router.HandleFunc("GET /v1/books/stats", bookHandler.Stats)
	router.HandleFunc("GET /v1/posts", postHandler.List)
	router.HandleFunc("GET /v1/posts/stats", postHandler.Stats)
	router.HandleFunc("GET /v1/posts/{slug}", postHandler.GetBySlug)
	router.HandleFunc("GET /v1/notes", noteHandler.List)
	router.HandleFunc("GET /v1/notes/stats", noteHandler.Stats)
	router.HandleFunc("GET /v1/todos", todoHandler.List)
	router.HandleFunc("GET /v1/todos/stats", todoHandler.Stats)
	router.HandleFunc("GET /v1/projects", projectHandler.List)
	router.HandleFunc("GET /v1/projects/stats", projectHandler.Stats)
	router.HandleFunc("GET /v1/library/books", libraryHandler.List)
	router.HandleFunc("GET /v1/dashboard/stats", dashboardHandler.Stats)
	router.HandleFunc("GET /v1/preferences/theme", prefsHandler.GetTheme)
	router.HandleFunc("PUT /v1/preferences/theme", prefsHandler.SetTheme)

	handler := httpx.RequestIDMiddleware(httpx.AccessLogMiddleware(httpx.RecoveryMiddleware(router)))

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
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
	u, err := url.Parse(dsn)
	if err != nil {
		return "invalid DSN"
	}
	return u.Redacted()
}
