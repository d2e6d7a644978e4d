package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vncsmyrnk/votepage/internal/adapters/handler/http"
	"github.com/vncsmyrnk/votepage/internal/app"
	"github.com/vncsmyrnk/votepage/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pageService, closeStore, err := app.NewPageService(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	handler := http.NewHandler(http.NewPageHandler(pageService))
	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
