package main

import (
	"log/slog"
	"net/http"
	"os"

	ezdocu "github.com/Botopia-Tecnology/EZDocu-frontend-sub001"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/metrics"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			slog.Info("no .env file found, continuing with process environment")
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	app, err := ezdocu.New(ezdocu.WithLogger(logger))
	if err != nil {
		logger.Error("starting ezdocu", "err", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	gated := app.Routes(mux)

	// operational endpoints sit outside the gate
	root := http.NewServeMux()
	root.Handle("/metrics", metrics.Handler())
	root.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	root.Handle("/", gated)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, root); err != nil {
		logger.Error("http server failed", "err", err)
		os.Exit(1)
	}
}
