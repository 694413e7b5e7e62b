package main

import (
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "svw.info/starbattle/internal/adapters/http"
	"svw.info/starbattle/internal/config"
	"svw.info/starbattle/internal/generator"
	"svw.info/starbattle/internal/hint"
	"svw.info/starbattle/internal/infrastructure/storage"
	"svw.info/starbattle/internal/ports"
	"svw.info/starbattle/internal/solver"
	"svw.info/starbattle/internal/usecase"
	"svw.info/starbattle/internal/validator"
	"svw.info/starbattle/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	addr := flag.String("addr", "", "listen address")
	persist := flag.String("persist-path", "", "save directory (or badger database path)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error")
	solverKind := flag.String("solver", "", "solver to use: backtrack|sat")
	storageKind := flag.String("storage", "", "storage backend: fs|badger")
	timeoutSec := flag.String("solve-timeout", "", "per-solve wall-clock budget in seconds")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			slog.Error("config", "err", err)
			os.Exit(1)
		}
	}
	// Flags set on the command line beat the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "persist-path":
			cfg.PersistPath = *persist
		case "log-level":
			cfg.LogLevel = *levelStr
		case "solver":
			cfg.Solver = *solverKind
		case "storage":
			cfg.Storage = *storageKind
		case "solve-timeout":
			if v, err := strconv.Atoi(*timeoutSec); err == nil {
				cfg.SolveTimeoutSec = v
			}
		}
	})

	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	// Choose solver: propagation+backtracking by default, SAT via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(cfg.Solver)) {
	case "sat":
		s = solver.NewSATSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}

	// Choose storage backend.
	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(cfg.Storage)) {
	case "badger":
		bs, err := storage.NewBadger(cfg.PersistPath)
		if err != nil {
			logger.Error("badger open", "path", cfg.PersistPath, "err", err)
			os.Exit(1)
		}
		defer bs.Close()
		st = bs
	default:
		_ = os.MkdirAll(cfg.PersistPath, 0o755)
		st = storage.NewFS(cfg.PersistPath)
	}

	// Wire providers → use cases → HTTP adapter
	g := generator.NewKnownSolution(s)
	v := validator.New()
	hin := hint.NewForced()
	uc := usecase.NewService(s, g, v, hin, st)
	h := httpadapter.New(uc, time.Duration(cfg.SolveTimeoutSec)*time.Second)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		"addr", cfg.Addr,
		"persist", cfg.PersistPath,
		"solver", cfg.Solver,
		"storage", cfg.Storage,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
