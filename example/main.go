package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	fnbridge "github.com/go-fnbridge/fnbridge"
	cfg "github.com/go-fnbridge/fnbridge/config"
	"github.com/go-fnbridge/fnbridge/database"
	"github.com/go-fnbridge/fnbridge/example/guestbook"
	"github.com/go-fnbridge/fnbridge/logger"
	"github.com/go-fnbridge/fnbridge/platform"
	"github.com/go-fnbridge/fnbridge/validation"
)

type entryRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=64"`
	Message string `json:"message" validate:"required,min=1,max=500"`
}

func main() {
	if err := cfg.LoadConfig("./config.json"); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var db *database.DB
	if cfg.ConfigVar.Database.Type != "" {
		var err error
		db, err = database.ConnectFromConfig(cfg.ConfigVar.Database)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer db.Close()
	}

	svc := guestbook.NewService(db)
	log := logger.NewConsole(os.Stdout, logger.LevelDebug, true)

	handler, err := fnbridge.CreateRequestHandler(fnbridge.HandlerOptions{
		Handler: fnbridge.Adapt(newRouter(svc)),
		GetLoadContext: func(r platform.Request, _ platform.ResponseWriter) any {
			return map[string]any{"host": r.Host()}
		},
		Mode:   cfg.ConfigVar.App.Mode,
		Logger: log,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	srv, err := fnbridge.NewServer(fnbridge.Options{
		Config:  &cfg.ConfigVar,
		Handler: handler,
		Middlewares: []func(http.Handler) http.Handler{
			fnbridge.CORS(cfg.ConfigVar.Server.Cors),
			fnbridge.LoggerMiddleware,
		},
		ReadTimeout:  time.Duration(cfg.ConfigVar.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.ConfigVar.Server.WriteTimeoutSeconds) * time.Second,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRouter(svc *guestbook.Service) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/entries", func(w http.ResponseWriter, req *http.Request) {
		entries, err := svc.List(req.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal", "LIST_FAILED", err.Error(), nil)
			return
		}
		writeJSON(w, http.StatusOK, fnbridge.SuccessEnvelope{Status: "success", Data: entries})
	})

	r.Post("/entries", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "request", "BAD_FORM", err.Error(), nil)
			return
		}
		in := entryRequest{
			Name:    req.PostFormValue("name"),
			Message: req.PostFormValue("message"),
		}
		if err := validation.Validate(in); err != nil {
			fields := validation.FormatValidationErrors(err)
			writeError(w, http.StatusUnprocessableEntity, "validation", "INVALID_ENTRY", "entry is invalid", fields)
			return
		}
		entry, err := svc.Add(req.Context(), in.Name, in.Message)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal", "ADD_FAILED", err.Error(), nil)
			return
		}
		writeJSON(w, http.StatusCreated, fnbridge.SuccessEnvelope{Status: "success", Data: entry})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, _type, code, message string, fields []validation.FieldError) {
	eb := fnbridge.ErrorBody{Type: _type, Code: code, Message: message}
	for _, fe := range fields {
		eb.Fields = append(eb.Fields, fnbridge.ErrorDetail{Field: fe.Field, Code: fe.Code, Message: fe.Message})
	}
	writeJSON(w, status, fnbridge.ErrorEnvelope{Status: "error", Code: status, Error: eb})
}
