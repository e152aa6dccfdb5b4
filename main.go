package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	auth "BM11/internal/auth"
	export "BM11/internal/calc/export"
	importer "BM11/internal/calc/importer"
	report "BM11/internal/calc/report"
	tetra "BM11/internal/calc/tetra"
	wind "BM11/internal/calc/wind"
	repo "BM11/internal/repo"
	scenario "BM11/internal/scenario"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	pgRepo := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatalln("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: pgRepo}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	tetraH := &tetra.Handler{}
	windH := &wind.Handler{}
	reportH := &report.Handler{}
	exportH := &export.Handler{}
	importH := &importer.Handler{}
	scenarioH := &scenario.Handler{Repo: pgRepo}

	secureApi.HandleFunc("/tools/tetra/calc", tetraH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/tetra/defaults", tetraH.Defaults).Methods("GET")
	secureApi.HandleFunc("/tools/wind/sweep", windH.Sweep).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/export/xlsx", exportH.Xlsx).Methods("POST")
	secureApi.HandleFunc("/tools/import/xlsx", importH.Batch).Methods("POST")

	secureApi.HandleFunc("/scenarios", scenarioH.Save).Methods("POST")
	secureApi.HandleFunc("/scenarios", scenarioH.List).Methods("GET")
	secureApi.HandleFunc("/scenarios/{id:[0-9]+}", scenarioH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Warnln("No .env file loaded:", err)
	}

	db := auth.InitDB()
	defer db.Close()

	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	certFile := os.Getenv("TLS_CERT")
	keyFile := os.Getenv("TLS_KEY")

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infoln("Starting server on", addr)
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Errorf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Infoln("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Infoln("Server stopped")

	wg.Wait()
}
