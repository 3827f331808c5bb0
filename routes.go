package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"cloudnexus-backend/handlers"
	"cloudnexus-backend/utilities"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func LoadRoutes(h *handlers.Handler) {
	r := mux.NewRouter()

	// Aplicar o middleware de logging global em todas as rotas
	r.Use(handlers.LoggingMiddleware)

	// --- Health check ---
	r.HandleFunc("/health", h.HealthHandler).Methods("GET")

	// --- Rotas de tarefas ---
	r.HandleFunc("/items", h.GetItemsHandler).Methods("GET")
	r.HandleFunc("/items", h.CreateItemHandler).Methods("POST")
	r.HandleFunc("/items/{id}", h.GetItemHandler).Methods("GET")

	// --- Rotas de storage ---
	r.HandleFunc("/upload", h.UploadHandler).Methods("POST")
	r.HandleFunc("/backup", h.BackupHandler).Methods("POST")
	r.HandleFunc("/backups", h.ListBackupsHandler).Methods("GET")

	// Configuração do CORS
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ORIGINS não definida, permitindo todas as origens ('*'). Defina para maior segurança em produção.")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)
	utilities.LogInfo("Configurando CORS com origens permitidas: %v", allowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins)(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Servidor iniciado na porta %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
