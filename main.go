package main

import (
	"log"
	"os"
	"strings"

	"cloudnexus-backend/database"
	"cloudnexus-backend/handlers"
	"cloudnexus-backend/storage"
	"cloudnexus-backend/utilities"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente do processo")
	}

	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	// A criação do schema é opcional: pode já ter sido feita no deploy
	if err := database.InitSchema(db); err != nil {
		utilities.LogError(err, "Inicialização do schema ignorada")
	}

	store, err := storage.New()
	if err != nil {
		log.Fatalf("Erro ao criar cliente do object store: %v", err)
	}

	debug := strings.ToLower(os.Getenv("DEBUG")) == "true"
	h := handlers.NewHandler(db, store, debug)

	LoadRoutes(h)
}
