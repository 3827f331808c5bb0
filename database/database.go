package database

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"cloudnexus-backend/models"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

const (
	maxConnectRetries = 3
	retryBaseDelay    = time.Second
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// buildConnection monta o nome do driver e a string de conexão a partir
// das variáveis de ambiente. PostgreSQL é o padrão; MySQL é selecionado
// com DB_DRIVER=mysql.
func buildConnection() (driver string, connStr string) {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	name := getenv("DB_NAME", "cloudnexus")
	user := getenv("DB_USER", "postgres")
	pass := os.Getenv("DB_PASS")

	if os.Getenv("DB_DRIVER") == "mysql" {
		return "mysql", fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, name)
	}

	sslmode := getenv("DB_SSLMODE", "disable")
	return "postgres", fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

// ConnectPostgres abre a conexão com o banco de dados e configura o pool.
// A conexão inicial é tentada algumas vezes com backoff exponencial para
// tolerar instabilidade durante o start do banco.
func ConnectPostgres() (*sql.DB, error) {
	driver, connStr := buildConnection()

	var lastErr error
	for attempt := 0; attempt < maxConnectRetries; attempt++ {
		db, err := sql.Open(driver, connStr)
		if err != nil {
			log.Printf("Erro ao abrir conexão com o banco de dados: %v", err)
			return nil, err
		}

		// Testa a conexão
		if err = db.Ping(); err == nil {
			// Pool: 5 conexões base + 10 de overflow, recicladas a cada 5 minutos
			db.SetMaxIdleConns(5)
			db.SetMaxOpenConns(15)
			db.SetConnMaxLifetime(5 * time.Minute)

			log.Printf("Conectado ao banco de dados com sucesso na tentativa %d", attempt+1)
			return db, nil
		} else {
			lastErr = err
			db.Close()

			wait := retryBaseDelay * time.Duration(1<<attempt)
			log.Printf("Tentativa %d/%d de conexão ao banco falhou: %v. Nova tentativa em %v",
				attempt+1, maxConnectRetries, err, wait)

			if attempt < maxConnectRetries-1 {
				time.Sleep(wait)
			}
		}
	}

	log.Printf("Falha ao conectar ao banco de dados após %d tentativas", maxConnectRetries)
	return nil, lastErr
}

// InitSchema cria a tabela de tarefas caso ainda não exista
func InitSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`
	if os.Getenv("DB_DRIVER") == "mysql" {
		ddl = `CREATE TABLE IF NOT EXISTS tasks (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`
	}

	_, err := db.Exec(ddl)
	return err
}

// TestConnection executa uma query trivial e mede a latência do banco.
// Usado pelo endpoint /health.
func TestConnection(db *sql.DB) models.DatabaseStatus {
	start := time.Now()

	var one int
	if err := db.QueryRow("SELECT 1").Scan(&one); err != nil {
		return models.DatabaseStatus{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
	}

	latency := float64(time.Since(start).Microseconds()) / 1000.0
	return models.DatabaseStatus{
		Status:    "healthy",
		Database:  "connected",
		LatencyMs: math.Round(latency*100) / 100,
	}
}
