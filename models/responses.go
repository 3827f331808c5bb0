package models

// DatabaseStatus é o resultado do teste de conectividade com o banco
type DatabaseStatus struct {
	Status    string  `json:"status"`
	Database  string  `json:"database"`
	LatencyMs float64 `json:"latency_ms,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// HealthResponse é a resposta do endpoint /health
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Database  DatabaseStatus `json:"database"`
	Version   string         `json:"version"`
}

// UploadResponse é a resposta do endpoint /upload
type UploadResponse struct {
	Success          bool   `json:"success"`
	S3URL            string `json:"s3_url"`
	OriginalFilename string `json:"original_filename"`
	Message          string `json:"message"`
}

// BackupResponse é a resposta do endpoint /backup
type BackupResponse struct {
	Success         bool   `json:"success"`
	S3URL           string `json:"s3_url"`
	RecordCount     int    `json:"record_count"`
	BackupTimestamp string `json:"backup_timestamp"`
	Message         string `json:"message"`
}
