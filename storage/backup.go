package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/minio/minio-go/v7"

	"cloudnexus-backend/models"
	"cloudnexus-backend/utilities"
)

// BackupResult contém os metadados de um backup concluído
type BackupResult struct {
	S3Key           string `json:"s3_key"`
	S3URL           string `json:"s3_url"`
	Bucket          string `json:"bucket"`
	RecordCount     int    `json:"record_count"`
	BackupTimestamp string `json:"backup_timestamp"`
}

// BackupInfo descreve um arquivo de backup existente no bucket
type BackupInfo struct {
	Key          string    `json:"key"`
	SizeBytes    int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
}

type backupEnvelope struct {
	BackupTimestamp string        `json:"backup_timestamp"`
	TableName       string        `json:"table_name"`
	RecordCount     int           `json:"record_count"`
	Data            []models.Task `json:"data"`
}

// buildBackupDocument monta o documento JSON do backup com os metadados
func buildBackupDocument(tasks []models.Task, tableName string, timestamp time.Time) ([]byte, string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}

	envelope := backupEnvelope{
		BackupTimestamp: timestamp.Format(time.RFC3339),
		TableName:       tableName,
		RecordCount:     len(tasks),
		Data:            tasks,
	}

	content, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return content, envelope.BackupTimestamp, nil
}

// CreateBackup serializa as tarefas em JSON e grava o snapshot no bucket
// sob o prefixo backups/. Não há retry: uma falha do storage é propagada.
func (s *Storage) CreateBackup(ctx context.Context, tasks []models.Task, tableName string) (*BackupResult, error) {
	if s.bucket == "" {
		return nil, ErrBucketNotSet
	}
	if tableName == "" {
		tableName = "tasks"
	}

	now := time.Now().UTC()
	content, backupTimestamp, err := buildBackupDocument(tasks, tableName, now)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("backups/%s_backup_%s.json", tableName, now.Format("20060102_150405"))
	utilities.LogDebug("Criando backup: %s (%d registros)", key, len(tasks))

	_, err = s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		utilities.LogError(err, "Erro ao criar backup no object store")
		return nil, err
	}

	url := s.objectURL(key)
	utilities.LogInfo("Backup criado com sucesso: %s", url)

	return &BackupResult{
		S3Key:           key,
		S3URL:           url,
		Bucket:          s.bucket,
		RecordCount:     len(tasks),
		BackupTimestamp: backupTimestamp,
	}, nil
}

// ListBackups lista os backups existentes no bucket, mais recentes primeiro
func (s *Storage) ListBackups(ctx context.Context, maxItems int) ([]BackupInfo, error) {
	if s.bucket == "" {
		return nil, ErrBucketNotSet
	}
	if maxItems <= 0 || maxItems > 100 {
		maxItems = 100
	}

	opts := minio.ListObjectsOptions{
		Prefix:    "backups/",
		Recursive: true,
	}

	backups := []BackupInfo{}
	for object := range s.client.ListObjects(ctx, s.bucket, opts) {
		if object.Err != nil {
			utilities.LogError(object.Err, "Erro ao listar backups no object store")
			return nil, object.Err
		}

		backups = append(backups, BackupInfo{
			Key:          object.Key,
			SizeBytes:    object.Size,
			LastModified: object.LastModified,
		})
		if len(backups) >= maxItems {
			break
		}
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].LastModified.After(backups[j].LastModified)
	})

	return backups, nil
}
