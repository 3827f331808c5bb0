package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"cloudnexus-backend/utilities"
)

// UploadResult contém os metadados de um upload concluído
type UploadResult struct {
	S3Key            string `json:"s3_key"`
	S3URL            string `json:"s3_url"`
	Bucket           string `json:"bucket"`
	OriginalFilename string `json:"original_filename"`
	UniqueFilename   string `json:"unique_filename"`
	ContentType      string `json:"content_type"`
}

// GenerateUniqueFilename gera um nome de arquivo único para evitar colisões:
// {timestamp UTC}_{8 caracteres aleatórios}_{nome original}. A extensão é
// separada no último ponto; sem ponto, o nome original é mantido inteiro.
func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	uniqueID := uuid.NewString()[:8]

	if idx := strings.LastIndex(originalFilename, "."); idx != -1 {
		name := originalFilename[:idx]
		ext := originalFilename[idx+1:]
		return fmt.Sprintf("%s_%s_%s.%s", timestamp, uniqueID, name, ext)
	}

	return fmt.Sprintf("%s_%s_%s", timestamp, uniqueID, originalFilename)
}

// UploadFile envia o conteúdo de um arquivo para o bucket sob o prefixo
// uploads/. O limite de tamanho é verificado antes de tocar no storage.
func (s *Storage) UploadFile(ctx context.Context, content []byte, originalFilename, contentType string) (*UploadResult, error) {
	if s.bucket == "" {
		return nil, ErrBucketNotSet
	}
	if len(content) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	uniqueFilename := GenerateUniqueFilename(originalFilename)
	key := "uploads/" + uniqueFilename

	utilities.LogDebug("Enviando arquivo para o object store: %s", key)

	opts := minio.PutObjectOptions{}
	if contentType != "" {
		opts.ContentType = contentType
	}

	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(content), int64(len(content)), opts)
	if err != nil {
		utilities.LogError(err, "Erro ao enviar arquivo para o object store")
		return nil, err
	}

	url := s.objectURL(key)
	utilities.LogInfo("Arquivo enviado com sucesso: %s", url)

	return &UploadResult{
		S3Key:            key,
		S3URL:            url,
		Bucket:           s.bucket,
		OriginalFilename: originalFilename,
		UniqueFilename:   uniqueFilename,
		ContentType:      contentType,
	}, nil
}

// DeleteFile remove um objeto do bucket pela chave
func (s *Storage) DeleteFile(ctx context.Context, key string) error {
	if s.bucket == "" {
		return ErrBucketNotSet
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		utilities.LogError(err, "Erro ao remover arquivo do object store")
		return err
	}

	utilities.LogInfo("Arquivo removido do object store: %s", key)
	return nil
}
