// Package storage encapsula o acesso ao object store (S3 ou compatível)
// para upload de arquivos e backups em JSON.
package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	ErrBucketNotSet = errors.New("variável de ambiente S3_BUCKET não está definida")
	ErrFileTooLarge = errors.New("arquivo muito grande: o tamanho máximo é 10MB")
)

// MaxFileSize é o limite de upload (10 MiB)
const MaxFileSize = 10 * 1024 * 1024

type Storage struct {
	client *minio.Client
	bucket string
	region string
}

// New cria o cliente do object store a partir das variáveis de ambiente
// AWS_REGION, S3_BUCKET e S3_ENDPOINT. O bucket pode estar vazio: nesse
// caso as operações falham com ErrBucketNotSet quando forem chamadas.
func New() (*Storage, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	if endpoint == "" {
		endpoint = "s3.amazonaws.com"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewEnvAWS(),
		Secure: true,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do object store: %w", err)
	}

	return &Storage{
		client: client,
		bucket: os.Getenv("S3_BUCKET"),
		region: region,
	}, nil
}

// objectURL monta a URL pública de um objeto no bucket
func (s *Storage) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
