package storage

import (
	"context"
	"net/url"
	"strings"
	"time"

	"codexrfa-service/internal/app/config"
	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type mediaStorage struct {
	MinioClient *minio.Client
	BucketName  string
	PresignExp  time.Duration
}

func NewMediaStorage(minioClient *minio.Client, driverConfig *config.DriverConfig) contracts.MediaStorage {
	return &mediaStorage{
		MinioClient: minioClient,
		BucketName:  driverConfig.Minio.BucketName,
		PresignExp:  time.Duration(driverConfig.Minio.PresignExpHours) * time.Hour,
	}
}

// PresignEducationMedia resolves an education media object key into a
// time-limited URL. Keys that are already absolute URLs pass through
// untouched, so catalogs may mix bucket objects and external links.
func (m *mediaStorage) PresignEducationMedia(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", nil
	}
	if strings.HasPrefix(objectKey, "http://") || strings.HasPrefix(objectKey, "https://") {
		return objectKey, nil
	}

	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectKey, m.PresignExp, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
