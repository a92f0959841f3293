package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"saveur_back_end/internal/database"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadFoodImage pousse une photo de plat vers MinIO et retourne son URL publique.
func UploadFoodImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	bucket := os.Getenv("MINIO_BUCKET")

	// Nom unique pour éviter d'écraser une photo existante
	objectName := fmt.Sprintf("foods/%s_%d%s", uuid.NewString(), time.Now().Unix(), filepath.Ext(fileHeader.Filename))

	_, err = database.MinIO.PutObject(
		ctx,
		bucket,
		objectName,
		file,
		fileHeader.Size,
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")},
	)
	if err != nil {
		return "", err
	}

	publicBase := os.Getenv("MINIO_PUBLIC_URL")
	if publicBase == "" {
		publicBase = fmt.Sprintf("http://%s", os.Getenv("MINIO_ENDPOINT"))
	}
	return fmt.Sprintf("%s/%s/%s", publicBase, bucket, objectName), nil
}
