package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"arabica_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

// UploadGalleryImage pousse une image dans le bucket sous le préfixe donné
// (gallery/ ou menu/) et retourne son chemin objet
func UploadGalleryImage(prefix string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := fmt.Sprintf("%s/%d%s", prefix, time.Now().UnixNano(), filepath.Ext(file.Filename))

	_, err = database.MinIO.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return objectName, nil
}

// ListGalleryObjects liste les objets du bucket sous un préfixe
func ListGalleryObjects(ctx context.Context, prefix string) ([]string, error) {
	if database.MinIO == nil {
		return nil, fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	var names []string

	for object := range database.MinIO.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}
		names = append(names, object.Key)
	}

	return names, nil
}

// GenerateSignedURL génère une URL signée avec expiration pour un objet du bucket
func GenerateSignedURL(ctx context.Context, objectName string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	reqParams := make(url.Values)
	bucket := os.Getenv("MINIO_BUCKET")

	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, objectName, duration, reqParams)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
