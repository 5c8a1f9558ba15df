package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

// Storage persists uploaded creative assets (banner images, spot videos)
// and returns the URL the players fetch them from.
type Storage interface {
	SaveCreative(fileHeader *multipart.FileHeader, filename string) (string, error)
}

type LocalStorage struct {
	creativeDir string
}

type SpacesStorage struct {
	client   *s3.S3
	bucket   string
	cdnURL   string
	endpoint string
}

func NewLocalStorage(creativeDir string) *LocalStorage {
	return &LocalStorage{creativeDir: creativeDir}
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client:   s3.New(sess),
		bucket:   bucket,
		cdnURL:   cdnURL,
		endpoint: endpoint,
	}, nil
}

// normalizeFilename strips characters the CDN and players choke on and
// appends a timestamp so re-uploads of the same creative never collide.
func normalizeFilename(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	baseName := strings.TrimSuffix(originalFilename, ext)

	baseName = strings.ReplaceAll(baseName, " ", "_")

	reg := regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	baseName = reg.ReplaceAllString(baseName, "")

	if baseName == "" {
		baseName = "creative"
	}

	timestamp := time.Now().Format("20060102_150405")

	return fmt.Sprintf("%s_%s%s", baseName, timestamp, ext)
}

func (ls *LocalStorage) SaveCreative(fileHeader *multipart.FileHeader, filename string) (string, error) {
	normalizedFilename := normalizeFilename(filename)
	log.Debug().Str("original", filename).Str("normalized", normalizedFilename).Msg("creative upload normalized")
	uploadPath := filepath.Join(ls.creativeDir, normalizedFilename)

	if err := os.MkdirAll(ls.creativeDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create creatives directory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(uploadPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return uploadPath, nil
}

func (ss *SpacesStorage) SaveCreative(fileHeader *multipart.FileHeader, filename string) (string, error) {
	normalizedFilename := normalizeFilename(filename)
	log.Debug().Str("original", filename).Str("normalized", normalizedFilename).Msg("creative upload normalized")

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("creatives/%s", normalizedFilename)

	contentType := getContentType(normalizedFilename)

	_, err = ss.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})

	if err != nil {
		log.Error().Err(err).Msg("failed to upload creative to Spaces")
		return "", fmt.Errorf("failed to upload to Spaces: %w", err)
	}

	cdnURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(ss.cdnURL, "/"), key)
	return cdnURL, nil
}

func getContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	default:
		return "application/octet-stream"
	}
}
