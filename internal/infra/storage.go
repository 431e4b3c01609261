package infra

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	appconfig "github.com/The-Menufy/Menufy-Backend-sub000/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MediaStore uploads images to an S3-compatible blob store (R2, MinIO, S3).
type MediaStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewMediaStore(ctx context.Context, cfg *appconfig.Config) (*MediaStore, error) {
	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.MediaAccessKey, cfg.MediaSecretKey, ""),
		),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{
							URL:           cfg.MediaEndpoint,
							SigningRegion: "auto",
						}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("media: load aws config: %w", err)
	}

	return &MediaStore{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.MediaBucket,
		baseURL: strings.TrimRight(cfg.MediaBaseURL, "/"),
	}, nil
}

// Upload stores a multipart file under "<scope>/<uuid><ext>" and returns the
// public URL and the object key.
func (m *MediaStore) Upload(ctx context.Context, scope string, file *multipart.FileHeader) (string, string, error) {
	f, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("media: open upload: %w", err)
	}
	defer f.Close()

	key := fmt.Sprintf("%s/%s%s", scope, uuid.NewString(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &m.bucket,
		Key:         &key,
		Body:        f,
		ContentType: &contentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("media: put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", m.baseURL, key), key, nil
}
