package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options: параметры подключения к S3 или совместимому хранилищу.
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // пусто: AWS
	AccessKey string // пусто: стандартная цепочка учётных данных
	SecretKey string
	PublicURL string // CDN или прямой адрес бакета
}

// PutObjectAPI: часть s3.Client, которой пользуется S3Storage.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage кладёт изображения в бакет.
type S3Storage struct {
	client    PutObjectAPI
	bucket    string
	publicURL string
}

// NewS3Storage создаёт клиент S3. С Endpoint используется path-style адресация.
func NewS3Storage(ctx context.Context, opt S3Options) (*S3Storage, error) {
	if opt.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is empty")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opt.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opt.Region))
	}
	if opt.AccessKey != "" && opt.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opt.AccessKey, opt.SecretKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := strings.TrimRight(opt.Endpoint, "/")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimRight(opt.PublicURL, "/")
	if publicURL == "" {
		switch {
		case endpoint != "":
			publicURL = endpoint + "/" + opt.Bucket
		case opt.Region != "":
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opt.Bucket, opt.Region)
		default:
			publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", opt.Bucket)
		}
	}
	return NewS3StorageWithClient(client, opt.Bucket, publicURL), nil
}

// NewS3StorageWithClient собирает S3Storage поверх готового клиента.
func NewS3StorageWithClient(client PutObjectAPI, bucket, publicURL string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

func (s *S3Storage) Save(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", s.bucket, key, err)
	}
	return s.publicURL + "/" + key, nil
}
