package artifact

import (
	"bytes"
	"context"
	"fmt"

	"github.com/AFSHAL-7/trustlens/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"k8s.io/klog/v2"
)

// Store 原始上传件归档存储
type Store interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
}

// MinioStore 基于对象存储的归档实现
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore 创建归档存储，未配置 Endpoint 时返回 nil（关闭归档）
func NewMinioStore(cfg config.ArtifactConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact client: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// Save 写入一个归档对象
func (s *MinioStore) Save(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", key, err)
	}
	klog.V(6).Infof("归档上传件成功: bucket=%s, key=%s, size=%d", s.bucket, key, len(data))
	return nil
}
