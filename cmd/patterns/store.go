package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hupe1980/gopatterns/blobstore"
	minioblob "github.com/hupe1980/gopatterns/blobstore/minio"
	s3blob "github.com/hupe1980/gopatterns/blobstore/s3"
	"github.com/hupe1980/gopatterns/internal/config"
)

// openStore builds the blob store the export section points at.
func openStore(ctx context.Context, cfg config.ExportConfig) (blobstore.Store, error) {
	var store blobstore.Store

	switch cfg.Backend {
	case "memory":
		store = blobstore.NewMemoryStore()
	case "local":
		store = blobstore.NewLocalStore(cfg.Path)
	case "s3":
		var optFns []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			optFns = append(optFns, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		store = s3blob.NewStore(awss3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix)
	case "minio":
		client, err := minioblob.NewClient(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Secure)
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		ms := minioblob.NewStore(client, cfg.Bucket, cfg.Prefix)
		if err := ms.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("minio bucket %q: %w", cfg.Bucket, err)
		}
		store = ms
	default:
		return nil, fmt.Errorf("unknown export backend %q", cfg.Backend)
	}

	if cfg.CacheBytes > 0 {
		store = blobstore.NewCachingStore(store, cfg.CacheBytes)
	}
	return store, nil
}
