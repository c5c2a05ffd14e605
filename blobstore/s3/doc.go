// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	client := awss3.NewFromConfig(cfg)
//	store := s3.NewStore(client, "my-bucket", "reports/")
//
//	w := report.NewWriter(store)
//
// # Features
//
//   - Multipart uploads for large reports
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
