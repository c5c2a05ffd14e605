// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. This package uses the
// official MinIO Go client library, so it also works against Ceph, SeaweedFS
// and Garage.
//
// # Basic Usage
//
//	client, err := minioblob.NewClient("localhost:9000", "minioadmin", "minioadmin", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "reports/")
//	if err := store.EnsureBucket(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Features
//
//   - Works with any S3-compatible storage
//   - Air-gap friendly (no AWS dependencies required)
package minio
