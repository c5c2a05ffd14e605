// Package report persists clustering results.
//
// A report is a self-describing blob: a small binary header naming the codec
// and compression used, followed by the encoded Snapshot. Any blobstore.Store
// can hold reports, so the same Writer serves local directories, S3 and MinIO.
//
//	w := report.NewWriter(store, report.WithCompression(compress.ZSTD))
//	n, err := w.Write(ctx, "euclidean.report", result)
//	snap, err := w.Read(ctx, "euclidean.report")
package report
