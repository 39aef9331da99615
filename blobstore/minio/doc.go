// Package minio implements blobstore.Store for MinIO and other
// S3-compatible object stores via the MinIO Go client.
//
// Use this backend for self-hosted object storage; for AWS itself
// prefer the s3 package, which supports the DynamoDB commit store.
package minio
