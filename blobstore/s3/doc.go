// Package s3 implements blobstore.Store on AWS S3, with an optional
// DynamoDB-backed commit store for tracking the latest snapshot of a
// series.
//
// S3 provides durable, immutable blobs but no compare-and-swap, so a
// plain Store cannot atomically answer "which snapshot is current?"
// under concurrent writers. CommitStore layers DynamoDB conditional
// writes on top: every Commit claims the next version number, and a
// losing racer gets ErrConcurrentCommit instead of silently clobbering
// the pointer.
package s3
