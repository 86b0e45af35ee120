// Package storage reads site artefacts (rendered preview pages, compiled
// content snapshots) by key from S3 or from a local directory.
//
//	store, err := storage.New(ctx, storage.Config{Driver: "s3", Bucket: "sites", Region: "eu-west-1"})
//	page, err := store.Get(ctx, "abc123/home.html")
//	if errors.Is(err, storage.ErrNotFound) {
//		// no such page
//	}
//
// Keys are slash-separated relative paths; keys escaping the root are
// rejected with ErrInvalidKey.
package storage
