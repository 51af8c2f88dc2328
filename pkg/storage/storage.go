package storage

// ObjectStore holds uploaded journal and murmuration media. The disk
// implementation mirrors the deployment layout; an S3-style backend can be
// swapped in behind the same interface.
type ObjectStore interface {
	Put(name string, data []byte) error
	Delete(name string) error
	URL(name string) string
}
