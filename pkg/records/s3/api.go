/*
Package s3 implements a records.Backend using an AWS S3 bucket.
*/
package s3

import (
	"context"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type Config struct {
	Bucket       string `yaml:"bucket"`
	StorageClass string `yaml:"storage_class"` // Default: STANDARD.
}

type Backend struct {
	awsService   s3iface.S3API
	bucket       *string
	logger       log.DebugLogger
	storageClass *string
}

func New(awsSession *session.Session, config Config,
	logger log.DebugLogger) (*Backend, error) {
	return newBackend(awsSession, config, logger)
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	return b.delete(ctx, key)
}

// Get returns the object stored at key. A missing object yields an error
// wrapping ddns.ErrNotFound.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	return b.get(ctx, key)
}

func (b *Backend) List(ctx context.Context, prefix string) ([]string, error) {
	return b.list(ctx, prefix)
}

func (b *Backend) Put(ctx context.Context, key string, data []byte) error {
	return b.put(ctx, key, data)
}
