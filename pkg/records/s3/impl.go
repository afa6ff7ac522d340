package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const contentType = "application/json"

func newBackend(awsSession *session.Session, config Config,
	logger log.DebugLogger) (*Backend, error) {
	if config.Bucket == "" {
		return nil, errors.New("no S3 bucket specified")
	}
	if awsSession == nil {
		return nil, errors.New("no AWS session specified")
	}
	b := &Backend{
		awsService: s3.New(awsSession),
		bucket:     aws.String(config.Bucket),
		logger:     logger,
	}
	if config.StorageClass != "" {
		b.storageClass = aws.String(config.StorageClass)
	}
	return b, nil
}

func isNotFound(err error) bool {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchKey, "NotFound":
			return true
		}
	}
	return false
}

func (b *Backend) delete(ctx context.Context, key string) error {
	_, err := b.awsService.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: b.bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3:DeleteObject: %s: %s", key, err)
	}
	b.logger.Debugf(1, "deleted s3://%s/%s\n", *b.bucket, key)
	return nil
}

func (b *Backend) get(ctx context.Context, key string) ([]byte, error) {
	output, err := b.awsService.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: b.bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("s3://%s/%s: %w", *b.bucket, key,
				ddns.ErrNotFound)
		}
		return nil, fmt.Errorf("s3:GetObject: %s: %s", key, err)
	}
	defer output.Body.Close()
	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading s3://%s/%s: %s",
			*b.bucket, key, err)
	}
	b.logger.Debugf(1, "read s3://%s/%s\n", *b.bucket, key)
	return data, nil
}

func (b *Backend) list(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := b.awsService.ListObjectsV2PagesWithContext(ctx,
		&s3.ListObjectsV2Input{
			Bucket: b.bucket,
			Prefix: aws.String(prefix),
		},
		func(output *s3.ListObjectsV2Output, last bool) bool {
			for _, object := range output.Contents {
				keys = append(keys, aws.StringValue(object.Key))
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("s3:ListObjectsV2: %s: %s", prefix, err)
	}
	return keys, nil
}

func (b *Backend) put(ctx context.Context, key string, data []byte) error {
	_, err := b.awsService.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Body:         bytes.NewReader(data),
		Bucket:       b.bucket,
		ContentType:  aws.String(contentType),
		Key:          aws.String(key),
		StorageClass: b.storageClass,
	})
	if err != nil {
		return fmt.Errorf("s3:PutObject: %s: %s", key, err)
	}
	b.logger.Debugf(1, "wrote s3://%s/%s\n", *b.bucket, key)
	return nil
}
