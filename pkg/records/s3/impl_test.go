package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Cloud-Foundations/Dominator/lib/log/testlogger"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
)

type testService struct {
	s3iface.S3API
	objects      map[string][]byte
	storageClass string
	contentType  string
}

func (s *testService) DeleteObjectWithContext(ctx aws.Context,
	input *s3.DeleteObjectInput,
	opts ...request.Option) (*s3.DeleteObjectOutput, error) {
	delete(s.objects, *input.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (s *testService) GetObjectWithContext(ctx aws.Context,
	input *s3.GetObjectInput,
	opts ...request.Option) (*s3.GetObjectOutput, error) {
	data, ok := s.objects[*input.Key]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "missing", nil)
	}
	return &s3.GetObjectOutput{
		Body: io.NopCloser(bytes.NewReader(data)),
	}, nil
}

func (s *testService) ListObjectsV2PagesWithContext(ctx aws.Context,
	input *s3.ListObjectsV2Input,
	fn func(*s3.ListObjectsV2Output, bool) bool,
	opts ...request.Option) error {
	output := &s3.ListObjectsV2Output{}
	for key := range s.objects {
		if strings.HasPrefix(key, *input.Prefix) {
			output.Contents = append(output.Contents,
				&s3.Object{Key: aws.String(key)})
		}
	}
	fn(output, true)
	return nil
}

func (s *testService) PutObjectWithContext(ctx aws.Context,
	input *s3.PutObjectInput,
	opts ...request.Option) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	s.objects[*input.Key] = data
	s.storageClass = aws.StringValue(input.StorageClass)
	s.contentType = aws.StringValue(input.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func makeBackend(t *testing.T) (*Backend, *testService) {
	service := &testService{objects: make(map[string][]byte)}
	return &Backend{
		awsService:   service,
		bucket:       aws.String("ddns-bucket"),
		logger:       testlogger.New(t),
		storageClass: aws.String("STANDARD_IA"),
	}, service
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(nil, Config{}, testlogger.New(t)); err == nil {
		t.Fatal("expected failure without bucket")
	}
}

func TestPutGetListDelete(t *testing.T) {
	ctx := context.Background()
	backend, service := makeBackend(t)
	if err := backend.Put(ctx, "EC2/i-123/instance",
		[]byte("{}")); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "STANDARD_IA", service.storageClass)
	assert.Equal(t, contentType, service.contentType)
	data, err := backend.Get(ctx, "EC2/i-123/instance")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "{}", string(data))
	keys, err := backend.List(ctx, "EC2/")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"EC2/i-123/instance"}, keys)
	if err := backend.Delete(ctx, "EC2/i-123/instance"); err != nil {
		t.Fatal(err)
	}
	_, err = backend.Get(ctx, "EC2/i-123/instance")
	assert.True(t, errors.Is(err, ddns.ErrNotFound))
}
