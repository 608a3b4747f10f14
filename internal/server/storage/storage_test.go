package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	headObjectErr   error
	deleteErr       error
	headBucketErr   error
	createBucketErr error

	createdBucket string
	deletedKey    string
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	return &s3.HeadObjectOutput{}, f.headObjectErr
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletedKey = aws.ToString(in.Key)
	return &s3.DeleteObjectOutput{}, f.deleteErr
}

func (f *fakeS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headBucketErr
}

func (f *fakeS3) CreateBucket(ctx context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.createdBucket = aws.ToString(in.Bucket)
	return &s3.CreateBucketOutput{}, f.createBucketErr
}

type fakePresigner struct {
	err         error
	lastPutType string
	lastKey     string
}

func (f *fakePresigner) PresignPutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastKey = aws.ToString(in.Key)
	f.lastPutType = aws.ToString(in.ContentType)
	return &v4.PresignedHTTPRequest{URL: "http://s3/put/" + f.lastKey}, nil
}

func (f *fakePresigner) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastKey = aws.ToString(in.Key)
	return &v4.PresignedHTTPRequest{URL: "http://s3/get/" + f.lastKey}, nil
}

func newTestStore(c *fakeS3, p *fakePresigner) *S3Store {
	return newS3Store(c, p, "contacts", 0, logging.Discard())
}

func TestPresign(t *testing.T) {
	p := &fakePresigner{}
	s := newTestStore(&fakeS3{}, p)
	require.Equal(t, 15*time.Minute, s.expires)

	url, err := s.PresignPut(context.Background(), "images/a.jpg", "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "http://s3/put/images/a.jpg", url)
	require.Equal(t, "image/jpeg", p.lastPutType)

	url, err = s.PresignGet(context.Background(), "images/a.jpg")
	require.NoError(t, err)
	require.Equal(t, "http://s3/get/images/a.jpg", url)

	p.err = errors.New("sign")
	_, err = s.PresignPut(context.Background(), "k", "image/png")
	require.ErrorContains(t, err, "presign put")
	_, err = s.PresignGet(context.Background(), "k")
	require.ErrorContains(t, err, "presign get")
}

func TestExists(t *testing.T) {
	c := &fakeS3{}
	s := newTestStore(c, &fakePresigner{})

	ok, err := s.Exists(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, ok)

	c.headObjectErr = &types.NotFound{}
	ok, err = s.Exists(context.Background(), "k")
	require.NoError(t, err)
	require.False(t, ok)

	c.headObjectErr = errors.New("network")
	_, err = s.Exists(context.Background(), "k")
	require.ErrorContains(t, err, "head object")
}

func TestDelete(t *testing.T) {
	c := &fakeS3{}
	s := newTestStore(c, &fakePresigner{})

	require.NoError(t, s.Delete(context.Background(), "images/a.jpg"))
	require.Equal(t, "images/a.jpg", c.deletedKey)

	c.deleteErr = errors.New("denied")
	require.ErrorContains(t, s.Delete(context.Background(), "k"), "delete object")
}

func TestEnsureBucket(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		c := &fakeS3{}
		require.NoError(t, newTestStore(c, &fakePresigner{}).EnsureBucket(context.Background()))
		require.Empty(t, c.createdBucket)
	})

	t.Run("missing is created", func(t *testing.T) {
		c := &fakeS3{headBucketErr: &types.NotFound{}}
		require.NoError(t, newTestStore(c, &fakePresigner{}).EnsureBucket(context.Background()))
		require.Equal(t, "contacts", c.createdBucket)
	})

	t.Run("already owned is fine", func(t *testing.T) {
		c := &fakeS3{headBucketErr: &types.NoSuchBucket{}, createBucketErr: &types.BucketAlreadyOwnedByYou{}}
		require.NoError(t, newTestStore(c, &fakePresigner{}).EnsureBucket(context.Background()))
	})

	t.Run("other head error", func(t *testing.T) {
		c := &fakeS3{headBucketErr: errors.New("forbidden")}
		require.Error(t, newTestStore(c, &fakePresigner{}).EnsureBucket(context.Background()))
	})
}

func TestNewS3Store(t *testing.T) {
	t.Run("bucket required", func(t *testing.T) {
		_, err := NewS3Store(context.Background(), S3Config{}, logging.Discard())
		require.Error(t, err)
	})

	t.Run("config error", func(t *testing.T) {
		orig := loadDefaultAWSConfig
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("cfg")
		}
		defer func() { loadDefaultAWSConfig = orig }()

		_, err := NewS3Store(context.Background(), S3Config{Bucket: "b"}, logging.Discard())
		require.ErrorContains(t, err, "failed to create AWS config")
	})

	t.Run("presigns path style urls", func(t *testing.T) {
		s, err := NewS3Store(context.Background(), S3Config{
			AccessKey:    "admin",
			SecretKey:    "secretpassword",
			Bucket:       "contacts",
			Region:       "us-east-1",
			BaseEndpoint: "http://127.0.0.1:9000",
		}, logging.Discard())
		require.NoError(t, err)

		url, err := s.PresignPut(context.Background(), "images/2024/1/1/a.jpg", "image/jpeg")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(url, "http://127.0.0.1:9000/contacts/images/2024/1/1/a.jpg?"), url)
		require.Contains(t, url, "X-Amz-Signature=")
	})
}
