package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sirupsen/logrus"
)

// R2Config holds the S3-compatible endpoint settings. Endpoint may be empty
// for plain AWS S3.
type R2Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// R2Client talks to Cloudflare R2 (or any S3-compatible store).
type R2Client struct {
	client    *s3.Client
	presigner *s3.PresignClient
}

func NewR2Client(ctx context.Context, cfg R2Config) (*R2Client, error) {
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &R2Client{
		client:    client,
		presigner: s3.NewPresignClient(client),
	}, nil
}

// PutIfAbsent writes body under bucket/key. The write is conditional on the
// key not existing yet; an existing object yields ErrDuplicatePath.
func (r *R2Client) PutIfAbsent(
	ctx context.Context,
	bucket string,
	key string,
	contentType string,
	body io.Reader,
) error {

	// the SDK needs a seekable body to compute the payload hash
	seeker, ok := body.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("read upload body: %w", err)
		}
		seeker = bytes.NewReader(data)
	}

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         seeker,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
		IfNoneMatch:  aws.String("*"),
	})
	if err != nil {
		if statusCode(err) == http.StatusPreconditionFailed {
			return ErrDuplicatePath
		}
		return fmt.Errorf("put %s: %w", objectName(bucket, key), err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": bucket,
		"key":    key,
	}).Info("object stored")

	return nil
}

// SignedURL returns a presigned GET url valid for ttl. The object must exist.
func (r *R2Client) SignedURL(
	ctx context.Context,
	bucket string,
	key string,
	ttl time.Duration,
) (string, error) {

	_, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) || statusCode(err) == http.StatusNotFound {
			return "", ErrObjectNotFound
		}
		return "", fmt.Errorf("head %s: %w", objectName(bucket, key), err)
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", objectName(bucket, key), err)
	}

	return req.URL, nil
}

func statusCode(err error) int {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode()
	}
	return 0
}
