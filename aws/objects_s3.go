package s3

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	aws_s3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

type AWSConfig struct {
	AccessKeyID     string
	AccessKeySecret string
	Region          string
	Endpoint        string
}

// CreateSession builds a session from static keys when they are set and falls
// back to the SDK's default credential chain otherwise.
func CreateSession(awsConfig AWSConfig) (*session.Session, error) {
	cfg := aws.NewConfig()
	if awsConfig.Region != "" {
		cfg = cfg.WithRegion(awsConfig.Region)
	}
	if awsConfig.AccessKeyID != "" && awsConfig.AccessKeySecret != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(awsConfig.AccessKeyID, awsConfig.AccessKeySecret, ""))
	}
	if awsConfig.Endpoint != "" {
		cfg = cfg.WithEndpoint(awsConfig.Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	return sess, nil
}

func NewDownloader(sess *session.Session) s3manageriface.DownloaderAPI {
	return s3manager.NewDownloader(sess)
}

// ParseURL splits an s3://bucket/key location.
func ParseURL(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("not an s3 url: %s", location)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("s3 url needs a bucket and a key: %s", location)
	}
	return u.Host, key, nil
}

// DownloadObject reads a whole object into memory.
func DownloadObject(ctx context.Context, downloader s3manageriface.DownloaderAPI, bucket, key string) ([]byte, error) {
	buf := aws.NewWriteAtBuffer([]byte{})
	_, err := downloader.DownloadWithContext(ctx, buf, &aws_s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("download s3://%s/%s: %w", bucket, key, err)
	}
	return buf.Bytes(), nil
}
