package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	aws_s3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

type fakeDownloader struct {
	s3manageriface.DownloaderAPI
	body   []byte
	err    error
	bucket string
	key    string
}

func (f *fakeDownloader) DownloadWithContext(_ aws.Context, w io.WriterAt, input *aws_s3.GetObjectInput, _ ...func(*s3manager.Downloader)) (int64, error) {
	f.bucket = aws.StringValue(input.Bucket)
	f.key = aws.StringValue(input.Key)
	if f.err != nil {
		return 0, f.err
	}
	n, err := w.WriteAt(f.body, 0)
	return int64(n), err
}

func TestParseURL(t *testing.T) {
	bucket, key, err := ParseURL("s3://quiz-seeds/quizzes/general.json")
	if err != nil {
		t.Fatalf("ParseURL() error = %v", err)
	}
	if bucket != "quiz-seeds" || key != "quizzes/general.json" {
		t.Fatalf("got %q %q", bucket, key)
	}

	for _, bad := range []string{"https://x/y", "s3://bucket", "s3:///key"} {
		if _, _, err := ParseURL(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDownloadObject(t *testing.T) {
	d := &fakeDownloader{body: []byte(`{"title":"T1"}`)}

	got, err := DownloadObject(context.Background(), d, "bucket", "key.json")
	if err != nil {
		t.Fatalf("DownloadObject() error = %v", err)
	}
	if string(got) != `{"title":"T1"}` {
		t.Fatalf("body = %q", got)
	}
	if d.bucket != "bucket" || d.key != "key.json" {
		t.Fatalf("requested %q %q", d.bucket, d.key)
	}

	d.err = errors.New("access denied")
	if _, err := DownloadObject(context.Background(), d, "bucket", "key.json"); !errors.Is(err, d.err) {
		t.Fatalf("error = %v, want wrapped access denied", err)
	}
}

func TestCreateSession(t *testing.T) {
	sess, err := CreateSession(AWSConfig{Region: "eu-west-1", AccessKeyID: "id", AccessKeySecret: "secret", Endpoint: "http://localhost:9000"})
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if aws.StringValue(sess.Config.Region) != "eu-west-1" {
		t.Fatalf("region = %q", aws.StringValue(sess.Config.Region))
	}
	if !aws.BoolValue(sess.Config.S3ForcePathStyle) {
		t.Fatalf("expected path style addressing with a custom endpoint")
	}
}
