package seed

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"quizapi/internal/models"

	"github.com/aws/aws-sdk-go/aws"
	aws_s3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const twoQuizzes = `[
	{"title":"Go","questions":[{"text":"Q1","options":{"a":"1","b":"2","c":"3","d":"4"},"correct_option":"a"}]},
	{"title":"Rust","questions":[{"text":"Q1","options":{"a":"1","b":"2","c":"3","d":"4"},"correct_option":"b"}]}
]`

type fakeCreator struct {
	titles map[string]bool
	err    error
}

func (f *fakeCreator) CreateQuiz(_ context.Context, title string, _ []models.NewQuestion) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	if f.titles[title] {
		return primitive.NilObjectID, models.ErrQuizExists
	}
	f.titles[title] = true
	return primitive.NewObjectID(), nil
}

type fakeDownloader struct {
	s3manageriface.DownloaderAPI
	objects map[string]string
}

func (f *fakeDownloader) DownloadWithContext(_ aws.Context, w io.WriterAt, input *aws_s3.GetObjectInput, _ ...func(*s3manager.Downloader)) (int64, error) {
	body, ok := f.objects[aws.StringValue(input.Bucket)+"/"+aws.StringValue(input.Key)]
	if !ok {
		return 0, errors.New("NoSuchKey")
	}
	n, err := w.WriteAt([]byte(body), 0)
	return int64(n), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestRunFromFileSkipsDuplicates(t *testing.T) {
	store := &fakeCreator{titles: map[string]bool{"Rust": true}}
	seeder := New(store, nil, nil)

	report, err := seeder.Run(context.Background(), writeFile(t, twoQuizzes))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Created) != 1 || report.Created[0].Title != "Go" {
		t.Fatalf("created = %+v", report.Created)
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != "Rust" {
		t.Fatalf("skipped = %+v", report.Skipped)
	}
}

func TestRunReportsInvalidDefinitions(t *testing.T) {
	store := &fakeCreator{titles: map[string]bool{}}
	seeder := New(store, nil, nil)
	content := `[{"title":"","questions":[]},{"title":"Ok","questions":[{"text":"Q","options":{"a":"1","b":"2","c":"3","d":"4"},"correct_option":"d"}]}]`

	report, err := seeder.Run(context.Background(), writeFile(t, content))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Invalid) != 1 || report.Invalid[0].Index != 0 || report.Invalid[0].Reason != `"title" is required` {
		t.Fatalf("invalid = %+v", report.Invalid)
	}
	if len(report.Created) != 1 {
		t.Fatalf("created = %+v", report.Created)
	}
}

func TestRunFromS3AndHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"Web","questions":[{"text":"Q","options":{"a":"1","b":"2","c":"3","d":"4"},"correct_option":"c"}]}`))
	}))
	defer server.Close()

	store := &fakeCreator{titles: map[string]bool{}}
	downloader := &fakeDownloader{objects: map[string]string{"seeds/quizzes.json": twoQuizzes}}
	seeder := New(store, downloader, nil)

	report, err := seeder.Run(context.Background(), "s3://seeds/quizzes.json", server.URL+"/web.json")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Created) != 3 {
		t.Fatalf("created = %+v", report.Created)
	}
}

func TestRunErrors(t *testing.T) {
	seeder := New(&fakeCreator{titles: map[string]bool{}}, nil, nil)
	if _, err := seeder.Run(context.Background(), "s3://seeds/quizzes.json"); err == nil {
		t.Fatalf("expected error without downloader")
	}
	if _, err := seeder.Run(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := seeder.Run(context.Background(), writeFile(t, "  ")); err == nil {
		t.Fatalf("expected error for empty file")
	}

	boom := errors.New("boom")
	seeder = New(&fakeCreator{titles: map[string]bool{}, err: boom}, nil, nil)
	if _, err := seeder.Run(context.Background(), writeFile(t, twoQuizzes)); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
}
