// Package seed loads quiz definitions from files, URLs or S3 objects and
// creates them through the quiz store.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	s3 "quizapi/aws"
	"quizapi/internal/models"
	httpClient "quizapi/internal/utility/http"
	"quizapi/internal/validation"

	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Creator is the part of the quiz store seeding writes to.
type Creator interface {
	CreateQuiz(ctx context.Context, title string, questions []models.NewQuestion) (primitive.ObjectID, error)
}

type Seeder struct {
	store      Creator
	downloader s3manageriface.DownloaderAPI
	client     *httpClient.Client
}

// New returns a seeder. downloader may be nil when no s3:// sources are used.
func New(store Creator, downloader s3manageriface.DownloaderAPI, client *httpClient.Client) *Seeder {
	if client == nil {
		client = httpClient.NewHttpClient()
	}
	return &Seeder{store: store, downloader: downloader, client: client}
}

type CreatedQuiz struct {
	Title  string
	QuizID string
}

type InvalidQuiz struct {
	Source string
	Index  int
	Reason string
}

type Report struct {
	Created []CreatedQuiz
	Skipped []string
	Invalid []InvalidQuiz
}

// Run creates every quiz found in sources. Invalid definitions and duplicate
// titles are reported and skipped; any other store failure stops the run.
func (s *Seeder) Run(ctx context.Context, sources ...string) (Report, error) {
	var report Report
	for _, source := range sources {
		raw, err := s.read(ctx, source)
		if err != nil {
			return report, err
		}
		payloads, err := split(raw)
		if err != nil {
			return report, fmt.Errorf("%s: %w", source, err)
		}

		for i, payload := range payloads {
			var body validation.CreateQuizRequest
			if err := validation.DecodeBody(bytes.NewReader(payload), &body); err != nil {
				report.Invalid = append(report.Invalid, InvalidQuiz{Source: source, Index: i, Reason: err.Error()})
				continue
			}
			req, err := validation.CreateQuiz(body)
			if err != nil {
				report.Invalid = append(report.Invalid, InvalidQuiz{Source: source, Index: i, Reason: err.Error()})
				continue
			}

			id, err := s.store.CreateQuiz(ctx, req.Title, req.Questions)
			if errors.Is(err, models.ErrQuizExists) {
				report.Skipped = append(report.Skipped, req.Title)
				continue
			}
			if err != nil {
				return report, fmt.Errorf("create quiz %q: %w", req.Title, err)
			}
			log.Printf("seeded quiz %q (%s)", req.Title, id.Hex())
			report.Created = append(report.Created, CreatedQuiz{Title: req.Title, QuizID: id.Hex()})
		}
	}
	return report, nil
}

func (s *Seeder) read(ctx context.Context, source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "s3://"):
		if s.downloader == nil {
			return nil, fmt.Errorf("%s: no s3 downloader configured", source)
		}
		bucket, key, err := s3.ParseURL(source)
		if err != nil {
			return nil, err
		}
		return s3.DownloadObject(ctx, s.downloader, bucket, key)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return s.client.Get(ctx, source)
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		return data, nil
	}
}

// split accepts either a single quiz object or an array of them.
func split(raw []byte) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty quiz definition")
	}
	if raw[0] != '[' {
		return []json.RawMessage{raw}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode quiz list: %w", err)
	}
	return items, nil
}
