// Command seed creates quizzes from JSON definitions.
//
//	seed quizzes.json https://example.com/quiz.json s3://bucket/quizzes.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	s3 "quizapi/aws"
	"quizapi/internal/config"
	"quizapi/internal/database"
	"quizapi/internal/seed"
	httpClient "quizapi/internal/utility/http"

	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

func main() {
	envFile := flag.String("env", ".env", "env file to load")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-env file] source...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	config.SetupEnv(*envFile)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Error connecting to mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	var downloader s3manageriface.DownloaderAPI
	for _, source := range flag.Args() {
		if strings.HasPrefix(source, "s3://") {
			sess, err := s3.CreateSession(s3.AWSConfig{
				AccessKeyID:     cfg.AWS.AccessKeyID,
				AccessKeySecret: cfg.AWS.AccessKeySecret,
				Region:          cfg.AWS.Region,
				Endpoint:        cfg.AWS.Endpoint,
			})
			if err != nil {
				log.Fatalf("Error creating aws session: %v", err)
			}
			downloader = s3.NewDownloader(sess)
			break
		}
	}

	seeder := seed.New(database.NewQuizStore(db, cfg.Transactions), downloader, httpClient.NewHttpClient())
	report, err := seeder.Run(ctx, flag.Args()...)
	for _, invalid := range report.Invalid {
		log.Printf("invalid quiz %s[%d]: %s", invalid.Source, invalid.Index, invalid.Reason)
	}
	for _, title := range report.Skipped {
		log.Printf("skipped existing quiz %q", title)
	}
	log.Printf("created %d quizzes", len(report.Created))
	if err != nil {
		log.Fatalf("Error seeding quizzes: %v", err)
	}
}
