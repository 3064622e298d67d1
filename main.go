package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	_ "github.com/lib/pq"
	"github.com/muhammadolammi/skillworker/internal/config"
	"github.com/muhammadolammi/skillworker/internal/database"
	"github.com/muhammadolammi/skillworker/internal/resume"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid LOG_LEVEL")
	}
	zerolog.SetGlobalLevel(level)

	// run owns every connection, so its deferred cleanup has finished before
	// a failure exits non-zero here
	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("worker stopped")
	}
	log.Info().Msg("shutdown complete")
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		return fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("error reaching db: %w", err)
	}

	r2Config := R2Config{
		AccountID: cfg.R2AccountID,
		AccessKey: cfg.R2AccessKey,
		SecretKey: cfg.R2SecretKey,
		Bucket:    cfg.R2Bucket,
	}
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return fmt.Errorf("error creating aws config: %w", err)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}
	defer conn.Close()
	if err := declareUpdatesExchange(conn, cfg.UpdatesExchange); err != nil {
		return fmt.Errorf("failed to declare updates exchange %s: %w", cfg.UpdatesExchange, err)
	}

	extractor := resume.NewExtractor(resume.ExtractorOptions{PDFDebug: cfg.PDFDebug})
	extractor.Init()

	processor := &SessionProcessor{
		Store:     database.New(db),
		Objects:   newR2Fetcher(awsConfig, r2Config),
		Updates:   &amqpPublisher{conn: conn, exchange: cfg.UpdatesExchange},
		Extractor: extractor,
		Parser: resume.NewParser(resume.ParserOptions{
			StopAtHeading:    cfg.SkillsStopAtHeading,
			StrictSeparators: cfg.SkillsStrictSeparators,
		}),
		DownloadAttempts: cfg.DownloadAttempts,
		RetryWait:        500 * time.Millisecond,
	}

	log.Info().Int("workers", cfg.WorkerCount).Str("queue", cfg.SessionsQueue).Msg("starting consumer pool")
	if err := processor.StartConsumerWorkerPool(ctx, cfg.WorkerCount, cfg.RabbitMQURL, cfg.SessionsQueue); err != nil {
		return fmt.Errorf("consumer pool stopped: %w", err)
	}
	return nil
}
