package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/streadway/amqp"
)

// retry calls fn up to attempts times with linear backoff, giving up early
// when ctx is done.
func retry[T any](ctx context.Context, attempts int, wait time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait * time.Duration(i+1)):
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// --- File Download ---

func DownloadFromR2(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

type r2Fetcher struct {
	client *s3.Client
	bucket string
}

func newR2Fetcher(cfg aws.Config, r2 R2Config) *r2Fetcher {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2.AccountID))
	})
	return &r2Fetcher{client: client, bucket: r2.Bucket}
}

func (f *r2Fetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	return DownloadFromR2(ctx, f.client, f.bucket, key)
}

// --- Session updates ---

type amqpPublisher struct {
	conn     *amqp.Connection
	exchange string
}

func declareUpdatesExchange(conn *amqp.Connection, exchange string) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
}

func (p *amqpPublisher) Publish(_ context.Context, update SessionUpdate) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal session update: %w", err)
	}
	routingKey := fmt.Sprintf("session.%s", update.SessionID)

	return ch.Publish(
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   update.Timestamp,
			Body:        body,
		},
	)
}
