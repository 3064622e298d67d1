package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/skillworker/internal/database"
	"github.com/muhammadolammi/skillworker/internal/resume"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

type sessionStore interface {
	GetResumesBySession(ctx context.Context, sessionID uuid.UUID) ([]database.Resume, error)
	UpdateSessionStatus(ctx context.Context, arg database.UpdateSessionStatusParams) error
}

type objectFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

type updatePublisher interface {
	Publish(ctx context.Context, update SessionUpdate) error
}

// SessionProcessor turns one session message into skill lists for each of
// its resumes. Retrying downloads is its job; extraction is never retried.
type SessionProcessor struct {
	Store     sessionStore
	Objects   objectFetcher
	Updates   updatePublisher
	Extractor *resume.Extractor
	Parser    *resume.Parser

	DownloadAttempts int
	RetryWait        time.Duration
}

var errMalformedMessage = errors.New("malformed session message")

// Handle processes a raw queue message. A malformed body is reported without
// touching any session. When ctx is cancelled mid-session the session goes
// back to pending and the context error is returned so the message can be
// requeued; no partial results are published.
func (p *SessionProcessor) Handle(ctx context.Context, body []byte) error {
	// the session row is the message: id, user_id, created_at, status
	var session database.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return fmt.Errorf("%w: %v", errMalformedMessage, err)
	}
	if session.ID == uuid.Nil {
		return fmt.Errorf("%w: missing session id", errMalformedMessage)
	}

	p.setStatus(ctx, session.ID, StatusProcessing, "skill extraction started", nil)

	results, err := p.extractSession(ctx, session)
	// final updates must land even when shutdown cancelled ctx
	final := context.WithoutCancel(ctx)
	switch {
	case isInterrupted(err):
		p.setStatus(final, session.ID, StatusPending, "skill extraction interrupted", nil)
		return err
	case err != nil:
		p.setStatus(final, session.ID, StatusFailed, "skill extraction failed", nil)
		return err
	}

	p.setStatus(final, session.ID, StatusCompleted, "skill extraction completed", results)
	return nil
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// setStatus records the status and announces it. Both are best effort: a lost
// update must not abort the remaining work.
func (p *SessionProcessor) setStatus(ctx context.Context, sessionID uuid.UUID, status, message string, results []ResumeSkills) {
	err := p.Store.UpdateSessionStatus(ctx, database.UpdateSessionStatusParams{
		Status: status,
		ID:     sessionID,
	})
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID.String()).Str("status", status).Msg("failed to update session status")
	}

	update := SessionUpdate{
		SessionID: sessionID,
		Status:    status,
		Message:   message,
		Results:   results,
		Timestamp: time.Now(),
	}
	if err := p.Updates.Publish(ctx, update); err != nil {
		log.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to publish update")
	}
}

func (p *SessionProcessor) extractSession(ctx context.Context, session database.Session) ([]ResumeSkills, error) {
	resumes, err := p.Store.GetResumesBySession(ctx, session.ID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("error getting resumes for session %s: %w", session.ID, err)
	}

	results := make([]ResumeSkills, 0, len(resumes))
	for _, r := range resumes {
		result := p.extractResume(ctx, r)
		// a download cut short by shutdown is not a result
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	log.Info().Str("session_id", session.ID.String()).Int("resumes", len(resumes)).Msg("session extracted")
	return results, nil
}

func (p *SessionProcessor) extractResume(ctx context.Context, r database.Resume) ResumeSkills {
	result := ResumeSkills{
		ResumeID: r.ID,
		Filename: r.OriginalFilename,
		Skills:   []string{},
	}
	logger := log.With().Str("resume_id", r.ID.String()).Str("object_key", r.ObjectKey).Logger()

	// unsupported types are rejected before anything is downloaded
	if resume.ParseContentType(r.Mime) == resume.KindUnsupported {
		result.ErrorKind = resume.UnsupportedFormat.String()
		result.Notice = resume.Notice(resume.UnsupportedFormat)
		logger.Warn().Str("mime", r.Mime).Msg("unsupported resume type")
		return result
	}

	data, err := retry(ctx, p.DownloadAttempts, p.RetryWait, func() ([]byte, error) {
		return p.Objects.Fetch(ctx, r.ObjectKey)
	})
	if err != nil {
		result.ErrorKind = errorKindDownload
		result.Notice = "We could not load this file. Please upload it again."
		logger.Warn().Err(err).Msg("failed to download resume")
		return result
	}

	skills, err := resume.Process(p.Extractor, p.Parser, data, r.Mime)
	if err != nil {
		kind := resume.KindOf(err)
		result.ErrorKind = kind.String()
		result.Notice = resume.Notice(kind)
		logger.Warn().Err(err).Str("kind", kind.String()).Msg("skill extraction failed")
		return result
	}
	result.Skills = skills
	logger.Debug().Int("skills", len(skills)).Msg("skills extracted")
	return result
}

// worker consumes session messages until ctx is cancelled or the broker
// closes the delivery channel.
func (p *SessionProcessor) worker(ctx context.Context, id int, rabbitmqURL, queue string) error {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return fmt.Errorf("worker %d: error dialling rabbitmq: %w", id, err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("worker %d: error opening rabbitmq channel: %w", id, err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable (survives broker restarts)
		false, // auto-delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("worker %d: failed to declare queue: %w", id, err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("worker %d: failed to set qos: %w", id, err)
	}

	msgs, err := ch.Consume(
		queue,
		fmt.Sprintf("skillworker-%d", id),
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("worker %d: error consuming rabbitmq messages: %w", id, err)
	}

	logger := log.With().Int("worker", id).Logger()
	logger.Info().Str("queue", queue).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("worker stopping")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("worker %d: delivery channel closed", id)
			}
			settle(logger, msg, p.Handle(ctx, msg.Body))
		}
	}
}

type delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// settle acks handled sessions, requeues interrupted ones and drops messages
// that can never be processed.
func settle(logger zerolog.Logger, msg delivery, err error) {
	var settleErr error
	switch {
	case isInterrupted(err):
		logger.Warn().Err(err).Msg("session interrupted, requeueing")
		settleErr = msg.Nack(false, true)
	case errors.Is(err, errMalformedMessage):
		logger.Error().Err(err).Msg("dropping message")
		settleErr = msg.Nack(false, false)
	case err != nil:
		logger.Error().Err(err).Msg("session failed")
		settleErr = msg.Ack(false)
	default:
		settleErr = msg.Ack(false)
	}
	if settleErr != nil {
		logger.Error().Err(settleErr).Msg("failed to settle message")
	}
}

// StartConsumerWorkerPool runs numWorkers consumers and blocks until they all
// return. The first worker error cancels the rest.
func (p *SessionProcessor) StartConsumerWorkerPool(ctx context.Context, numWorkers int, rabbitmqURL, queue string) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range numWorkers {
		g.Go(func() error {
			return p.worker(gctx, i+1, rabbitmqURL, queue)
		})
	}
	return g.Wait()
}
