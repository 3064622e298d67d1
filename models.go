package main

import (
	"time"

	"github.com/google/uuid"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// errorKindDownload marks a resume that never reached extraction.
const errorKindDownload = "download_failed"

// ResumeSkills is the outcome for one resume. Either Skills is set or
// ErrorKind and Notice explain why not.
type ResumeSkills struct {
	ResumeID  uuid.UUID `json:"resume_id"`
	Filename  string    `json:"filename"`
	Skills    []string  `json:"skills"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Notice    string    `json:"notice,omitempty"`
}

// SessionUpdate is published on the updates exchange; results only travel
// here and are not stored.
type SessionUpdate struct {
	SessionID uuid.UUID      `json:"session_id"`
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Results   []ResumeSkills `json:"results,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
