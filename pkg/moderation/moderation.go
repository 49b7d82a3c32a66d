// Package moderation scans guild messages and their image attachments for
// blacklisted words and reports matches to a log channel.
//
// Text is classified inline. Images are downloaded, run through OCR and
// classified word by word on a bounded background Queue; a failing image
// scan is logged and dropped and never reaches the event that triggered it.
package moderation

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 64
	DefaultLanguage  = "eng"
)

type Config struct {
	LogChannelID snowflake.ID
	TessdataDir  string
	Language     string
	Workers      int
	QueueSize    int
	ExtraTerms   []string
}

// Enabled reports whether a log channel is configured. Without one the pipeline is not built.
func (c Config) Enabled() bool {
	return c.LogChannelID != 0
}

// ImagesEnabled reports whether OCR data is configured for image scans.
func (c Config) ImagesEnabled() bool {
	return c.TessdataDir != ""
}

type Attachment struct {
	URL         string
	Filename    string
	ContentType string
}

// IsImage trusts the content type and falls back to the file extension when
// Discord did not report one.
func (a Attachment) IsImage() bool {
	if a.ContentType != "" {
		return strings.HasPrefix(a.ContentType, "image/")
	}
	switch strings.ToLower(path.Ext(a.Filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

type Message struct {
	ID          snowflake.ID
	ChannelID   snowflake.ID
	AuthorID    snowflake.ID
	AuthorName  string
	ChannelName string
	Content     string
	Attachments []Attachment
}

type Pipeline struct {
	config     Config
	classifier Classifier
	reporter   Reporter
	images     *ImageScanner
	queue      *Queue
	logger     *slog.Logger
	now        func() time.Time
}

// New builds a pipeline. images and queue may be nil, which disables image scans.
func New(config Config, classifier Classifier, reporter Reporter, images *ImageScanner, queue *Queue, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		config:     config,
		classifier: classifier,
		reporter:   reporter,
		images:     images,
		queue:      queue,
		logger:     logger,
		now:        time.Now,
	}
}

// HandleMessage scans the text of msg and queues a scan for every attachment.
// Messages in the log channel are never scanned. Failures are only logged.
func (p *Pipeline) HandleMessage(ctx context.Context, msg Message) {
	if msg.ChannelID == p.config.LogChannelID {
		return
	}
	if _, err := p.ScanText(ctx, msg); err != nil {
		p.logger.Warn("becbot: error while reporting a flagged message",
			slog.Any("message.id", msg.ID),
			slog.Any("channel.id", msg.ChannelID),
			tint.Err(err))
	}
	if p.images == nil || p.queue == nil {
		return
	}
	for _, attachment := range msg.Attachments {
		if !attachment.IsImage() {
			continue
		}
		if !p.queue.Submit(func(ctx context.Context) error {
			return p.images.Scan(ctx, msg, attachment)
		}) {
			p.logger.Warn("becbot: image scan dropped", slog.Any("message.id", msg.ID), slog.String("attachment.url", attachment.URL))
		}
	}
}

// ScanText classifies the message content and reports it when flagged.
func (p *Pipeline) ScanText(ctx context.Context, msg Message) (bool, error) {
	if !p.classifier.IsFlagged(msg.Content) {
		return false, nil
	}
	return true, p.reporter.ReportText(ctx, TextReport{
		AuthorID:  msg.AuthorID,
		ChannelID: msg.ChannelID,
		Content:   msg.Content,
		Timestamp: p.now(),
	})
}

// Close waits for queued image scans to finish.
func (p *Pipeline) Close() {
	if p.queue == nil {
		return
	}
	if err := p.queue.Close(); err != nil {
		p.logger.Warn("becbot: image scans were dropped on shutdown", tint.Err(err))
	}
}
