package moderation

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultMaxAttachmentSize = 25 << 20

var errAttachmentTooLarge = errors.New("attachment too large")

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Word struct {
	Text string
	Box  image.Rectangle
}

type Recognizer interface {
	Words(image []byte) ([]Word, error)
}

type ImageScanner struct {
	fetcher    Fetcher
	recognizer Recognizer
	classifier Classifier
	reporter   Reporter
	now        func() time.Time
}

func NewImageScanner(fetcher Fetcher, recognizer Recognizer, classifier Classifier, reporter Reporter) *ImageScanner {
	return &ImageScanner{
		fetcher:    fetcher,
		recognizer: recognizer,
		classifier: classifier,
		reporter:   reporter,
		now:        time.Now,
	}
}

// Scan downloads the attachment, classifies every recognized word and reports
// an annotated copy of the image when any word is flagged.
func (s *ImageScanner) Scan(ctx context.Context, msg Message, attachment Attachment) error {
	data, err := s.fetcher.Fetch(ctx, attachment.URL)
	if err != nil {
		return fmt.Errorf("downloading attachment: %w", err)
	}
	words, err := s.recognizer.Words(data)
	if err != nil {
		return fmt.Errorf("recognizing text: %w", err)
	}
	var (
		found []string
		boxes []image.Rectangle
	)
	for _, word := range words {
		text := strings.TrimSpace(word.Text)
		if text == "" || !s.classifier.IsFlagged(text) {
			continue
		}
		found = append(found, text)
		boxes = append(boxes, word.Box)
	}
	if len(found) == 0 {
		return nil
	}
	annotated, err := Annotate(data, boxes)
	if err != nil {
		return fmt.Errorf("annotating image: %w", err)
	}
	return s.reporter.ReportImage(ctx, ImageReport{
		AuthorID:    msg.AuthorID,
		AuthorName:  msg.AuthorName,
		ChannelID:   msg.ChannelID,
		ChannelName: msg.ChannelName,
		FoundWords:  found,
		Image:       annotated,
		Timestamp:   s.now(),
	})
}

type HTTPFetcher struct {
	Client   *http.Client
	MaxBytes int64
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	rs, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer rs.Body.Close()
	if rs.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", rs.StatusCode)
	}
	limit := f.MaxBytes
	if limit <= 0 {
		limit = defaultMaxAttachmentSize
	}
	data, err := io.ReadAll(io.LimitReader(rs.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errAttachmentTooLarge
	}
	return data, nil
}
