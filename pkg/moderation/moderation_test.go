package moderation

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const logChannelID = snowflake.ID(900)

type recordingReporter struct {
	mu     sync.Mutex
	texts  []TextReport
	images []ImageReport
	err    error
}

func (r *recordingReporter) ReportText(_ context.Context, report TextReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, report)
	return r.err
}

func (r *recordingReporter) ReportImage(_ context.Context, report ImageReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images = append(r.images, report)
	return r.err
}

type staticFetcher map[string][]byte

func (f staticFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	data, ok := f[url]
	if !ok {
		return nil, errors.New("404")
	}
	return data, nil
}

type staticRecognizer []Word

func (r staticRecognizer) Words([]byte) ([]Word, error) {
	return r, nil
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestPipeline(t *testing.T, reporter *recordingReporter, fetcher Fetcher, recognizer Recognizer) (*Pipeline, *Queue) {
	t.Helper()
	classifier := NewProfanityClassifier([]string{"frobnicate"}, false)
	queue := NewQueue(context.Background(), 2, 8, nil)
	t.Cleanup(queue.Close)
	scanner := NewImageScanner(fetcher, recognizer, classifier, reporter)
	config := Config{LogChannelID: logChannelID, TessdataDir: "/usr/share/tessdata"}
	return New(config, classifier, reporter, scanner, queue, nil), queue
}

func TestScanTextClean(t *testing.T) {
	reporter := &recordingReporter{}
	p, _ := newTestPipeline(t, reporter, staticFetcher{}, staticRecognizer{})

	flagged, err := p.ScanText(context.Background(), Message{ChannelID: 1, Content: "this is clean text"})
	require.NoError(t, err)
	assert.False(t, flagged)
	assert.Empty(t, reporter.texts)
}

func TestScanTextFlagged(t *testing.T) {
	reporter := &recordingReporter{}
	p, _ := newTestPipeline(t, reporter, staticFetcher{}, staticRecognizer{})

	content := "please do not frobnicate here"
	flagged, err := p.ScanText(context.Background(), Message{AuthorID: 5, ChannelID: 1, Content: content})
	require.NoError(t, err)
	assert.True(t, flagged)
	require.Len(t, reporter.texts, 1)
	assert.Equal(t, content, reporter.texts[0].Content)

	embed := TextReportEmbed(reporter.texts[0], Identity{Name: "Becbot"})
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "Message", embed.Fields[2].Name)
	assert.Equal(t, content, embed.Fields[2].Value)
}

func TestHandleMessageSkipsLogChannel(t *testing.T) {
	reporter := &recordingReporter{}
	data := testPNG(t, 40, 20)
	p, queue := newTestPipeline(t, reporter,
		staticFetcher{"https://cdn.example/a.png": data},
		staticRecognizer{{Text: "frobnicate", Box: image.Rect(5, 5, 15, 10)}})

	p.HandleMessage(context.Background(), Message{
		ChannelID:   logChannelID,
		Content:     "frobnicate",
		Attachments: []Attachment{{URL: "https://cdn.example/a.png", ContentType: "image/png"}},
	})
	queue.Close()

	assert.Empty(t, reporter.texts)
	assert.Empty(t, reporter.images)
}

func TestHandleMessageScansAttachments(t *testing.T) {
	reporter := &recordingReporter{}
	data := testPNG(t, 40, 20)
	p, queue := newTestPipeline(t, reporter,
		staticFetcher{
			"https://cdn.example/a.png": data,
			"https://cdn.example/b.png": data,
		},
		staticRecognizer{
			{Text: "hello", Box: image.Rect(0, 0, 4, 4)},
			{Text: "frobnicate", Box: image.Rect(10, 5, 20, 12)},
		})

	p.HandleMessage(context.Background(), Message{
		AuthorID:    5,
		AuthorName:  "lumi",
		ChannelID:   1,
		ChannelName: "memes",
		Content:     "look at this",
		Attachments: []Attachment{
			{URL: "https://cdn.example/a.png", ContentType: "image/png"},
			{URL: "https://cdn.example/b.png", Filename: "b.png"},
			{URL: "https://cdn.example/notes.txt", ContentType: "text/plain"},
			{URL: "https://cdn.example/missing.png", ContentType: "image/png"},
		},
	})
	queue.Close()

	assert.Empty(t, reporter.texts)
	require.Len(t, reporter.images, 2)
	for _, report := range reporter.images {
		assert.Equal(t, []string{"frobnicate"}, report.FoundWords)
		assert.Equal(t, "lumi", report.AuthorName)
		assert.Equal(t, "memes", report.ChannelName)
		assert.NotEmpty(t, report.Image)
	}
}

func TestImageScanWithoutMatches(t *testing.T) {
	reporter := &recordingReporter{}
	scanner := NewImageScanner(
		staticFetcher{"u": testPNG(t, 10, 10)},
		staticRecognizer{{Text: "hello"}, {Text: "  "}},
		NewProfanityClassifier([]string{"frobnicate"}, false),
		reporter)

	require.NoError(t, scanner.Scan(context.Background(), Message{}, Attachment{URL: "u"}))
	assert.Empty(t, reporter.images)
}

func TestImageScanDecodeFailure(t *testing.T) {
	reporter := &recordingReporter{}
	scanner := NewImageScanner(
		staticFetcher{"u": []byte("not an image")},
		staticRecognizer{{Text: "frobnicate", Box: image.Rect(0, 0, 2, 2)}},
		NewProfanityClassifier([]string{"frobnicate"}, false),
		reporter)

	err := scanner.Scan(context.Background(), Message{}, Attachment{URL: "u"})
	assert.ErrorContains(t, err, "annotating image")
	assert.Empty(t, reporter.images)
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{LogChannelID: 1}.Enabled())
	assert.False(t, Config{LogChannelID: 1}.ImagesEnabled())
	assert.True(t, Config{TessdataDir: "/tess"}.ImagesEnabled())
}

func TestAttachmentIsImage(t *testing.T) {
	assert.True(t, Attachment{ContentType: "image/webp"}.IsImage())
	assert.False(t, Attachment{ContentType: "video/mp4", Filename: "clip.png"}.IsImage())
	assert.True(t, Attachment{Filename: "SCREEN.JPG"}.IsImage())
	assert.False(t, Attachment{Filename: "notes.txt"}.IsImage())
}
