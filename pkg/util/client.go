package util

import (
	"net/http"
	"time"
)

const (
	attachmentTimeout = 30 * time.Second
	userAgent         = "becbot (https://github.com/disgoorg/disgo)"
)

// NewAttachmentClient returns the client used to download message attachments
// from the Discord CDN.
func NewAttachmentClient() *http.Client {
	return &http.Client{
		Timeout:   attachmentTimeout,
		Transport: &userAgentTripper{tripper: http.DefaultTransport},
	}
}

type userAgentTripper struct {
	tripper http.RoundTripper
}

func (t *userAgentTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", userAgent)
	return t.tripper.RoundTrip(req)
}
