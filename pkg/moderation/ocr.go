package moderation

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer creates a tesseract client per call, clients are not safe for concurrent use.
type TesseractRecognizer struct {
	TessdataDir string
	Language    string
}

func (r *TesseractRecognizer) Words(image []byte) ([]Word, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetTessdataPrefix(r.TessdataDir); err != nil {
		return nil, fmt.Errorf("setting tessdata prefix: %w", err)
	}
	language := r.Language
	if language == "" {
		language = DefaultLanguage
	}
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("setting language: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("setting image: %w", err)
	}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, err
	}
	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		words = append(words, Word{Text: box.Word, Box: box.Box})
	}
	return words, nil
}
