// Package ocr defines the text-recognition capability the extraction engine
// delegates to. The engine only depends on the TextReader interface; the
// actual recognizer is an external collaborator (a subprocess in the shipped
// implementation, a scripted mock in tests).
package ocr

import (
	"errors"

	"gocv.io/x/gocv"
)

// ErrEmptyResult is returned when recognition produced no text for a region
// where a value was expected.
var ErrEmptyResult = errors.New("text recognition returned no result")

// TextReader recognizes text inside a cropped sub-image and returns the
// recognized strings in reading order.
type TextReader interface {
	ReadText(crop gocv.Mat) ([]string, error)
}

// First returns the first recognized string, or ErrEmptyResult when the
// reader produced none. Callers must never index a recognition result
// directly.
func First(reader TextReader, crop gocv.Mat) (string, error) {
	values, err := reader.ReadText(crop)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", ErrEmptyResult
	}
	return values[0], nil
}
