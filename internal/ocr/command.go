package ocr

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"gocv.io/x/gocv"
)

// CommandReader runs an external OCR program once per crop. The crop is
// written to the program's stdin as PNG and each non-empty stdout line is one
// recognized string.
type CommandReader struct {
	name string
	args []string
}

// NewCommandReader parses a command line like "tesseract stdin stdout" into a
// reader. The command must accept PNG on stdin and print recognized text to
// stdout.
func NewCommandReader(command string) (*CommandReader, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty OCR command")
	}
	return &CommandReader{name: fields[0], args: fields[1:]}, nil
}

// ReadText encodes the crop and runs the OCR process to completion.
func (r *CommandReader) ReadText(crop gocv.Mat) ([]string, error) {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, crop)
	if err != nil {
		return nil, fmt.Errorf("failed to encode crop: %w", err)
	}
	defer buf.Close()

	cmd := exec.Command(r.name, r.args...)
	cmd.Stdin = bytes.NewReader(buf.GetBytes())

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("OCR command failed: %w", err)
	}

	var values []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			values = append(values, line)
		}
	}
	return values, nil
}
