package ocr

import "gocv.io/x/gocv"

// MockReader is a scripted TextReader for testing. Each call to ReadText
// consumes the next queued result; once the queue is exhausted it returns
// empty results.
type MockReader struct {
	queue [][]string
	calls int
}

// NewMockReader creates an empty mock reader.
func NewMockReader() *MockReader {
	return &MockReader{}
}

// Enqueue appends one recognition result to the script.
func (m *MockReader) Enqueue(values ...string) {
	m.queue = append(m.queue, values)
}

// Calls returns how many times ReadText has been invoked.
func (m *MockReader) Calls() int {
	return m.calls
}

// ReadText returns the next scripted result.
func (m *MockReader) ReadText(crop gocv.Mat) ([]string, error) {
	m.calls++
	if len(m.queue) == 0 {
		return nil, nil
	}
	values := m.queue[0]
	m.queue = m.queue[1:]
	return values, nil
}
