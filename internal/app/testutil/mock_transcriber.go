package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a testify mock of the api.Transcriber interface with
// call tracking, for asserting that the collaborator is (or is not) reached.
type MockTranscriber struct {
	mock.Mock
	mu sync.Mutex

	CallCount int
	Inputs    []string
}

// NewMockTranscriber creates a new MockTranscriber.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcript implements the api.Transcriber interface.
func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	m.mu.Lock()
	m.CallCount++
	m.Inputs = append(m.Inputs, inputFilePath)
	m.mu.Unlock()

	arguments := m.Called(inputFilePath)
	return arguments.String(0), arguments.Error(1)
}

// TranscriptCalls returns how many times Transcript was invoked.
func (m *MockTranscriber) TranscriptCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}
