package whisper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, status int, body string) (*openai.Client, func()) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/audio/transcriptions")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))

	config := openai.DefaultConfig("sk-test-token")
	config.BaseURL = server.URL + "/v1"
	return openai.NewClientWithConfig(config), server.Close
}

func writeTestClip(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3 dummy audio payload"), 0o644))
	return path
}

func TestRemoteTranscriber_Transcript(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectError   bool
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
		},
		{
			name:         "transcript with surrounding whitespace is passed through",
			mockResponse: `{"text": "  hello world  "}`,
			mockStatus:   http.StatusOK,
			expectedText: "  hello world  ",
		},
		{
			name:         "transcript with special characters",
			mockResponse: `{"text": "Hello, 世界! This is a test with émojis 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello, 世界! This is a test with émojis 🎵",
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - rate limit",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			errorContains: "429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, closeServer := newTestClient(t, tt.mockStatus, tt.mockResponse)
			defer closeServer()

			rt := NewRemoteTranscriber(client)
			got, err := rt.Transcript(writeTestClip(t))

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, got)
		})
	}
}

func TestRemoteTranscriber_Transcript_MissingFile(t *testing.T) {
	client, closeServer := newTestClient(t, http.StatusOK, `{"text": "unreachable"}`)
	defer closeServer()

	rt := NewRemoteTranscriber(client)
	_, err := rt.Transcript(filepath.Join(t.TempDir(), "missing.mp3"))
	require.Error(t, err)
}
