package whisper_server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// WhisperServerProvider transcribes via HTTP against a running whisper.cpp
// server instance.
type WhisperServerProvider struct {
	config WhisperServerConfig
	client *http.Client
}

// WhisperServerConfig configures the whisper-server HTTP API.
type WhisperServerConfig struct {
	BaseURL        string        // base URL, e.g. "http://localhost:8080"
	InferencePath  string        // inference endpoint path (default "/inference")
	Timeout        time.Duration // request timeout
	Language       string        // language code, empty for auto-detect
	ResponseFormat string        // "json" or "text" (default "json")
	Temperature    float64       // decoding temperature
}

// WhisperServerResponse is the JSON response from whisper-server.
type WhisperServerResponse struct {
	Text     string  `json:"text,omitempty"`
	Task     string  `json:"task,omitempty"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// NewWhisperServerProvider creates a new whisper-server HTTP provider.
func NewWhisperServerProvider(config WhisperServerConfig) *WhisperServerProvider {
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}
	if config.ResponseFormat == "" {
		config.ResponseFormat = "json"
	}

	return &WhisperServerProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Transcript uploads the audio file as multipart form data and returns the
// transcript text from the server response.
func (wsp *WhisperServerProvider) Transcript(inputFilePath string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), wsp.config.Timeout)
	defer cancel()

	body, contentType, err := wsp.createMultipartForm(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart form: %v", err)
	}

	url := wsp.config.BaseURL + wsp.config.InferencePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %v", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := wsp.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %v", err)
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(responseData))
	}

	return wsp.parseResponse(responseData)
}

func (wsp *WhisperServerProvider) createMultipartForm(inputFilePath string) (*bytes.Buffer, string, error) {
	file, err := os.Open(inputFilePath)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}

	fields := map[string]string{
		"response_format": wsp.config.ResponseFormat,
		"temperature":     fmt.Sprintf("%g", wsp.config.Temperature),
	}
	if wsp.config.Language != "" {
		fields["language"] = wsp.config.Language
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

func (wsp *WhisperServerProvider) parseResponse(data []byte) (string, error) {
	if wsp.config.ResponseFormat == "text" {
		return string(data), nil
	}

	var response WhisperServerResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %v", err)
	}
	if response.Error != "" {
		return "", fmt.Errorf("server error: %s", response.Error)
	}

	return response.Text, nil
}
