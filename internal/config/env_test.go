package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProvider(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "unset defaults to whisper_cpp", value: "", want: ProviderWhisperCpp},
		{name: "openai", value: "openai", want: ProviderOpenAI},
		{name: "whisper_server", value: "whisper_server", want: ProviderWhisperServer},
		{name: "case insensitive", value: "OpenAI", want: ProviderOpenAI},
		{name: "surrounding whitespace trimmed", value: "  whisper_cpp  ", want: ProviderWhisperCpp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("A2T_PROVIDER", tt.value)
			assert.Equal(t, tt.want, GetProvider())
		})
	}
}

func TestGetOpenAIKey(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		expectError   bool
		errorContains string
	}{
		{
			name: "valid key",
			key:  "sk-1234567890abcdef1234567890abcdef",
		},
		{
			name:          "missing key",
			key:           "",
			expectError:   true,
			errorContains: "must be set",
		},
		{
			name:          "wrong prefix",
			key:           "invalid-key-1234567890abcdef",
			expectError:   true,
			errorContains: "must start with 'sk-'",
		},
		{
			name:          "too short",
			key:           "sk-short",
			expectError:   true,
			errorContains: "too short",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tt.key)
			got, err := GetOpenAIKey()
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, got)
		})
	}
}

func TestGetWhisperCppConfig(t *testing.T) {
	tests := []struct {
		name          string
		binary        string
		model         string
		modelDir      string
		expectError   bool
		errorContains string
	}{
		{
			name:   "explicit model file",
			binary: "/opt/whisper.cpp/main",
			model:  "/opt/whisper.cpp/models/ggml-base.bin",
		},
		{
			name:     "model directory",
			binary:   "/opt/whisper.cpp/main",
			modelDir: "/opt/whisper.cpp/models",
		},
		{
			name:          "missing binary",
			model:         "/opt/whisper.cpp/models/ggml-base.bin",
			expectError:   true,
			errorContains: "WHISPER_CPP_BINARY",
		},
		{
			name:          "missing model and model dir",
			binary:        "/opt/whisper.cpp/main",
			expectError:   true,
			errorContains: "WHISPER_CPP_MODEL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WHISPER_CPP_BINARY", tt.binary)
			t.Setenv("WHISPER_CPP_MODEL", tt.model)
			t.Setenv("WHISPER_CPP_MODEL_DIR", tt.modelDir)
			t.Setenv("A2T_LANGUAGE", "")

			cfg, err := GetWhisperCppConfig()
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.binary, cfg.BinaryPath)
			assert.Equal(t, tt.model, cfg.ModelPath)
			assert.Equal(t, tt.modelDir, cfg.ModelDir)
		})
	}
}

func TestGetWhisperServerURL(t *testing.T) {
	t.Run("trailing slash trimmed", func(t *testing.T) {
		t.Setenv("WHISPER_SERVER_URL", "http://localhost:8080/")
		url, err := GetWhisperServerURL()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", url)
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv("WHISPER_SERVER_URL", "")
		_, err := GetWhisperServerURL()
		require.Error(t, err)
	})
}

func TestLoadEnv_NoFile(t *testing.T) {
	// running from a directory without .env must not fail
	require.NoError(t, LoadEnv())
}
