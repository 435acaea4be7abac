package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Provider names accepted in A2T_PROVIDER.
const (
	ProviderWhisperCpp    = "whisper_cpp"
	ProviderOpenAI        = "openai"
	ProviderWhisperServer = "whisper_server"
)

// DefaultProvider is used when A2T_PROVIDER is unset.
const DefaultProvider = ProviderWhisperCpp

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetProvider returns the configured transcription provider name.
func GetProvider() string {
	provider := strings.TrimSpace(os.Getenv("A2T_PROVIDER"))
	if provider == "" {
		return DefaultProvider
	}
	return strings.ToLower(provider)
}

// GetOpenAIKey retrieves and validates the OpenAI API key.
func GetOpenAIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		return "", fmt.Errorf("OPENAI_API_KEY must be set for the openai provider")
	}
	if !strings.HasPrefix(key, "sk-") {
		return "", fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}
	if len(key) < 20 {
		return "", fmt.Errorf("invalid OPENAI_API_KEY format: too short")
	}
	return key, nil
}

// WhisperCppConfig holds the settings for the local whisper.cpp provider.
type WhisperCppConfig struct {
	BinaryPath string
	ModelPath  string // explicit ggml file; wins over ModelDir
	ModelDir   string // directory holding ggml-<tier>.bin files
	Language   string // empty means auto-detect
}

// GetWhisperCppConfig reads the whisper.cpp settings from the environment.
// Either WHISPER_CPP_MODEL or WHISPER_CPP_MODEL_DIR must be set alongside
// WHISPER_CPP_BINARY.
func GetWhisperCppConfig() (*WhisperCppConfig, error) {
	cfg := &WhisperCppConfig{
		BinaryPath: strings.TrimSpace(os.Getenv("WHISPER_CPP_BINARY")),
		ModelPath:  strings.TrimSpace(os.Getenv("WHISPER_CPP_MODEL")),
		ModelDir:   strings.TrimSpace(os.Getenv("WHISPER_CPP_MODEL_DIR")),
		Language:   strings.TrimSpace(os.Getenv("A2T_LANGUAGE")),
	}

	if cfg.BinaryPath == "" {
		return nil, fmt.Errorf("WHISPER_CPP_BINARY environment variable must be set")
	}
	if cfg.ModelPath == "" && cfg.ModelDir == "" {
		return nil, fmt.Errorf("WHISPER_CPP_MODEL or WHISPER_CPP_MODEL_DIR environment variable must be set")
	}

	return cfg, nil
}

// GetWhisperServerURL returns the whisper-server base URL.
func GetWhisperServerURL() (string, error) {
	url := strings.TrimSpace(os.Getenv("WHISPER_SERVER_URL"))
	if url == "" {
		return "", fmt.Errorf("WHISPER_SERVER_URL must be set for the whisper_server provider")
	}
	return strings.TrimSuffix(url, "/"), nil
}
