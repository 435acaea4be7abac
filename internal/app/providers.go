package app

import (
	"os"

	"go.uber.org/zap"

	"audio2text/internal/app/api"
	"audio2text/internal/app/api/openai"
	"audio2text/internal/app/api/openai/whisper"
	"audio2text/internal/app/api/whisper_cpp"
	"audio2text/internal/app/api/whisper_server"
	apperrors "audio2text/internal/app/errors"
	"audio2text/internal/app/logging"
	"audio2text/internal/app/transcribe"
	"audio2text/internal/config"
)

func provideLogger(development bool) *zap.Logger {
	return logging.MustNewLogger(development)
}

// provideTranscriberFactory selects the transcription provider from the
// environment. The returned factory is lazy so that nothing is loaded until
// the runner's argument checks have passed.
func provideTranscriberFactory(logger *zap.Logger) transcribe.Factory {
	return func() (api.Transcriber, error) {
		switch name := config.GetProvider(); name {
		case config.ProviderWhisperCpp:
			cfg, err := config.GetWhisperCppConfig()
			if err != nil {
				return nil, err
			}
			modelPath := cfg.ModelPath
			if modelPath == "" {
				modelPath = whisper_cpp.ResolveModelPath(cfg.ModelDir)
			}
			return whisper_cpp.NewLocalTranscriber(cfg.BinaryPath, modelPath, cfg.Language, logger), nil

		case config.ProviderOpenAI:
			if _, err := config.GetOpenAIKey(); err != nil {
				return nil, err
			}
			return whisper.NewRemoteTranscriber(openai.GetClient()), nil

		case config.ProviderWhisperServer:
			baseURL, err := config.GetWhisperServerURL()
			if err != nil {
				return nil, err
			}
			return whisper_server.NewWhisperServerProvider(whisper_server.WhisperServerConfig{
				BaseURL:  baseURL,
				Language: os.Getenv("A2T_LANGUAGE"),
			}), nil

		default:
			return nil, apperrors.Wrapf(apperrors.ErrUnknownProvider, "unsupported A2T_PROVIDER %q", name)
		}
	}
}
