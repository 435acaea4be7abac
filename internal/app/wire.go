//go:build wireinject
// +build wireinject

package app

import (
	"io"

	"github.com/google/wire"

	"audio2text/internal/app/transcribe"
)

// InitializeRunner assembles the transcription runner: a zap logger, the
// env-selected transcriber factory, and the output writer.
func InitializeRunner(out io.Writer, development bool) *transcribe.Runner {
	wire.Build(transcribe.NewRunner, provideTranscriberFactory, provideLogger)
	return &transcribe.Runner{}
}
