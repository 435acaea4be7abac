package transcribe

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"audio2text/internal/app/api"
	"audio2text/internal/app/util/files"
)

// Factory builds the transcriber on demand. The model is loaded only after
// both argument checks pass, so usage and missing-file failures never touch
// the collaborator.
type Factory func() (api.Transcriber, error)

// Runner executes one transcription run: check arguments, check the file,
// transcribe, trim, print. It writes user-facing messages to out and returns
// a process exit status.
type Runner struct {
	out     io.Writer
	factory Factory
	logger  *zap.Logger
}

// NewRunner creates a Runner printing to out.
func NewRunner(out io.Writer, factory Factory, logger *zap.Logger) *Runner {
	return &Runner{
		out:     out,
		factory: factory,
		logger:  logger,
	}
}

// Run takes the program name and the positional arguments and walks the
// run's states in order: missing argument and missing file each print a
// message and fail; otherwise the transcript is trimmed, printed with a
// trailing newline, and the run succeeds. Collaborator failures are not
// retried or translated.
func (r *Runner) Run(program string, args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(r.out, "Usage: %s <audio_file_path>\n", program)
		return 1
	}

	audioPath := args[0]
	if !files.Exists(audioPath) {
		fmt.Fprintf(r.out, "File not found: %s\n", audioPath)
		return 1
	}

	transcriber, err := r.factory()
	if err != nil {
		r.logger.Error("failed to initialize transcriber", zap.Error(err))
		return 1
	}

	transcription, err := transcriber.Transcript(audioPath)
	if err != nil {
		r.logger.Error("transcription failed", zap.String("input", audioPath), zap.Error(err))
		return 1
	}

	fmt.Fprintln(r.out, strings.TrimSpace(transcription))
	return 0
}
