package whisper_cpp

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"audio2text/internal/app/audio"
	"audio2text/internal/app/model"
	"audio2text/internal/app/util/files"
)

// LocalTranscriber runs a whisper.cpp binary against a ggml model file. The
// model tier is fixed; ResolveModelPath maps it to the ggml file name.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
	logger     *zap.Logger
}

// NewLocalTranscriber creates a new instance of LocalTranscriber. language
// may be empty, in which case whisper.cpp auto-detects.
func NewLocalTranscriber(binaryPath, modelPath, language string, logger *zap.Logger) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
		logger:     logger,
	}
}

// ResolveModelPath returns the ggml model file for the fixed default tier
// inside modelDir, e.g. <modelDir>/ggml-base.bin.
func ResolveModelPath(modelDir string) string {
	return filepath.Join(modelDir, model.DefaultModelTier.GGMLFileName())
}

// Transcript shells out to the whisper.cpp binary and returns the transcript
// read back from its text output file. Inputs that are not already 16kHz PCM
// WAV are transcoded into the temp directory first; all temp files are
// removed before returning.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	lt.logger.Debug("starting local transcription", zap.String("input", inputFilePath))

	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("error checking input file: %v", err)
	}

	if !is16kHzWav {
		convertedPath, err := audio.ConvertTo16kHzWav(inputFilePath)
		if err != nil {
			return "", fmt.Errorf("error converting input file: %v", err)
		}
		defer os.Remove(convertedPath)
		lt.logger.Debug("converted input to 16kHz WAV", zap.String("converted", convertedPath))
		inputFilePath = convertedPath
	}

	if duration, err := audio.GetAudioDuration(inputFilePath); err == nil {
		lt.logger.Debug("probed audio duration", zap.Int("seconds", duration))
	}

	outputBase := filepath.Join(os.TempDir(), "a2t-"+uuid.NewString())

	args := []string{
		"-m", lt.modelPath,
		"--no-prints",
		"-otxt",
		"-f", inputFilePath,
		"-of", outputBase,
	}
	if lt.language != "" {
		args = append(args, "-l", lt.language)
	}

	command := exec.Command(lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	lt.logger.Debug("running whisper.cpp", zap.String("binary", lt.binaryPath), zap.Strings("args", args))

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	outputFile := outputBase + ".txt"
	defer os.Remove(outputFile)

	output, err := files.ReadOutputFile(outputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %v", err)
	}

	return output, nil
}
