package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	apperrors "audio2text/internal/app/errors"
	"audio2text/internal/app/model"
)

// supported input extensions for conversion to whisper.cpp's required format
var convertibleExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
	".mp4":  true,
}

// GetAudioDuration probes the file with ffprobe and returns its duration
// rounded to whole seconds.
func GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(durationFloat)), nil
}

// Is16kHzWavFile reports whether the file already is 16kHz PCM WAV, the only
// input format whisper.cpp accepts directly.
func Is16kHzWavFile(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}

	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}

	return false, nil
}

// ConvertTo16kHzWav transcodes the input into a 16kHz PCM WAV file under the
// system temp directory and returns its path. The caller owns the returned
// file and removes it after use; nothing is written next to the input.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(inputFilePath))
	if !convertibleExtensions[ext] {
		return "", apperrors.Wrapf(apperrors.ErrUnsupportedFormat, "%q not in [mp3 m4a wav flac ogg mp4]", ext)
	}

	outputPath := filepath.Join(os.TempDir(), fmt.Sprintf("a2t-%s_16khz.wav", uuid.NewString()))

	cmd := exec.Command("ffmpeg", "-i", inputFilePath, "-vn",
		"-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return outputPath, nil
}
