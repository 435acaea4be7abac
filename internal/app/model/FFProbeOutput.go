package model

// FFProbeOutput is the subset of `ffprobe -show_streams -show_format` JSON
// output needed to decide whether an input is already 16kHz PCM WAV.
type FFProbeOutput struct {
	Streams []FFProbeStream `json:"streams"`
	Format  FFProbeFormat   `json:"format"`
}

type FFProbeStream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	SampleRate int    `json:"sample_rate,string"`
	Channels   int    `json:"channels"`
}

type FFProbeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}
