package api

// Transcriber converts a single audio file to text. Implementations wrap an
// external pretrained speech-recognition collaborator and return the raw
// transcript, surrounding whitespace included.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}
