package model

import "fmt"

// ModelTier is a named size/accuracy variant of a pretrained whisper model.
// Larger tiers trade inference time for accuracy.
type ModelTier string

const (
	TierTiny   ModelTier = "tiny"
	TierBase   ModelTier = "base"
	TierSmall  ModelTier = "small"
	TierMedium ModelTier = "medium"
	TierLarge  ModelTier = "large"
)

// DefaultModelTier is always used for transcription. The tier is fixed and
// not selectable on the command line.
const DefaultModelTier = TierBase

// AllTiers lists the known tiers from smallest to largest.
func AllTiers() []ModelTier {
	return []ModelTier{TierTiny, TierBase, TierSmall, TierMedium, TierLarge}
}

// GGMLFileName returns the whisper.cpp ggml model file name for a tier,
// e.g. "ggml-base.bin".
func (t ModelTier) GGMLFileName() string {
	return fmt.Sprintf("ggml-%s.bin", t)
}

// Valid reports whether t is one of the known tiers.
func (t ModelTier) Valid() bool {
	for _, known := range AllTiers() {
		if t == known {
			return true
		}
	}
	return false
}
