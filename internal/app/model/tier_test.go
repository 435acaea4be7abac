package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelTier_GGMLFileName(t *testing.T) {
	tests := []struct {
		tier ModelTier
		want string
	}{
		{tier: TierTiny, want: "ggml-tiny.bin"},
		{tier: TierBase, want: "ggml-base.bin"},
		{tier: TierLarge, want: "ggml-large.bin"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tier.GGMLFileName())
		})
	}
}

func TestModelTier_Valid(t *testing.T) {
	for _, tier := range AllTiers() {
		assert.True(t, tier.Valid(), "tier %q should be valid", tier)
	}
	assert.False(t, ModelTier("huge").Valid())
	assert.False(t, ModelTier("").Valid())
}

func TestDefaultModelTier(t *testing.T) {
	// the default tier is fixed and must stay "base"
	assert.Equal(t, TierBase, DefaultModelTier)
	assert.True(t, DefaultModelTier.Valid())
}
