package sambanova

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatConfigZeroValueResolvesDefaults(t *testing.T) {
	var cfg ChatConfig
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultChatModel, cfg.Model())
}

func TestChatConfigRejectsUnknownModel(t *testing.T) {
	var validationErr *ValidationError
	err := NewChatConfig("Totally-Made-Up-Model").Validate()
	require.ErrorAs(t, err, &validationErr)
	// The error names the allowed set so callers can fix the input.
	assert.Contains(t, validationErr.Reason, string(ModelMetaLlama321BInstruct))
}

func TestChatConfigRejectsNegativeMaxTokens(t *testing.T) {
	var validationErr *ValidationError
	err := ChatConfig{}.WithMaxTokens(-1).Validate()
	require.ErrorAs(t, err, &validationErr)
}

func TestChatConfigIsReusableValue(t *testing.T) {
	base := NewChatConfig(ModelQwen2572BInstruct)
	derived := base.WithMaxTokens(64)

	// With* returns a copy; the base stays untouched.
	require.NoError(t, base.Validate())
	assert.Equal(t, ModelQwen2572BInstruct, base.Model())
	assert.Equal(t, DefaultMaxTokens, base.normalized().maxTokens)
	assert.Equal(t, 64, derived.normalized().maxTokens)
}

func TestVisionConfigZeroValueResolvesDefaults(t *testing.T) {
	var cfg VisionConfig
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultVisionModel, cfg.Model())
}

func TestVisionConfigRejectsUnknownModel(t *testing.T) {
	var validationErr *ValidationError
	err := NewVisionConfig("nope").Validate()
	require.ErrorAs(t, err, &validationErr)
}
