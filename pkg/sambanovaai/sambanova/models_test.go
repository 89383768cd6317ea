package sambanova

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatAndVisionSetsAreDisjoint(t *testing.T) {
	for _, m := range ChatModels {
		assert.False(t, m.IsVisionModel(), "%s must not be in the vision set", m)
	}
	for _, m := range VisionModels {
		assert.False(t, m.IsChatModel(), "%s must not be in the chat set", m)
	}
}

func TestModelMembership(t *testing.T) {
	assert.True(t, ModelMetaLlama321BInstruct.IsChatModel())
	assert.True(t, ModelLlama3290BVisionInstruct.IsVisionModel())
	assert.False(t, Model("gpt-4o").IsChatModel())
	assert.False(t, Model("").IsChatModel())
	assert.False(t, Model("  ").IsVisionModel())
}

func TestDefaultsAreMembersOfTheirSets(t *testing.T) {
	assert.True(t, DefaultChatModel.IsChatModel())
	assert.True(t, DefaultVisionModel.IsVisionModel())
}
