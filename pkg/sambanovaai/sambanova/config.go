package sambanova

import "strings"

// Defaults matching the upstream playground behavior.
const (
	DefaultSystemPrompt = "You are a helpful assistant."
	DefaultMaxTokens    = 2048
)

// ChatConfig selects the chat model and generation parameters for a chat call.
//
// The zero value is usable and resolves to DefaultChatModel with the default
// system prompt and token budget. A ChatConfig is immutable; the With* methods
// return modified copies, so one instance can be shared across calls.
type ChatConfig struct {
	model        Model
	systemPrompt string
	maxTokens    int
}

func NewChatConfig(model Model) ChatConfig {
	return ChatConfig{model: model}
}

func (c ChatConfig) WithModel(model Model) ChatConfig {
	c.model = model
	return c
}

func (c ChatConfig) WithSystemPrompt(prompt string) ChatConfig {
	c.systemPrompt = prompt
	return c
}

func (c ChatConfig) WithMaxTokens(n int) ChatConfig {
	c.maxTokens = n
	return c
}

// Model returns the model the config resolves to, defaults applied.
func (c ChatConfig) Model() Model {
	return c.normalized().model
}

// Validate fails fast on a model outside the chat set or a non-positive token
// budget. An unknown model is never silently replaced by a default: only the
// empty value resolves to DefaultChatModel.
func (c ChatConfig) Validate() error {
	n := c.normalized()
	if !n.model.IsChatModel() {
		return validationErrorf("invalid chat model %q. Available models: %s", c.model, modelSetString(ChatModels))
	}
	if n.maxTokens <= 0 {
		return validationErrorf("max tokens must be > 0, got %d", n.maxTokens)
	}
	return nil
}

func (c ChatConfig) normalized() ChatConfig {
	if strings.TrimSpace(string(c.model)) == "" {
		c.model = DefaultChatModel
	}
	if c.systemPrompt == "" {
		c.systemPrompt = DefaultSystemPrompt
	}
	if c.maxTokens == 0 {
		c.maxTokens = DefaultMaxTokens
	}
	return c
}

// VisionConfig selects the vision model and generation parameters for a
// vision call. Same value semantics as ChatConfig.
type VisionConfig struct {
	model     Model
	maxTokens int
}

func NewVisionConfig(model Model) VisionConfig {
	return VisionConfig{model: model}
}

func (c VisionConfig) WithModel(model Model) VisionConfig {
	c.model = model
	return c
}

func (c VisionConfig) WithMaxTokens(n int) VisionConfig {
	c.maxTokens = n
	return c
}

// Model returns the model the config resolves to, defaults applied.
func (c VisionConfig) Model() Model {
	return c.normalized().model
}

// Validate fails fast on a model outside the vision set or a non-positive
// token budget.
func (c VisionConfig) Validate() error {
	n := c.normalized()
	if !n.model.IsVisionModel() {
		return validationErrorf("invalid vision model %q. Available models: %s", c.model, modelSetString(VisionModels))
	}
	if n.maxTokens <= 0 {
		return validationErrorf("max tokens must be > 0, got %d", n.maxTokens)
	}
	return nil
}

func (c VisionConfig) normalized() VisionConfig {
	if strings.TrimSpace(string(c.model)) == "" {
		c.model = DefaultVisionModel
	}
	if c.maxTokens == 0 {
		c.maxTokens = DefaultMaxTokens
	}
	return c
}
