package sambanova

import (
	"strings"

	"github.com/google/uuid"
)

// Wire types for the playground completion endpoint. The endpoint wraps an
// OpenAI-style chat body in a top-level "body" object and requires streaming.

type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// contentPart is one entry of a mixed text/image content list (vision calls).
type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type completionBody struct {
	Messages      []message     `json:"messages"`
	MaxTokens     int           `json:"max_tokens"`
	Stop          []string      `json:"stop"`
	Stream        bool          `json:"stream"`
	StreamOptions streamOptions `json:"stream_options"`
	Model         Model         `json:"model"`
	EnvType       string        `json:"env_type"`
	Fingerprint   string        `json:"fingerprint"`
}

type completionRequest struct {
	Body completionBody `json:"body"`
}

const (
	roleSystem = "system"
	roleUser   = "user"

	envTypeText = "text"
)

// stopSequences is sent with every request, matching the playground payload.
var stopSequences = []string{"<|eot_id|>"}

// newCompletionBody fills the fields shared by chat and vision payloads.
// The fingerprint is a fresh v4 UUID per request, as the playground sends.
func newCompletionBody(model Model, maxTokens int, messages []message) completionBody {
	return completionBody{
		Messages:      messages,
		MaxTokens:     maxTokens,
		Stop:          stopSequences,
		Stream:        true,
		StreamOptions: streamOptions{IncludeUsage: true},
		Model:         model,
		EnvType:       envTypeText,
		Fingerprint:   uuid.NewString(),
	}
}

// newChatRequest validates the prompt and config and builds a chat payload.
// It is a pure transform: no network or filesystem access.
func newChatRequest(prompt string, cfg ChatConfig) (completionRequest, error) {
	if strings.TrimSpace(prompt) == "" {
		return completionRequest{}, validationErrorf("prompt must not be empty")
	}
	if err := cfg.Validate(); err != nil {
		return completionRequest{}, err
	}
	n := cfg.normalized()

	messages := []message{
		{Role: roleSystem, Content: n.systemPrompt},
		{Role: roleUser, Content: prompt},
	}
	return completionRequest{Body: newCompletionBody(n.model, n.maxTokens, messages)}, nil
}

// newVisionRequest validates the prompt, config and image, and builds a
// vision payload whose user message mixes a text part and an image data URI.
// Reading the image file is its only side effect.
func newVisionRequest(prompt, imagePath string, cfg VisionConfig) (completionRequest, error) {
	if strings.TrimSpace(prompt) == "" {
		return completionRequest{}, validationErrorf("prompt must not be empty")
	}
	if err := cfg.Validate(); err != nil {
		return completionRequest{}, err
	}
	n := cfg.normalized()

	dataURI, err := imageDataURI(imagePath)
	if err != nil {
		return completionRequest{}, err
	}

	messages := []message{
		{Role: roleUser, Content: []contentPart{
			{Type: "text", Text: prompt},
			{Type: "image_url", ImageURL: &imageURL{URL: dataURI}},
		}},
	}
	return completionRequest{Body: newCompletionBody(n.model, n.maxTokens, messages)}, nil
}
