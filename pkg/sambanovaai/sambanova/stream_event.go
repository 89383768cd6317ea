package sambanova

/*
The completion endpoint streams Server-Sent Events. Each data frame carries an
OpenAI-compatible chunk:

	data: {"choices":[{"delta":{"content":"Hel"},"index":0}]}
	data: {"choices":[{"delta":{"content":"lo"},"index":0}]}
	data: {"choices":[{"delta":{},"finish_reason":"stop","index":0}],"usage":{...}}
	data: [DONE]

The stream is ordered and MUST be processed sequentially. Because every
request sets stream_options.include_usage, a trailing chunk carries the token
accounting before the [DONE] sentinel.
*/

// doneSentinel marks end-of-stream.
const doneSentinel = "[DONE]"

// streamEvent is one decoded data frame.
type streamEvent struct {
	Choices []streamChoice `json:"choices"`
	Usage   *Usage         `json:"usage,omitempty"`
}

type streamChoice struct {
	Index        int         `json:"index"`
	Delta        streamDelta `json:"delta"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

// streamDelta carries the incremental text fragment. Fields are pointers-free
// strings: an absent field decodes to "", which the decoder skips.
type streamDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// Usage is the token accounting echoed at the end of a stream.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
