package sambanova

// Response is the fully drained result of a chat or vision call.
type Response struct {
	// Content is the exact concatenation, in arrival order, of every text
	// delta the stream produced.
	Content string

	// Model is the model the request was sent to.
	Model Model

	// FinishReason echoes the stream's finish reason ("stop", "length", ...)
	// when the upstream sent one.
	FinishReason string

	// Usage carries the token accounting when the upstream echoed it.
	Usage *Usage
}
