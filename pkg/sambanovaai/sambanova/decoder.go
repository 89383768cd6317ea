// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sambanova

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DeltaFunc receives each text delta as it arrives, in order. It is invoked
// synchronously from the decode loop, so a slow callback slows the drain.
type DeltaFunc func(delta string)

// streamResult is the fully drained stream.
type streamResult struct {
	content      string
	usage        *Usage
	finishReason string
	malformed    int
}

// decodeEventStream consumes r as a sequence of SSE frames and accumulates
// text deltas in arrival order until the [DONE] sentinel or EOF.
//
// Malformed frame policy: a frame that fails JSON decoding is skipped with a
// warning rather than aborting the stream. If the stream ends with no content
// accumulated while at least one frame was malformed, the whole decode fails
// with a DecodeError. Decoding the same byte stream twice yields identical
// results.
func decodeEventStream(ctx context.Context, r io.Reader, logger *slog.Logger, onDelta DeltaFunc) (streamResult, error) {
	var res streamResult
	var content strings.Builder

	scanner := bufio.NewScanner(r)

	// Allow reasonably large SSE lines.
	const maxScanTokenSize = 1024 * 1024 // 1 MiB
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxScanTokenSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			res.content = content.String()
			return res, &TransportError{Err: ctx.Err()}
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "data:") {
			// Ignore SSE comment and field lines like ":" keep-alives or "event:".
			continue
		}

		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}
		if data == doneSentinel {
			break
		}

		var ev streamEvent
		if err := json.Unmarshal([]byte(data), &ev); err != nil {
			res.malformed++
			if logger != nil {
				logger.Warn("sambanova: skipping malformed stream frame",
					slog.Int("frame", res.malformed),
					slog.String("error", err.Error()))
			}
			continue
		}

		if len(ev.Choices) > 0 {
			choice := ev.Choices[0]
			if choice.Delta.Content != "" {
				content.WriteString(choice.Delta.Content)
				if onDelta != nil {
					onDelta(choice.Delta.Content)
				}
			}
			if choice.FinishReason != "" {
				res.finishReason = choice.FinishReason
			}
		}
		if ev.Usage != nil {
			res.usage = ev.Usage
		}
	}

	res.content = content.String()

	if err := scanner.Err(); err != nil {
		return res, &TransportError{Err: fmt.Errorf("read stream: %w", err)}
	}

	if res.content == "" && res.malformed > 0 {
		return res, &DecodeError{MalformedFrames: res.malformed}
	}

	return res, nil
}
