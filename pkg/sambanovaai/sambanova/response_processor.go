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
	"context"
	"fmt"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"
)

// ResponseProcessor is a textual.Processor that sends each incoming carrier
// value as a chat prompt and re-emits the streamed deltas as carrier values.
//
// Semantics shared with the other textual processors:
//
//   - Each input item produces zero or more output items (one per delta).
//   - Any per-item error is attached via input.WithError(err) and emitted;
//     the stream stays alive for subsequent items.
//   - When ctx is done, upstream `in` is drained to avoid blocking senders.
type ResponseProcessor[S textual.Carrier[S]] struct {
	// Client performs the completion calls.
	Client Client

	// Config selects the chat model and generation parameters.
	Config ChatConfig
}

// NewResponseProcessor validates the config eagerly so a misconfigured
// pipeline fails at construction rather than on the first item.
func NewResponseProcessor[S textual.Carrier[S]](client Client, cfg ChatConfig) (*ResponseProcessor[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ResponseProcessor[S]{
		Client: client,
		Config: cfg,
	}, nil
}

// Apply implements textual.Processor.
func (p ResponseProcessor[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	if ctx == nil {
		ctx = context.Background()
	}

	out := make(chan S)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				// Stop processing on cancellation and drain upstream so we don't
				// block senders.
				for range in {
				}
				return

			case input, ok := <-in:
				if !ok {
					return
				}

				if err := p.processOne(ctx, input, out); err != nil {
					// Attach the error to the item, keep stream alive.
					errRes := input.WithError(err)
					select {
					case <-ctx.Done():
						return
					case out <- errRes:
					}
				}
			}
		}
	}()

	return out
}

func (p ResponseProcessor[S]) processOne(ctx context.Context, input S, out chan<- S) error {
	proto := *new(S)

	_, err := p.Client.ChatStream(ctx, input.UTF8String(), p.Config, func(delta string) {
		item := proto.FromUTF8String(delta)
		select {
		case <-ctx.Done():
			// The in-flight request is canceled through ctx; drop the delta.
		case out <- item:
		}
	})
	if err != nil {
		return fmt.Errorf("sambanova call: %w", err)
	}
	return nil
}
