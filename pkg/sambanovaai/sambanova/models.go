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

import "strings"

// Model represents a SambaNova Cloud model identifier.
type Model string

const (
	// === Meta Llama 3.1 Family ===

	// ModelMetaLlama31405BInstruct Meta Llama 3.1 405B – Largest instruction-tuned Llama 3.1 variant
	ModelMetaLlama31405BInstruct Model = "Meta-Llama-3.1-405B-Instruct"

	// ModelMetaLlama3170BInstruct Meta Llama 3.1 70B – Mid-size instruction-tuned variant
	ModelMetaLlama3170BInstruct Model = "Meta-Llama-3.1-70B-Instruct"

	// ModelMetaLlama318BInstruct Meta Llama 3.1 8B – Lightweight, fast variant
	ModelMetaLlama318BInstruct Model = "Meta-Llama-3.1-8B-Instruct"

	// === Meta Llama 3.2 Family ===

	// ModelMetaLlama321BInstruct Meta Llama 3.2 1B – Smallest and cheapest chat model
	ModelMetaLlama321BInstruct Model = "Meta-Llama-3.2-1B-Instruct"

	// ModelMetaLlama323BInstruct Meta Llama 3.2 3B – Small instruction-tuned variant
	ModelMetaLlama323BInstruct Model = "Meta-Llama-3.2-3B-Instruct"

	// === Meta Llama 3.3 Family ===

	// ModelMetaLlama3370BInstruct Meta Llama 3.3 70B – Latest 70B-class instruction model
	ModelMetaLlama3370BInstruct Model = "Meta-Llama-3.3-70B-Instruct"

	// === Safety / Moderation ===

	// ModelMetaLlamaGuard38B Llama Guard 3 8B – Content safety classifier
	ModelMetaLlamaGuard38B Model = "Meta-Llama-Guard-3-8B"

	// === Qwen Family ===

	// ModelQwQ32BPreview QwQ 32B Preview – Reasoning-oriented preview model
	ModelQwQ32BPreview Model = "QwQ-32B-Preview"

	// ModelQwen25Coder32BInstruct Qwen 2.5 Coder 32B – Code-specialized instruction model
	ModelQwen25Coder32BInstruct Model = "Qwen2.5-Coder-32B-Instruct"

	// ModelQwen2572BInstruct Qwen 2.5 72B – General-purpose instruction model
	ModelQwen2572BInstruct Model = "Qwen2.5-72B-Instruct"

	// === Vision Models ===

	// ModelLlama3211BVisionInstruct Llama 3.2 11B Vision – Multimodal (text + image) variant
	ModelLlama3211BVisionInstruct Model = "Llama-3.2-11B-Vision-Instruct"

	// ModelLlama3290BVisionInstruct Llama 3.2 90B Vision – Largest multimodal variant
	ModelLlama3290BVisionInstruct Model = "Llama-3.2-90B-Vision-Instruct"
)

// Defaults applied by the zero-valued configs.
const (
	DefaultChatModel   = ModelMetaLlama321BInstruct
	DefaultVisionModel = ModelLlama3211BVisionInstruct
)

// ChatModels is the fixed set of models accepted by chat calls.
//
// The chat and vision sets are disjoint: a vision model is never a valid
// argument for a chat call, and vice versa.
var ChatModels = []Model{
	ModelMetaLlama31405BInstruct,
	ModelMetaLlama3170BInstruct,
	ModelMetaLlama318BInstruct,
	ModelMetaLlama321BInstruct,
	ModelMetaLlama323BInstruct,
	ModelMetaLlamaGuard38B,
	ModelMetaLlama3370BInstruct,
	ModelQwQ32BPreview,
	ModelQwen25Coder32BInstruct,
	ModelQwen2572BInstruct,
}

// VisionModels is the fixed set of models accepted by vision calls.
var VisionModels = []Model{
	ModelLlama3211BVisionInstruct,
	ModelLlama3290BVisionInstruct,
}

// IsChatModel reports whether m is a member of the chat set.
func (m Model) IsChatModel() bool {
	return containsModel(ChatModels, m)
}

// IsVisionModel reports whether m is a member of the vision set.
func (m Model) IsVisionModel() bool {
	return containsModel(VisionModels, m)
}

func (m Model) String() string {
	return string(m)
}

func containsModel(set []Model, m Model) bool {
	s := strings.TrimSpace(string(m))
	if s == "" {
		return false
	}
	for _, v := range set {
		if string(v) == s {
			return true
		}
	}
	return false
}

// modelSetString renders a model set for error messages.
func modelSetString(set []Model) string {
	parts := make([]string, 0, len(set))
	for _, m := range set {
		parts = append(parts, string(m))
	}
	return strings.Join(parts, ", ")
}
