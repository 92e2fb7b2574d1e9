// Copyright 2025 Poiesic Systems
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


// Package openai implements AI service interfaces using OpenAI-compatible APIs.
//
// This package works with any service exposing the OpenAI chat completion
// API, including local servers like Ollama, LocalAI, and vLLM. Fact
// extraction runs a chat completion at temperature 0 in JSON mode, with a
// small repair pass and bounded retries for responses the model formats
// badly.
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434/v1"),
//	    ai.WithModel("qwen2.5:3b"),
//	)
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	facts, err := provider.FactExtractor().ExtractFacts(ctx, noteText, time.Now())
package openai
