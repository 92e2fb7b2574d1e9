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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/rolodex/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// FactExtractor implements ai.FactExtractor using OpenAI-compatible chat APIs.
type FactExtractor struct {
	client      llms.Model
	maxAttempts int
	logger      *slog.Logger
}

// Internal types matching the JSON structure the model is asked to produce.
type extractedMeeting struct {
	Person string `json:"person"`
	Date   string `json:"date"`
}

type extractedConnection struct {
	// Older prompt revisions produced "person"/"knows" instead of
	// "name"/"relationship"; both spellings are accepted.
	Name         string `json:"name"`
	Person       string `json:"person"`
	Relationship string `json:"relationship"`
	Knows        string `json:"knows"`
}

type extractedMention struct {
	PersonName string `json:"personName"`
	Company    string `json:"company"`
	Title      string `json:"title"`
	Context    string `json:"context"`
	Snippet    string `json:"snippet"`
}

type extractedEntities struct {
	People    []string `json:"people"`
	Companies []string `json:"companies"`
	Titles    []string `json:"titles"`
	Keywords  []string `json:"keywords"`
}

// extraction is the wrapper structure for the LLM's JSON response.
type extraction struct {
	Meetings        []extractedMeeting    `json:"meetings"`
	ActionItems     []string              `json:"actionItems"`
	Connections     []extractedConnection `json:"connections"`
	NetworkMentions []extractedMention    `json:"networkMentions"`
	Entities        extractedEntities     `json:"extractedEntities"`
}

// newFactExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newFactExtractor(config *ai.Config) (*FactExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/extraction
	client, err := openai.New(
		openai.WithBaseURL(config.ExtractorHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return &FactExtractor{
		client:      client,
		maxAttempts: config.MaxAttempts,
		logger:      slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewFactExtractor creates a new fact extractor using the provided configuration.
//
// Returns ai.FactExtractor interface to enforce abstraction.
func NewFactExtractor(config *ai.Config) (ai.FactExtractor, error) {
	return newFactExtractor(config)
}

// ExtractFacts extracts structured facts from note text using an LLM.
// Relative date references in the text are resolved against now.
func (e *FactExtractor) ExtractFacts(ctx context.Context, text string, now time.Time) (*ai.ExtractedFacts, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt(now)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildUserPrompt(text)),
			},
		},
	}

	// Retry in case of malformed JSON
	var result extraction
	var lastErr error
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return &ai.ExtractedFacts{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extractor response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extractor response after retries", "err", lastErr)
		return nil, lastErr
	}

	facts := convertExtraction(&result)
	e.logger.Debug("extracted facts",
		"meetings", len(facts.Meetings),
		"actionItems", len(facts.ActionItems),
		"connections", len(facts.Connections),
		"mentions", len(facts.NetworkMentions))
	return facts, nil
}

// convertExtraction maps the model's JSON shape onto ai.ExtractedFacts,
// tolerating the alternate connection field names and dropping connections
// without a name and mentions without any identifying field.
func convertExtraction(result *extraction) *ai.ExtractedFacts {
	facts := &ai.ExtractedFacts{
		ActionItems: result.ActionItems,
		Entities: ai.ExtractedEntities{
			People:    result.Entities.People,
			Companies: result.Entities.Companies,
			Titles:    result.Entities.Titles,
			Keywords:  result.Entities.Keywords,
		},
	}

	for _, m := range result.Meetings {
		facts.Meetings = append(facts.Meetings, ai.ExtractedMeeting{
			Person: m.Person,
			Date:   m.Date,
		})
	}

	for _, c := range result.Connections {
		name := c.Name
		if name == "" {
			name = c.Person
		}
		if name == "" {
			continue
		}
		relationship := c.Relationship
		if relationship == "" {
			relationship = c.Knows
		}
		facts.Connections = append(facts.Connections, ai.ExtractedConnection{
			Name:         name,
			Relationship: relationship,
		})
	}

	for _, nm := range result.NetworkMentions {
		if nm.PersonName == "" && nm.Company == "" && nm.Title == "" {
			continue
		}
		facts.NetworkMentions = append(facts.NetworkMentions, ai.ExtractedMention{
			PersonName: nm.PersonName,
			Company:    nm.Company,
			Title:      nm.Title,
			Context:    nm.Context,
			Snippet:    nm.Snippet,
		})
	}

	return facts
}
