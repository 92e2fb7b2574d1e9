package openai

import (
	"fmt"
	"strings"
	"time"
)

const extractionResponseShape = `{
  "meetings": [{"person": "Name", "date": "YYYY-MM-DD"}],
  "actionItems": ["Task description"],
  "connections": [{"name": "Name", "relationship": "Relationship description"}],
  "networkMentions": [
    {
      "personName": "Name",
      "company": "Company",
      "title": "Title",
      "context": "Context",
      "snippet": "Original text snippet"
    }
  ],
  "extractedEntities": {
    "people": [],
    "companies": [],
    "titles": [],
    "keywords": []
  }
}`

const extractionPromptTemplate = `Extract meetings, dates, action items, connections, and network relationships strictly from the provided text.

Current date reference: %s (%s)
Date conversions to use:
- "tomorrow" = %s
%s
Rules:
1. ONLY extract information that is explicitly stated in the text. Do not hallucinate or guess.
2. If no meetings, action items, or mentions are found, return empty arrays.
3. For networkMentions: extract detailed information about people, companies, and roles mentioned:
   - personName: The name of the person mentioned (or their role like "CEO" if name not given)
   - company: Any company name mentioned in relation to this person
   - title: Job title or role (CEO, CTO, Founder, Manager, etc.)
   - context: Relationship context (knows, works with, met, friend of, etc.)
   - snippet: The exact sentence or phrase from the text
4. For extractedEntities: List all unique entities found:
   - people: All person names mentioned
   - companies: All company names mentioned
   - titles: All job titles/roles mentioned
   - keywords: Other important keywords or topics

Return ONLY JSON. No markdown formatting. Start your response directly with the
opening brace { and end with the closing brace }. Your output must exactly
follow this structure:

%s

Return ONLY the JSON object, no other text.`

// buildSystemPrompt creates the extraction prompt with the date reference
// anchored at now. Each weekday name resolves to its date within the current
// Sunday-to-Saturday week, so "Monday" can land in the past.
func buildSystemPrompt(now time.Time) string {
	day := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	var weekDates strings.Builder
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, i-int(now.Weekday()))
		fmt.Fprintf(&weekDates, "- %q = %s\n", time.Weekday(i).String(), date.Format("2006-01-02"))
	}

	return fmt.Sprintf(extractionPromptTemplate,
		day,
		now.Weekday().String(),
		tomorrow,
		weekDates.String(),
		extractionResponseShape)
}

// buildUserPrompt wraps the note text for the model.
func buildUserPrompt(text string) string {
	return fmt.Sprintf("Text: \"\"\"%s\"\"\"", text)
}
