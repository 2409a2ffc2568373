package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripwise/internal/models/response_models"
	"tripwise/internal/planner"
)

// ItineraryClientInterface generates the day-by-day plan for an
// assembled itinerary request.
type ItineraryClientInterface interface {
	GenerateItinerary(ctx context.Context, req planner.ItineraryRequest, places []response_models.Place) ([]planner.DayPlan, error)
}

// GeminiItineraryClient drives Gemini in JSON-only mode so the response
// parses directly, no brace hunting in free text.
type GeminiItineraryClient struct {
	client *genai.Client
	model  string
}

func NewGeminiItineraryClient(ctx context.Context, apiKey, model string) (ItineraryClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiItineraryClient{client: client, model: model}, nil
}

const itinerarySchema = `
{
  "itinerary": [
    {
      "day": 1,
      "theme": "string",
      "activities": [
        {"place": "string", "time": "9:00 AM", "details": "string"}
      ]
    }
  ]
}`

func (c *GeminiItineraryClient) GenerateItinerary(
	ctx context.Context,
	req planner.ItineraryRequest,
	places []response_models.Place,
) ([]planner.DayPlan, error) {

	if req.Days < 1 || req.Days > 30 {
		return nil, fmt.Errorf("bad day count %d", req.Days)
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.2)

	var placeBuf strings.Builder
	for _, p := range places {
		fmt.Fprintf(&placeBuf, "- Key:%s | Name:%s | Address:%s | Rating:%.1f\n",
			p.Key(), p.DisplayName, p.Address, p.Rating)
	}

	sourcing := "Pick the destination's highlights yourself."
	if req.Mode == planner.ModeCustom {
		sourcing = "Use ONLY the places listed below for the main stops; minor filler (walks, breaks) may be invented."
	}

	prompt := fmt.Sprintf(`
You are a travel planner. Return **JSON only** matching the schema below, nothing else.
Generate exactly %d day entries for %s with unique ascending day numbers starting at 1.
Each day gets a short theme and 3-6 activities in chronological order with realistic
times between 8:00 AM and 10:00 PM. %s

Traveler preferences: %s

Schema (match keys exactly):
%s

Places:
%s`,
		req.Days, req.Destination, sourcing,
		strings.Join(req.Preferences, ", "), itinerarySchema, placeBuf.String())

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	raw := collectText(resp)
	if raw == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}

	var doc struct {
		Itinerary []planner.DayPlan `json:"itinerary"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("gemini response parse: %w", err)
	}
	if len(doc.Itinerary) == 0 {
		return nil, fmt.Errorf("gemini response carried no days")
	}
	return doc.Itinerary, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
