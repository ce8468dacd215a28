package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// ValuationRequest carries the vehicle details sent to the appraiser.
type ValuationRequest struct {
	Year      string `json:"year"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Condition string `json:"condition"`
}

// ValuationResult is the appraiser's answer.
type ValuationResult struct {
	Range       string `json:"range"`
	Explanation string `json:"explanation"`
}

// FallbackValuation is served whenever the model call fails for any
// reason, including an unconfigured API key.
func FallbackValuation() ValuationResult {
	return ValuationResult{Range: "Get Quote", Explanation: "Call us for our best offer today!"}
}

// ValuationService asks Gemini for an estimated cash value range. It
// is a black-box oracle: callers always get an answer, worst case the
// fallback.
type ValuationService struct {
	client *genai.Client
	model  string
}

// NewValuationService constructs a ValuationService. With no API key
// the service stays alive and answers with the fallback.
func NewValuationService(apiKey, model string) *ValuationService {
	if apiKey == "" {
		log.Println("[Valuation] Gemini API key not configured, estimates will use the fallback")
		return &ValuationService{model: model}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Printf("[Valuation] failed to create Gemini client: %v", err)
		return &ValuationService{model: model}
	}

	return &ValuationService{client: client, model: model}
}

// EstimateValue returns a cash value range and explanation for the
// vehicle, or the fallback on any error.
func (s *ValuationService) EstimateValue(ctx context.Context, req ValuationRequest) ValuationResult {
	if s.client == nil {
		return FallbackValuation()
	}

	prompt := fmt.Sprintf(`Act as an expert auto salvage appraiser in Milwaukee, WI.
Based on the following details, provide a realistic estimated cash value range (e.g., $300 - $1500) and a brief 2-sentence explanation of why it's valued that way based on current scrap prices or parts demand.

Details: %s %s %s in %s condition.

Respond in JSON format with two keys: "range" (string) and "explanation" (string).`,
		req.Year, req.Make, req.Model, req.Condition)

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		log.Printf("[Valuation] estimate failed: %v", err)
		return FallbackValuation()
	}

	var out ValuationResult
	if err := json.Unmarshal([]byte(result.Text()), &out); err != nil || out.Range == "" {
		log.Printf("[Valuation] unreadable model response: %v", err)
		return FallbackValuation()
	}
	return out
}
