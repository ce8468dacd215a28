package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateValueWithoutClientUsesFallback(t *testing.T) {
	svc := NewValuationService("", "gemini-2.5-flash")

	result := svc.EstimateValue(context.Background(), ValuationRequest{
		Year: "2005", Make: "Ford", Model: "Taurus", Condition: "Non-Running",
	})

	assert.Equal(t, FallbackValuation(), result)
}

func TestFallbackValuationShape(t *testing.T) {
	fb := FallbackValuation()
	assert.Equal(t, "Get Quote", fb.Range)
	assert.Equal(t, "Call us for our best offer today!", fb.Explanation)
}
