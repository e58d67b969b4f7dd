package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fitscore/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultFoodName    = "Unknown food"
	defaultHealthScore = 50
)

type FoodAnalysis struct {
	FoodName        string   `json:"foodName"`
	Calories        float64  `json:"calories"`
	Protein         float64  `json:"protein"`
	Carbs           float64  `json:"carbs"`
	Fat             float64  `json:"fat"`
	Fiber           float64  `json:"fiber"`
	Sugar           float64  `json:"sugar"`
	Sodium          float64  `json:"sodium"`
	HealthScore     float64  `json:"healthScore"`
	Recommendations []string `json:"recommendations"`
}

type foodPayload struct {
	FoodName        string     `json:"foodName"`
	Calories        number     `json:"calories"`
	Protein         number     `json:"protein"`
	Carbs           number     `json:"carbs"`
	Fat             number     `json:"fat"`
	Fiber           number     `json:"fiber"`
	Sugar           number     `json:"sugar"`
	Sodium          number     `json:"sodium"`
	HealthScore     *number    `json:"healthScore"`
	Recommendations stringList `json:"recommendations"`
}

// MapFoodResponse fills in defaults for everything the model left out.
func MapFoodResponse(raw json.RawMessage) FoodAnalysis {
	var p foodPayload
	_ = json.Unmarshal(raw, &p)

	fa := FoodAnalysis{
		FoodName:        p.FoodName,
		Calories:        float64(p.Calories),
		Protein:         float64(p.Protein),
		Carbs:           float64(p.Carbs),
		Fat:             float64(p.Fat),
		Fiber:           float64(p.Fiber),
		Sugar:           float64(p.Sugar),
		Sodium:          float64(p.Sodium),
		HealthScore:     defaultHealthScore,
		Recommendations: []string(p.Recommendations),
	}
	if fa.FoodName == "" {
		fa.FoodName = defaultFoodName
	}
	if p.HealthScore != nil && *p.HealthScore != 0 {
		fa.HealthScore = float64(*p.HealthScore)
	}
	if len(fa.Recommendations) == 0 {
		fa.Recommendations = []string{"Eat in moderation"}
	}
	return fa
}

// AnalyzeFood estimates the nutrition facts of a food photo.
func (c *Client) AnalyzeFood(ctx context.Context, image []byte) (_ *FoodAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analysis.client.analyzeFood")
	span.SetAttributes(attribute.Int("image_bytes", len(image)))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if len(image) > MaxAnalysisBytes {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrPayloadTooLarge, len(image), MaxAnalysisBytes)
	}

	text, err := c.generate(ctx, kindFood, foodPrompt, image, SniffImageMime(image))
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONObject(text)
	if err != nil {
		c.metricsManager.CounterAICalls.WithLabelValues(kindFood, "malformed").Inc()
		return nil, err
	}

	fa := MapFoodResponse(raw)
	return &fa, nil
}
