package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/telemetry/metrics"
	"github.com/2beens/fitscore/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=client_mocks_test.go -package=analysis_test

const (
	MaxAnalysisBytes = 20 * 1024 * 1024
	DefaultTimeout   = 60 * time.Second

	kindAttempt = "attempt"
	kindFood    = "food"
)

// Generator sends one prompt, optionally with inline media, to a generative model
// and returns the text of its answer.
type Generator interface {
	Generate(ctx context.Context, prompt string, media []byte, mimeType string) (string, error)
}

type Result struct {
	TestType        assessment.TestType `json:"testType"`
	Metrics         map[string]float64  `json:"metrics"`
	FormScore       float64             `json:"formScore"`
	Recommendations []string            `json:"recommendations"`
	Badge           assessment.Badge    `json:"badge"`
	Errors          []string            `json:"errors"`
}

type Client struct {
	generator      Generator
	timeout        time.Duration
	metricsManager *metrics.Manager
}

// NewClient creates the analysis client. A nil generator means no credential was
// configured: every call then fails with ErrNotConfigured.
func NewClient(generator Generator, timeout time.Duration, metricsManager *metrics.Manager) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		generator:      generator,
		timeout:        timeout,
		metricsManager: metricsManager,
	}
}

func (c *Client) Configured() bool {
	return c.generator != nil
}

// Analyze scores one exercise video. Exactly one model call is made, there are no retries.
func (c *Client) Analyze(ctx context.Context, media []byte, testType assessment.TestType) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analysis.client.analyze")
	span.SetAttributes(
		attribute.String("test_type", testType.String()),
		attribute.Int("media_bytes", len(media)),
	)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if len(media) > MaxAnalysisBytes {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrPayloadTooLarge, len(media), MaxAnalysisBytes)
	}

	mimeType := SniffVideoMime(media)
	log.Debugf("analyzing %s attempt, %d bytes as %s", testType, len(media), mimeType)

	text, err := c.generate(ctx, kindAttempt, PromptFor(testType), media, mimeType)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONObject(text)
	if err != nil {
		c.metricsManager.CounterAICalls.WithLabelValues(kindAttempt, "malformed").Inc()
		return nil, err
	}

	mapped := MapResponse(raw, testType)
	return &Result{
		TestType:        testType,
		Metrics:         mapped.Metrics,
		FormScore:       mapped.FormScore,
		Recommendations: mapped.Recommendations,
		Badge:           mapped.Badge,
		Errors:          []string{},
	}, nil
}

// GenerateJSON runs a text-only prompt and returns the JSON object found in the answer.
func (c *Client) GenerateJSON(ctx context.Context, kind, prompt string) (_ json.RawMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analysis.client.generateJSON")
	span.SetAttributes(attribute.String("kind", kind))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	text, err := c.generate(ctx, kind, prompt, nil, "")
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONObject(text)
	if err != nil {
		c.metricsManager.CounterAICalls.WithLabelValues(kind, "malformed").Inc()
		return nil, err
	}
	return raw, nil
}

// generate makes the single model call. It ignores the inbound cancellation,
// only the configured timeout bounds it.
func (c *Client) generate(ctx context.Context, kind, prompt string, media []byte, mimeType string) (string, error) {
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	start := time.Now()
	text, err := c.generator.Generate(callCtx, prompt, media, mimeType)
	c.metricsManager.HistAICallDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metricsManager.CounterAICalls.WithLabelValues(kind, "error").Inc()
		return "", fmt.Errorf("generate %s analysis: %w", kind, err)
	}

	c.metricsManager.CounterAICalls.WithLabelValues(kind, "ok").Inc()
	return text, nil
}
