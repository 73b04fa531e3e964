// Package aiengine is the optional Gemini enrichment collaborator. It
// decorates an AnalysisResult with free-text commentary and never touches
// scores or gate decisions.
package aiengine

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// DefaultModel is the Gemini model used for enrichment.
const DefaultModel = "gemini-2.0-flash-exp"

// unavailableText is returned for an individual insight whose call failed.
const unavailableText = "Analysis unavailable"

// generator abstracts the model call so the engine is testable offline.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine produces AI insights for analysis results. A disabled engine (no
// API key) reports AIStatusDisabled instead of failing.
type Engine struct {
	gen     generator
	limiter *rateLimiter
}

var _ contract.Enricher = &Engine{} // Compile-time check

// NewEngine creates an enrichment engine. An empty API key yields a
// disabled engine, not an error: enrichment is strictly optional.
func NewEngine(ctx context.Context, apiKey string) (*Engine, error) {
	if apiKey == "" {
		return &Engine{limiter: newRateLimiter(maxCallsPerMinute)}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Engine{
		gen:     &genaiGenerator{client: client, model: DefaultModel},
		limiter: newRateLimiter(maxCallsPerMinute),
	}, nil
}

// Enabled reports whether the engine can make model calls.
func (e *Engine) Enabled() bool {
	return e.gen != nil
}

// Enrich implements contract.Enricher. Each insight is produced by its own
// rate-limited call; a failed call degrades that single insight.
func (e *Engine) Enrich(ctx context.Context, result *schema.AnalysisResult) *schema.AIInsights {
	if !e.Enabled() {
		return &schema.AIInsights{Status: schema.AIStatusDisabled}
	}

	insights := &schema.AIInsights{Status: schema.AIStatusOK}
	failures := 0

	insights.CodeQuality = e.generate(ctx, codeQualityPrompt(result), &failures)
	insights.SecurityRecommendations = e.generate(ctx, securityPrompt(result), &failures)
	insights.ReleaseRecommendations = e.generate(ctx, releasePrompt(result), &failures)

	if failures == 3 {
		insights.Status = schema.AIStatusUnavailable
	}
	return insights
}

// generate runs one rate-limited model call.
func (e *Engine) generate(ctx context.Context, prompt string, failures *int) string {
	if err := e.limiter.Wait(ctx); err != nil {
		*failures++
		return unavailableText
	}
	text, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		contract.LogWarn("AI enrichment call failed", err)
		*failures++
		return unavailableText
	}
	return strings.TrimSpace(text)
}

// genaiGenerator calls the Gemini API.
type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		nil,
	)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func codeQualityPrompt(result *schema.AnalysisResult) string {
	c := result.CodeAnalysis.Complexity
	return fmt.Sprintf(`Analyze these code quality metrics and provide 2-3 actionable recommendations:

- Average Complexity: %.2f
- Max Complexity: %.2f

Keep the response under 150 words.`, c.Average, c.Max)
}

func securityPrompt(result *schema.AnalysisResult) string {
	return fmt.Sprintf(`Security scan summary:
- Vulnerabilities: %d
- Secrets found: %d

Provide 2-3 priority security recommendations.`,
		len(result.Security.Vulnerabilities), len(result.Security.Secrets))
}

func releasePrompt(result *schema.AnalysisResult) string {
	critical := 0
	for _, r := range result.Risks {
		if r.Priority == schema.PriorityCritical {
			critical++
		}
	}
	return fmt.Sprintf(`Release assessment:
- Risk score: %.1f/10
- Critical issues: %d

Give readiness assessment and top 2 recommendations.`, result.RiskScore, critical)
}
