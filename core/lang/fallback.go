package lang

import (
	"regexp"

	"github.com/relgate/relgate/schema"
)

// Generic function-like token patterns for unmapped languages.
var fallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bdef\s+(\w+)`),          // Python style
	regexp.MustCompile(`\bfunction\s+(\w+)`),     // JavaScript style
	regexp.MustCompile(`\b\w+\s+(\w+)\s*\([^)]*\)\s*\{`), // C/Java style
}

// ExtractGenericComponents scans unrecognized content for function-like
// shapes and reports up to schema.MaxFallbackComponents matches. Fallback
// analysis never estimates complexity; callers must not record a sample.
func ExtractGenericComponents(content string) []schema.Component {
	var components []schema.Component

	for _, pattern := range fallbackPatterns {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			if isControlFlowKeyword(match[1]) {
				continue
			}
			components = append(components, schema.Component{
				Name: match[1],
				Kind: schema.KindFunction,
			})
			if len(components) >= schema.MaxFallbackComponents {
				return components
			}
		}
	}

	return components
}
