package lang

import (
	"regexp"

	"github.com/relgate/relgate/schema"
)

// JavaHandler analyzes Java source with pattern extraction.
type JavaHandler struct{}

var _ Handler = &JavaHandler{} // Compile-time check

var (
	javaClassPattern  = regexp.MustCompile(`(?:public\s+)?(?:abstract\s+)?class\s+(\w+)`)
	javaMethodPattern = regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?(?:\w+\s+)?(\w+)\s*\([^)]*\)\s*\{`)
	javaImportPattern = regexp.MustCompile(`import\s+([\w.]+);`)

	javaBranchPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bif\s*\(`),
		regexp.MustCompile(`\bfor\s*\(`),
		regexp.MustCompile(`\bwhile\s*\(`),
		regexp.MustCompile(`\bswitch\s*\(`),
		regexp.MustCompile(`\bcatch\s*\(`),
		regexp.MustCompile(`\?[^:\n]*:`),
	}
)

// Analyze extracts classes, methods, imports and a complexity estimate.
func (h *JavaHandler) Analyze(file schema.FileRecord) Analysis {
	return Analysis{
		Components:   h.extractComponents(file.Content),
		Dependencies: h.extractDependencies(file.Content),
		Complexity:   h.estimateComplexity(file.Content),
	}
}

func (h *JavaHandler) extractComponents(content string) []schema.Component {
	var components []schema.Component

	for _, match := range javaClassPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindClass,
		})
	}
	for _, match := range javaMethodPattern.FindAllStringSubmatch(content, -1) {
		// The method pattern also matches control statements like
		// "if (x) {"; those are not components.
		if isControlFlowKeyword(match[1]) {
			continue
		}
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindMethod,
		})
	}

	return components
}

func (h *JavaHandler) extractDependencies(content string) []string {
	var deps []string
	for _, match := range javaImportPattern.FindAllStringSubmatch(content, -1) {
		deps = append(deps, match[1])
	}
	return dedupe(deps)
}

func (h *JavaHandler) estimateComplexity(content string) float64 {
	complexity := 1.0
	for _, pattern := range javaBranchPatterns {
		complexity += float64(len(pattern.FindAllStringIndex(content, -1)))
	}
	return complexity
}
