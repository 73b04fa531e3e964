package lang

import (
	"regexp"

	"github.com/relgate/relgate/schema"
)

// PythonHandler analyzes Python source with pattern extraction.
type PythonHandler struct{}

var _ Handler = &PythonHandler{} // Compile-time check

var (
	pyFuncPattern   = regexp.MustCompile(`(?m)^\s*def\s+(\w+)\s*\(`)
	pyClassPattern  = regexp.MustCompile(`(?m)^\s*class\s+(\w+)`)
	pyImportPattern = regexp.MustCompile(`(?m)^\s*import\s+([\w.]+)`)
	pyFromPattern   = regexp.MustCompile(`(?m)^\s*from\s+([\w.]+)\s+import\b`)

	// Decision-point patterns. "elif" is counted separately because the \b
	// anchor on "if" does not match inside it.
	pyBranchPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bif\b`),
		regexp.MustCompile(`\belif\b`),
		regexp.MustCompile(`\bfor\b`),
		regexp.MustCompile(`\bwhile\b`),
		regexp.MustCompile(`\bexcept\b`),
	}
)

// Analyze extracts functions, classes, imports and a complexity estimate.
func (h *PythonHandler) Analyze(file schema.FileRecord) Analysis {
	return Analysis{
		Components:   h.extractComponents(file.Content),
		Dependencies: h.extractDependencies(file.Content),
		Complexity:   h.estimateComplexity(file.Content),
	}
}

func (h *PythonHandler) extractComponents(content string) []schema.Component {
	var components []schema.Component

	for _, match := range pyFuncPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindFunction,
		})
	}
	for _, match := range pyClassPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindClass,
		})
	}

	return components
}

func (h *PythonHandler) extractDependencies(content string) []string {
	var deps []string
	for _, match := range pyImportPattern.FindAllStringSubmatch(content, -1) {
		deps = append(deps, match[1])
	}
	for _, match := range pyFromPattern.FindAllStringSubmatch(content, -1) {
		deps = append(deps, match[1])
	}
	return dedupe(deps)
}

func (h *PythonHandler) estimateComplexity(content string) float64 {
	complexity := 1.0
	for _, pattern := range pyBranchPatterns {
		complexity += float64(len(pattern.FindAllStringIndex(content, -1)))
	}
	return complexity
}
