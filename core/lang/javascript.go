package lang

import (
	"regexp"

	"github.com/relgate/relgate/schema"
)

// JavaScriptHandler analyzes JavaScript and TypeScript source with pattern
// extraction. The registry maps both labels onto one instance.
type JavaScriptHandler struct{}

var _ Handler = &JavaScriptHandler{} // Compile-time check

var (
	jsFuncPattern    = regexp.MustCompile(`function\s+(\w+)\s*\(`)
	jsArrowPattern   = regexp.MustCompile(`const\s+(\w+)\s*=\s*\([^)]*\)\s*=>`)
	jsClassPattern   = regexp.MustCompile(`class\s+(\w+)`)
	jsReactPattern   = regexp.MustCompile(`(?:const|function)\s+(\w+)\s*=.*?(?:React\.Component|React\.FC)`)
	jsImportPattern  = regexp.MustCompile(`import\s+.*?\s+from\s+['"]([^'"]+)['"]`)
	jsRequirePattern = regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`)

	jsBranchPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bif\s*\(`),
		regexp.MustCompile(`\bfor\s*\(`),
		regexp.MustCompile(`\bwhile\s*\(`),
		regexp.MustCompile(`\bswitch\s*\(`),
		regexp.MustCompile(`\bcatch\s*\(`),
		regexp.MustCompile(`\?[^:\n]*:`), // ternary, one per line segment
	}
)

// Analyze extracts functions, arrow functions, classes, React components,
// ES6/CommonJS imports and a complexity estimate.
func (h *JavaScriptHandler) Analyze(file schema.FileRecord) Analysis {
	return Analysis{
		Components:   h.extractComponents(file.Content),
		Dependencies: h.extractDependencies(file.Content),
		Complexity:   h.estimateComplexity(file.Content),
	}
}

func (h *JavaScriptHandler) extractComponents(content string) []schema.Component {
	var components []schema.Component

	for _, match := range jsFuncPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindFunction,
		})
	}
	for _, match := range jsArrowPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindFunction,
		})
	}
	for _, match := range jsClassPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindClass,
		})
	}
	for _, match := range jsReactPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindComponent,
		})
	}

	return components
}

func (h *JavaScriptHandler) extractDependencies(content string) []string {
	var deps []string
	for _, match := range jsImportPattern.FindAllStringSubmatch(content, -1) {
		deps = append(deps, match[1])
	}
	for _, match := range jsRequirePattern.FindAllStringSubmatch(content, -1) {
		deps = append(deps, match[1])
	}
	return dedupe(deps)
}

func (h *JavaScriptHandler) estimateComplexity(content string) float64 {
	complexity := 1.0
	for _, pattern := range jsBranchPatterns {
		complexity += float64(len(pattern.FindAllStringIndex(content, -1)))
	}
	return complexity
}
