package lang

import (
	"regexp"

	"github.com/relgate/relgate/schema"
)

// CppHandler analyzes C and C++ source with pattern extraction. The registry
// maps both labels onto one instance.
type CppHandler struct{}

var _ Handler = &CppHandler{} // Compile-time check

var (
	cppFuncPattern    = regexp.MustCompile(`(?:[\w:]+\s+)?(\w+)\s*\([^)]*\)\s*\{`)
	cppClassPattern   = regexp.MustCompile(`class\s+(\w+)`)
	cppStructPattern  = regexp.MustCompile(`struct\s+(\w+)`)
	cppIncludePattern = regexp.MustCompile(`#include\s*[<"]([^>"]+)[>"]`)

	cppBranchPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bif\s*\(`),
		regexp.MustCompile(`\bfor\s*\(`),
		regexp.MustCompile(`\bwhile\s*\(`),
		regexp.MustCompile(`\bswitch\s*\(`),
		regexp.MustCompile(`\bcatch\s*\(`),
		regexp.MustCompile(`\?[^:\n]*:`),
	}
)

// Analyze extracts functions, classes, structs, includes and a complexity
// estimate.
func (h *CppHandler) Analyze(file schema.FileRecord) Analysis {
	return Analysis{
		Components:   h.extractComponents(file.Content),
		Dependencies: h.extractDependencies(file.Content),
		Complexity:   h.estimateComplexity(file.Content),
	}
}

func (h *CppHandler) extractComponents(content string) []schema.Component {
	var components []schema.Component

	for _, match := range cppFuncPattern.FindAllStringSubmatch(content, -1) {
		if isControlFlowKeyword(match[1]) {
			continue
		}
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindFunction,
		})
	}
	for _, match := range cppClassPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindClass,
		})
	}
	for _, match := range cppStructPattern.FindAllStringSubmatch(content, -1) {
		components = append(components, schema.Component{
			Name: match[1],
			Kind: schema.KindStruct,
		})
	}

	return components
}

func (h *CppHandler) extractDependencies(content string) []string {
	var deps []string
	for _, match := range cppIncludePattern.FindAllStringSubmatch(content, -1) {
		deps = append(deps, match[1])
	}
	return dedupe(deps)
}

func (h *CppHandler) estimateComplexity(content string) float64 {
	complexity := 1.0
	for _, pattern := range cppBranchPatterns {
		complexity += float64(len(pattern.FindAllStringIndex(content, -1)))
	}
	return complexity
}
