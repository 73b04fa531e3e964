// Package lang has the language handler contract, the handler registry and
// one handler per supported language family.
package lang

import (
	"sort"

	"github.com/relgate/relgate/schema"
)

// Analysis is the structural fact set a handler extracts from one file:
// discovered components, deduplicated dependency identifiers, and a
// McCabe-style complexity estimate. Complexity 0 means the file could not be
// parsed; a parsed file is always at least 1.
type Analysis struct {
	Components   []schema.Component
	Dependencies []string
	Complexity   float64
}

// Handler analyzes source content for one language family. Implementations
// are stateless and safe for concurrent use. A handler never fails: malformed
// input degrades to an empty Analysis with complexity 0.
type Handler interface {
	Analyze(file schema.FileRecord) Analysis
}

// Registry maps language labels to handlers. It is an explicitly constructed
// value passed into the analyzer, not process-global state, so pipeline runs
// stay independently testable.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// DefaultRegistry creates a registry with all built-in handlers registered.
// TypeScript reuses the JavaScript handler and C reuses the C++ handler.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("Go", &GoHandler{})
	r.Register("Python", &PythonHandler{})
	r.Register("Java", &JavaHandler{})
	r.Register("JavaScript", &JavaScriptHandler{})
	r.Register("TypeScript", &JavaScriptHandler{})
	r.Register("C", &CppHandler{})
	r.Register("C++", &CppHandler{})
	return r
}

// Register adds a handler for a language label. Duplicate registrations
// overwrite the previous handler.
func (r *Registry) Register(label string, h Handler) {
	r.handlers[label] = h
}

// Get returns the handler for a language label. Absence is not an error;
// callers fall back to generic analysis.
func (r *Registry) Get(label string) (Handler, bool) {
	h, ok := r.handlers[label]
	return h, ok
}

// Languages returns the sorted list of registered language labels.
func (r *Registry) Languages() []string {
	labels := make([]string, 0, len(r.handlers))
	for label := range r.handlers {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// dedupe removes duplicate identifiers while keeping first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// controlFlowKeywords are call-like keywords that must never be reported as
// components by the pattern-based handlers.
var controlFlowKeywords = map[string]struct{}{
	"if":     {},
	"for":    {},
	"while":  {},
	"switch": {},
	"catch":  {},
}

func isControlFlowKeyword(name string) bool {
	_, ok := controlFlowKeywords[name]
	return ok
}
