package lang

import (
	"testing"

	"github.com/relgate/relgate/schema"
	"github.com/stretchr/testify/assert"
)

// TestCppHandlerComponents extracts functions, classes and structs while
// filtering control-flow keywords from the function pattern.
func TestCppHandlerComponents(t *testing.T) {
	content := `#include <vector>
#include "config.h"

struct Options {
	int level;
};

class Engine {
};

int compute(int n) {
	if (n > 0) {
		return n;
	}
	return 0;
}
`
	h := &CppHandler{}
	result := h.Analyze(schema.FileRecord{Name: "engine.cpp", Content: content})

	names := make(map[string]schema.ComponentKind)
	for _, c := range result.Components {
		names[c.Name] = c.Kind
		assert.NotContains(t, []string{"if", "for", "while", "switch", "catch"}, c.Name)
	}
	assert.Equal(t, schema.KindStruct, names["Options"])
	assert.Equal(t, schema.KindClass, names["Engine"])
	assert.Equal(t, schema.KindFunction, names["compute"])

	assert.ElementsMatch(t, []string{"vector", "config.h"}, result.Dependencies)
}

// TestCppHandlerComplexity counts 25 branch points to exercise saturation
// inputs downstream.
func TestCppHandlerComplexity(t *testing.T) {
	content := ""
	for range 25 {
		content += "if (x) { y(); }\n"
	}

	h := &CppHandler{}
	result := h.Analyze(schema.FileRecord{Name: "b.cpp", Content: content})

	assert.InDelta(t, 26.0, result.Complexity, 0.001)
}
