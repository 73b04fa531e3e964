// Package agg aggregates per-file structural facts into a repository-level
// code analysis: a bounded component inventory, a deduplicated dependency
// union and a complexity summary.
package agg

import (
	"fmt"
	"math"
	"sort"

	"github.com/relgate/relgate/core/lang"
	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// FileFacts pairs a file with the structural facts extracted for it. Sampled
// marks whether the complexity value is a real measurement: files routed
// through the generic fallback, and files whose handler could not parse them,
// carry Sampled=false and never dilute the complexity summary.
type FileFacts struct {
	File     schema.FileRecord
	Facts    lang.Analysis
	Sampled  bool
	Fallback bool
}

// Analyzer runs language handlers over file batches. The registry is injected
// so tests and callers control exactly which handlers participate.
type Analyzer struct {
	registry *lang.Registry
}

// NewAnalyzer creates an analyzer backed by the given handler registry.
func NewAnalyzer(registry *lang.Registry) *Analyzer {
	return &Analyzer{registry: registry}
}

// Registry exposes the underlying handler registry.
func (a *Analyzer) Registry() *lang.Registry {
	return a.registry
}

// AnalyzeFile extracts structural facts for a single file. A file whose
// language has no registered handler degrades to generic component extraction
// with no dependency or complexity signal. A handler panic is contained to
// the offending file: it is logged and the file yields empty facts.
func (a *Analyzer) AnalyzeFile(file schema.FileRecord) (facts FileFacts) {
	facts = FileFacts{File: file}

	defer func() {
		if r := recover(); r != nil {
			contract.LogWarn(fmt.Sprintf("analyzing %s", file.Path), fmt.Errorf("%v", r))
			facts.Facts = lang.Analysis{}
			facts.Sampled = false
		}
	}()

	handler, ok := a.registry.Get(file.Language)
	if !ok {
		facts.Fallback = true
		facts.Facts = lang.Analysis{
			Components: lang.ExtractGenericComponents(file.Content),
		}
		return facts
	}

	facts.Facts = handler.Analyze(file)
	// Complexity 0 marks a parse failure; such files contribute components
	// and dependencies they may have yielded but no complexity sample.
	facts.Sampled = facts.Facts.Complexity > 0
	return facts
}

// AnalyzeBatch extracts facts for every file in input order.
func (a *Analyzer) AnalyzeBatch(files []schema.FileRecord) []FileFacts {
	results := make([]FileFacts, len(files))
	for i, file := range files {
		results[i] = a.AnalyzeFile(file)
	}
	return results
}

// Aggregate folds per-file facts into one CodeAnalysis. The visible component
// list is capped while TotalComponents keeps the true count; dependencies are
// the sorted union across files, also capped. Average and max complexity are
// computed over sampled files only.
func Aggregate(results []FileFacts) schema.CodeAnalysis {
	analysis := schema.CodeAnalysis{
		Components:   []schema.Component{},
		Dependencies: []string{},
	}

	depSet := make(map[string]struct{})
	var sum, maxComplexity float64

	for _, r := range results {
		analysis.TotalComponents += len(r.Facts.Components)
		for _, c := range r.Facts.Components {
			if len(analysis.Components) < schema.MaxComponentList {
				analysis.Components = append(analysis.Components, c)
			}
		}
		for _, d := range r.Facts.Dependencies {
			depSet[d] = struct{}{}
		}
		if r.Sampled {
			analysis.Complexity.Samples++
			sum += r.Facts.Complexity
			maxComplexity = math.Max(maxComplexity, r.Facts.Complexity)
		}
	}

	deps := make([]string, 0, len(depSet))
	for d := range depSet {
		deps = append(deps, d)
	}
	sort.Strings(deps)
	if len(deps) > schema.MaxDependencyList {
		deps = deps[:schema.MaxDependencyList]
	}
	analysis.Dependencies = deps

	if analysis.Complexity.Samples > 0 {
		avg := sum / float64(analysis.Complexity.Samples)
		analysis.Complexity.Average = math.Round(avg*100) / 100
		analysis.Complexity.Max = maxComplexity
	}
	return analysis
}

// Analyze is the one-shot form: extract facts for every file and aggregate.
func (a *Analyzer) Analyze(files []schema.FileRecord) schema.CodeAnalysis {
	return Aggregate(a.AnalyzeBatch(files))
}
