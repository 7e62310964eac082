package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/cpdmine/candidates"
	"github.com/katalvlaran/cpdmine/graphmodel"
	"github.com/katalvlaran/cpdmine/patterns"
)

// Run executes one full mining pass over graphs: candidate generation
// (package candidates), then cross-graph frequency counting and
// de-duplication (package patterns) under cfg's chosen strategy, finishing
// with a final id reassignment so the returned patterns carry contiguous
// ids 0..len(result)-1 in output order — candidate ids are an internal
// generation detail, never meant to leak into a mining run's output.
func Run(cfg *Config, graphs []*graphmodel.Graph) []patterns.PatternResult {
	logger := cfg.Logger

	logger.Info("candidate generation starting", zap.Int("input_graphs", len(graphs)))
	gen := candidates.New(cfg.Candidates)
	perGraph := gen.Generate(graphs)

	totalCandidates := 0
	for _, c := range perGraph {
		totalCandidates += len(c)
	}
	logger.Info("candidate generation finished", zap.Int("candidates", totalCandidates))

	strategy := patterns.Naive
	strategyName := "naive"
	if cfg.Parallel {
		strategy = patterns.Parallel
		strategyName = "parallel"
	}

	logger.Info("pattern discovery starting",
		zap.String("strategy", strategyName),
		zap.Int("min_support_exact", cfg.MinSupport),
		zap.Int("min_support_relaxed", cfg.MinSupportRelaxed),
	)
	results := strategy(cfg.Matcher, cfg.MinSupport, cfg.MinSupportRelaxed, perGraph)
	logger.Info("pattern discovery finished", zap.Int("patterns", len(results)))

	for i := range results {
		results[i].Pattern.ID = uint64(i)
	}
	return results
}
