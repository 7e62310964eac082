// Package pipeline orchestrates the full mining run (C6): candidate
// generation (package candidates) feeding cross-graph frequency counting
// (package patterns), with a validated, functional-options Config in the
// teacher's GraphOption style and structured zap logging around each stage,
// mirroring the original implementation's staged progress reporting.
package pipeline
