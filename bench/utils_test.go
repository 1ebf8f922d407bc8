package ohash_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Operations int                `json:"operations"`
	NsPerOp    float64            `json:"ns_per_op"`
	Metrics    map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results of one run
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// getMemoryStats returns the current memory stats as a map
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// saveBenchmarkResult appends metrics to benchmark_history/<resultsFile> in
// the repository root.
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "get current directory")
	}

	benchmarkDir := filepath.Join(filepath.Dir(currentDir), "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return "", errors.Wrap(err, "create benchmark directory")
	}

	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		GoVersion: runtime.Version(),
	}

	// Merge with existing results if available
	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existing, err := os.ReadFile(latestFile); err == nil {
		var prev BenchmarkSummary
		if err := json.Unmarshal(existing, &prev); err == nil {
			summary.Results = prev.Results
		}
	}
	summary.Results = append(summary.Results, metrics)

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshal benchmark summary")
	}
	if err := os.WriteFile(latestFile, data, 0644); err != nil {
		return "", errors.Wrap(err, "write benchmark summary")
	}
	return latestFile, nil
}
