package collect

import (
	"context"

	"github.com/stackmesa/qreport/internal/aggregate"
	"github.com/stackmesa/qreport/internal/grade"
	"github.com/stackmesa/qreport/internal/models"
)

// PerformancePrefix matches performance-*.json and performance-summary.json.
const PerformancePrefix = "performance-"

// perfArtifact mirrors the camelCase JSON written by the performance test
// runner. Missing fields decode to their zero values and fold as zero
// contribution, not as errors.
type perfArtifact struct {
	TotalTests      int                      `json:"totalTests"`
	PassedTests     int                      `json:"passedTests"`
	FailedTests     int                      `json:"failedTests"`
	SkippedTests    int                      `json:"skippedTests"`
	CoreWebVitals   map[string]vitalSamples  `json:"coreWebVitals"`
	PageMetrics     *pageMetricsArtifact     `json:"pageMetrics"`
	ResourceMetrics *resourceMetricsArtifact `json:"resourceMetrics"`
	PageResults     []pageResult             `json:"pageResults"`
	Issues          []models.Issue           `json:"issues"`
	Recommendations []models.Recommendation  `json:"recommendations"`
}

type vitalSamples struct {
	Values []float64 `json:"values"`
	Total  int       `json:"total"`
	Passed int       `json:"passed"`
}

type pageMetricsArtifact struct {
	PageCount            int     `json:"pageCount"`
	AvgLoadTime          float64 `json:"avgLoadTime"`
	MaxLoadTime          float64 `json:"maxLoadTime"`
	AvgDomContentLoaded  float64 `json:"avgDomContentLoaded"`
	AvgTimeToInteractive float64 `json:"avgTimeToInteractive"`
}

type resourceMetricsArtifact struct {
	TotalRequests   int     `json:"totalRequests"`
	TotalBytes      int64   `json:"totalBytes"`
	CacheHitRate    float64 `json:"cacheHitRate"`
	CompressionRate float64 `json:"compressionRate"`
}

type pageResult struct {
	URL      string  `json:"url"`
	LoadTime float64 `json:"loadTime"`
	Passed   bool    `json:"passed"`
}

// perfAccumulator holds the running fold state across performance artifacts.
// It is owned exclusively by Performance for the duration of one scan.
type perfAccumulator struct {
	summary     models.PerformanceSummary
	samples     map[string][]float64
	pageFiles   int // files that contributed page metrics
	rateFiles   int // files that contributed resource rates
	sumCacheHit float64
	sumCompress float64
	sumLoad     float64
	sumDOM      float64
	sumTTI      float64
}

// Performance scans root for performance artifacts and aggregates them.
func Performance(ctx context.Context, opts Options) (*models.PerformanceSummary, error) {
	acc := &perfAccumulator{samples: make(map[string][]float64)}

	folded, err := foldFiles(ctx, opts, PerformancePrefix, acc.fold)
	if err != nil {
		return nil, err
	}
	acc.summary.FilesScanned = folded

	return acc.finalize(opts), nil
}

func (acc *perfAccumulator) fold(a *perfArtifact) {
	s := &acc.summary
	s.TotalTests += a.TotalTests
	s.PassedTests += a.PassedTests
	s.FailedTests += a.FailedTests
	s.SkippedTests += a.SkippedTests

	for name, v := range a.CoreWebVitals {
		acc.samples[name] = append(acc.samples[name], v.Values...)
	}

	if pm := a.PageMetrics; pm != nil {
		acc.pageFiles++
		s.Pages.PageCount += pm.PageCount
		acc.sumLoad += pm.AvgLoadTime
		acc.sumDOM += pm.AvgDomContentLoaded
		acc.sumTTI += pm.AvgTimeToInteractive
		if pm.MaxLoadTime > s.Pages.MaxLoadTimeMs {
			s.Pages.MaxLoadTimeMs = pm.MaxLoadTime
		}
	}

	if rm := a.ResourceMetrics; rm != nil {
		acc.rateFiles++
		s.Resources.TotalRequests += rm.TotalRequests
		s.Resources.TotalBytes += rm.TotalBytes
		acc.sumCacheHit += rm.CacheHitRate
		acc.sumCompress += rm.CompressionRate
	}

	s.Issues = append(s.Issues, a.Issues...)
	s.Recommendations = append(s.Recommendations, a.Recommendations...)
}

func (acc *perfAccumulator) finalize(opts Options) *models.PerformanceSummary {
	s := &acc.summary
	thresholds := opts.Thresholds.ByName()
	for name, m := range s.Vitals.ByName() {
		*m = aggregate.SummarizeMetric(acc.samples[name], thresholds[name])
	}

	// Per-file averages: each artifact contributes its own rate with equal
	// weight (see models.ResourceMetrics).
	s.Resources.CacheHitRate = aggregate.Ratio(acc.sumCacheHit, float64(acc.rateFiles))
	s.Resources.CompressionRate = aggregate.Ratio(acc.sumCompress, float64(acc.rateFiles))
	s.Pages.AvgLoadTimeMs = aggregate.Ratio(acc.sumLoad, float64(acc.pageFiles))
	s.Pages.AvgDOMContentMs = aggregate.Ratio(acc.sumDOM, float64(acc.pageFiles))
	s.Pages.AvgInteractiveMs = aggregate.Ratio(acc.sumTTI, float64(acc.pageFiles))

	s.Score = aggregate.PerformanceScore(&s.Vitals)
	s.Grade = grade.Letter(s.Score)
	s.Status = aggregate.DomainStatus(s.TotalTests, s.FailedTests)

	issues, recs := aggregate.PerformanceAdvice(s)
	s.Issues = append(s.Issues, issues...)
	s.Recommendations = append(s.Recommendations, recs...)

	return s
}
