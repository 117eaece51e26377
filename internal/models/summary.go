package models

import "time"

// Status represents the outcome status of a test domain or of the whole run.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	// StatusEmpty is used when a domain had no artifact files at all.
	StatusEmpty Status = "empty"
)

// MetricSample is a single numeric observation tagged with a metric name.
// Samples only live while artifact files are being folded; they are not
// serialized.
type MetricSample struct {
	Metric string
	Value  float64
}

// MetricSummary contains the per-metric aggregate for one tracked metric.
type MetricSummary struct {
	Median    float64 `json:"median"`
	P95       float64 `json:"p95"`
	Threshold float64 `json:"threshold"`
	Passed    int     `json:"passed"`
	Total     int     `json:"total"`
	Score     float64 `json:"score"`
}

// CoreWebVitals holds one MetricSummary per tracked Core Web Vital.
type CoreWebVitals struct {
	FCP MetricSummary `json:"fcp"`
	LCP MetricSummary `json:"lcp"`
	CLS MetricSummary `json:"cls"`
	FID MetricSummary `json:"fid"`
	TTI MetricSummary `json:"tti"`
	SI  MetricSummary `json:"si"`
}

// ByName returns the vitals keyed by their canonical lowercase names.
// The returned pointers alias the receiver's fields.
func (c *CoreWebVitals) ByName() map[string]*MetricSummary {
	return map[string]*MetricSummary{
		"fcp": &c.FCP,
		"lcp": &c.LCP,
		"cls": &c.CLS,
		"fid": &c.FID,
		"tti": &c.TTI,
		"si":  &c.SI,
	}
}

// PageMetrics aggregates page-level load timings across all scanned pages.
type PageMetrics struct {
	PageCount        int     `json:"page_count"`
	AvgLoadTimeMs    float64 `json:"avg_load_time_ms"`
	MaxLoadTimeMs    float64 `json:"max_load_time_ms"`
	AvgDOMContentMs  float64 `json:"avg_dom_content_ms"`
	AvgInteractiveMs float64 `json:"avg_interactive_ms"`
}

// ResourceMetrics aggregates network-level counters across all scanned pages.
//
// CacheHitRate and CompressionRate are per-file averages: each artifact file
// contributes its own rate with equal weight regardless of how many requests
// it covers. This is an accepted simplification, not a weighted total.
type ResourceMetrics struct {
	TotalRequests   int     `json:"total_requests"`
	TotalBytes      int64   `json:"total_bytes"`
	CacheHitRate    float64 `json:"cache_hit_rate"`
	CompressionRate float64 `json:"compression_rate"`
}

// PerformanceSummary is the aggregated result of all performance artifacts.
type PerformanceSummary struct {
	TotalTests      int              `json:"total_tests"`
	PassedTests     int              `json:"passed_tests"`
	FailedTests     int              `json:"failed_tests"`
	SkippedTests    int              `json:"skipped_tests"`
	Status          Status           `json:"status"`
	Score           float64          `json:"score"`
	Grade           string           `json:"grade"`
	Vitals          CoreWebVitals    `json:"core_web_vitals"`
	Pages           PageMetrics      `json:"page_metrics"`
	Resources       ResourceMetrics  `json:"resource_metrics"`
	Issues          []Issue          `json:"issues,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	FilesScanned    int              `json:"files_scanned"`
}

// ComplianceCount is a passed/total pair for one WCAG conformance level.
type ComplianceCount struct {
	Passed int `json:"passed"`
	Total  int `json:"total"`
}

// WCAGCompliance holds compliance counts per WCAG level.
type WCAGCompliance struct {
	AA  ComplianceCount `json:"aa"`
	AAA ComplianceCount `json:"aaa"`
}

// ViolationCounts buckets accessibility violations by severity.
type ViolationCounts struct {
	Critical int `json:"critical"`
	Serious  int `json:"serious"`
	Moderate int `json:"moderate"`
	Minor    int `json:"minor"`
}

// Total returns the number of violations across all severities.
func (v ViolationCounts) Total() int {
	return v.Critical + v.Serious + v.Moderate + v.Minor
}

// AccessibilitySummary is the aggregated result of all accessibility artifacts.
type AccessibilitySummary struct {
	TotalTests      int              `json:"total_tests"`
	PassedTests     int              `json:"passed_tests"`
	FailedTests     int              `json:"failed_tests"`
	Status          Status           `json:"status"`
	Score           float64          `json:"score"`
	Grade           string           `json:"grade"`
	WCAG            WCAGCompliance   `json:"wcag_compliance"`
	KeyboardNav     float64          `json:"keyboard_navigation_score"`
	ScreenReader    float64          `json:"screen_reader_score"`
	ColorContrast   float64          `json:"color_contrast_score"`
	FocusManagement float64          `json:"focus_management_score"`
	Violations      ViolationCounts  `json:"violations"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	FilesScanned    int              `json:"files_scanned"`
}

// BrowserStats is the per-browser breakdown of E2E results.
type BrowserStats struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// E2ESummary is the aggregated result of all end-to-end test artifacts.
type E2ESummary struct {
	TotalTests   int                     `json:"total_tests"`
	PassedTests  int                     `json:"passed_tests"`
	FailedTests  int                     `json:"failed_tests"`
	SkippedTests int                     `json:"skipped_tests"`
	FlakyTests   int                     `json:"flaky_tests"`
	DurationMs   int64                   `json:"duration_ms"`
	Status       Status                  `json:"status"`
	Browsers     map[string]BrowserStats `json:"browsers,omitempty"`
	FilesScanned int                     `json:"files_scanned"`
}

// VisualSummary is the aggregated result of all visual-regression artifacts.
type VisualSummary struct {
	TotalTests         int    `json:"total_tests"`
	PassedTests        int    `json:"passed_tests"`
	FailedTests        int    `json:"failed_tests"`
	Differences        int    `json:"differences"`
	NewScreenshots     int    `json:"new_screenshots"`
	UpdatedScreenshots int    `json:"updated_screenshots"`
	Status             Status `json:"status"`
	FilesScanned       int    `json:"files_scanned"`
}

// OverallSummary contains cross-domain totals.
type OverallSummary struct {
	TotalTests   int     `json:"total_tests"`
	PassedTests  int     `json:"passed_tests"`
	FailedTests  int     `json:"failed_tests"`
	SkippedTests int     `json:"skipped_tests"`
	Status       Status  `json:"status"`
	Score        float64 `json:"score"`
	Grade        string  `json:"grade"`
}

// ArtifactIndex holds paths to run artifacts referenced from the report.
type ArtifactIndex struct {
	Reports     []string `json:"reports,omitempty"`
	Traces      []string `json:"traces,omitempty"`
	Screenshots []string `json:"screenshots,omitempty"`
	Videos      []string `json:"videos,omitempty"`
}

// RunMetadata is descriptive CI context. It is populated from the GitHub
// Actions environment when available and never drives branching logic.
type RunMetadata struct {
	RunID      string `json:"run_id,omitempty"`
	RunURL     string `json:"run_url,omitempty"`
	Repository string `json:"repository,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Actor      string `json:"actor,omitempty"`
	Event      string `json:"event,omitempty"`
}

// ConsolidatedSummary combines all domain summaries into the top-level
// report object. The JSON serialization of this struct is the authoritative
// output; HTML reports are derived from it and never read back.
type ConsolidatedSummary struct {
	Timestamp       time.Time             `json:"timestamp"`
	Overall         OverallSummary        `json:"overall"`
	Performance     *PerformanceSummary   `json:"performance,omitempty"`
	Accessibility   *AccessibilitySummary `json:"accessibility,omitempty"`
	E2E             *E2ESummary           `json:"e2e,omitempty"`
	Visual          *VisualSummary        `json:"visual_regression,omitempty"`
	Issues          []Issue               `json:"issues,omitempty"`
	Recommendations []Recommendation      `json:"recommendations,omitempty"`
	Artifacts       ArtifactIndex         `json:"artifacts"`
	Metadata        RunMetadata           `json:"metadata"`
}
