package models

// Severity classifies how urgent an Issue is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Priority classifies how soon a Recommendation should be acted on.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Issue describes a concrete problem found during aggregation, such as a
// metric exceeding its threshold. Issues are append-only; they are never
// mutated after creation.
type Issue struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
}

// Recommendation is a suggested follow-up derived from threshold checks.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
}
