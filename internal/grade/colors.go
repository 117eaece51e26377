package grade

import "github.com/stackmesa/qreport/internal/models"

// neutralGray is the fallback color for unknown grades and statuses.
const neutralGray = "#9e9e9e"

var gradeColors = map[string]string{
	"A+": "#2e7d32",
	"A":  "#2e7d32",
	"B+": "#558b2f",
	"B":  "#558b2f",
	"C+": "#f9a825",
	"C":  "#f9a825",
	"D+": "#ef6c00",
	"D":  "#ef6c00",
	"F":  "#c62828",
}

var statusColors = map[models.Status]string{
	models.StatusPassed:  "#2e7d32",
	models.StatusFailed:  "#c62828",
	models.StatusSkipped: "#f9a825",
	models.StatusEmpty:   neutralGray,
}

// Color returns the badge color for a letter grade. Unknown grades map to a
// neutral gray.
func Color(letter string) string {
	if c, ok := gradeColors[letter]; ok {
		return c
	}
	return neutralGray
}

// StatusColor returns the badge color for a run status. Unknown statuses map
// to a neutral gray.
func StatusColor(s models.Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return neutralGray
}
