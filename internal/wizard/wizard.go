// Package wizard implements the interactive threshold editor behind
// `qreport thresholds set`.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/stackmesa/qreport/internal/config"
)

// RunThresholdWizard collects Core Web Vitals thresholds through an
// interactive huh form, pre-populated with the current values.
func RunThresholdWizard(in io.Reader, out io.Writer, current config.Thresholds) (config.Thresholds, error) {
	fields := []struct {
		name  string
		title string
		value *float64
	}{
		{"fcp", "First Contentful Paint threshold (ms)", &current.FCP},
		{"lcp", "Largest Contentful Paint threshold (ms)", &current.LCP},
		{"cls", "Cumulative Layout Shift threshold", &current.CLS},
		{"fid", "First Input Delay threshold (ms)", &current.FID},
		{"tti", "Time to Interactive threshold (ms)", &current.TTI},
		{"si", "Speed Index threshold (ms)", &current.SI},
	}

	raw := make([]string, len(fields))
	inputs := make([]huh.Field, 0, len(fields))
	for i, f := range fields {
		raw[i] = formatThreshold(*f.value)
		inputs = append(inputs, huh.NewInput().
			Title(f.title).
			Description("Samples at or below this value count as passing").
			Value(&raw[i]).
			Validate(validateThreshold))
	}

	form := huh.NewForm(huh.NewGroup(inputs...)).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return current, fmt.Errorf("threshold wizard failed: %w", err)
	}

	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw[i]), 64)
		if err != nil {
			return current, fmt.Errorf("parsing %s threshold: %w", f.name, err)
		}
		*f.value = v
	}
	return current, nil
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validateThreshold(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
