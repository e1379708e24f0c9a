package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/durpick/internal/models"
)

// FormatDuration spells a triple out for the summary line ("1h 5m", "45s").
// Zero units are skipped; an all-zero value reads "0s".
func FormatDuration(d models.Duration) string {
	var parts []string
	if d.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", d.Hours))
	}
	if d.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", d.Minutes))
	}
	if d.Seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", d.Seconds))
	}
	return strings.Join(parts, " ")
}
