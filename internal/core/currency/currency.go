// Package currency implements minor-unit wealth arithmetic and formatting.
//
// All balances are stored as integer pence. Display decomposes into three
// denominations: 12 pence to a soli, 240 pence (20 soli) to a gold pound.
package currency

import (
	"fmt"
	"strings"
	"time"
)

const (
	// PencePerSoli is the number of pence in one soli.
	PencePerSoli = 12
	// PencePerPound is the number of pence in one gold pound.
	PencePerPound = 240
)

// Format renders a pence total as its non-zero denominations, largest first.
// A zero total renders as "0 Pence" rather than an empty string.
func Format(totalPence int) string {
	pounds := totalPence / PencePerPound
	soli := (totalPence % PencePerPound) / PencePerSoli
	pence := totalPence % PencePerSoli

	var parts []string
	if pounds > 0 {
		label := "Gold Pound"
		if pounds > 1 {
			label = "Gold Pounds"
		}
		parts = append(parts, fmt.Sprintf("%d %s", pounds, label))
	}
	if soli > 0 {
		parts = append(parts, fmt.Sprintf("%d Soli", soli))
	}
	if pence > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d Pence", pence))
	}
	return strings.Join(parts, ", ")
}

// FormatDuration renders a duration as compact h/m/s parts, omitting zero
// leading units. Used for cooldown-remaining messages.
func FormatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}
