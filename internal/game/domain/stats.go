package domain

// StatKeys are the eight fixed characteristics, in display order.
var StatKeys = []string{"STR", "CON", "SIZ", "DEX", "APP", "INT", "POW", "EDU"}

// StatNames maps characteristic keys to display names.
var StatNames = map[string]string{
	"STR": "Strength",
	"CON": "Constitution",
	"SIZ": "Size",
	"DEX": "Dexterity",
	"APP": "Appearance",
	"INT": "Intelligence",
	"POW": "Power",
	"EDU": "Education",
}

// IsStatKey reports whether key names one of the fixed characteristics.
func IsStatKey(key string) bool {
	_, ok := StatNames[key]
	return ok
}

// NewBaseStats returns the characteristic map with every stat at 1.
func NewBaseStats() map[string]int {
	stats := make(map[string]int, len(StatKeys))
	for _, key := range StatKeys {
		stats[key] = 1
	}
	return stats
}
