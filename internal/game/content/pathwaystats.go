package content

// PathwayBonuses is the fixed characteristic bonus table applied when a
// pathway is chosen (and retroactively by record migration).
var PathwayBonuses = map[string]map[string]int{
	"Fool":             {"INT": 3, "POW": 2},
	"Error":            {"DEX": 3, "INT": 2},
	"Door":             {"POW": 3, "INT": 2},
	"Visionary":        {"INT": 3, "APP": 2},
	"Tyrant":           {"STR": 3, "CON": 2},
	"Sun":              {"POW": 3, "APP": 2},
	"Darkness":         {"POW": 3, "CON": 2},
	"Death":            {"CON": 3, "POW": 2},
	"Twilight Giant":   {"STR": 3, "SIZ": 2},
	"Red Priest":       {"STR": 2, "DEX": 2, "CON": 1},
	"Demoness":         {"DEX": 3, "APP": 2},
	"Hanged Man":       {"POW": 3, "CON": 2},
	"Abyss":            {"CON": 3, "STR": 2},
	"Chained":          {"CON": 3, "POW": 2},
	"Wheel of Fortune": {"POW": 5},
	"Hermit":           {"INT": 3, "EDU": 2},
	"White Tower":      {"EDU": 3, "INT": 2},
	"Black Emperor":    {"INT": 3, "APP": 2},
	"Justiciar":        {"POW": 3, "STR": 2},
	"Mother":           {"CON": 3, "EDU": 2},
	"Moon":             {"EDU": 3, "CON": 2},
	"Paragon":          {"INT": 3, "EDU": 2},
}
