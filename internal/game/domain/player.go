// Package domain holds the player-state model for the progression engine.
package domain

// Sequence bounds. Beyonders start at the civilian baseline and descend
// toward the pinnacle; the counter never increases.
const (
	SequenceCivilian = 9
	SequencePinnacle = 0
)

// SanityMax is the ceiling of the sanity resource.
const SanityMax = 100

// CivilianTitle is the acting title of a player with no pathway.
const CivilianTitle = "Civilian"

// Affiliation values assigned by the engine.
const (
	AffiliationNeutral    = "Neutral"
	AffiliationUnofficial = "Unofficial Beyonder"
)

// Default values for a freshly created record.
const (
	DefaultBalance     = 120
	DefaultMaxXP       = 100
	DefaultActingMaxXP = 200
	DefaultStatPoints  = 10
)

// Player is one persisted player record. Field names and JSON shape are the
// storage contract; the migration steps in the migrate package heal records
// written under older shapes into this one.
type Player struct {
	Balance        int            `json:"balance"`
	Pathway        string         `json:"pathway"`
	Sequence       int            `json:"sequence"`
	ActingName     string         `json:"acting_name"`
	Level          int            `json:"level"`
	XP             int            `json:"xp"`
	MaxXP          int            `json:"max_xp"`
	ActingXP       int            `json:"acting_xp"`
	ActingMaxXP    int            `json:"acting_max_xp"`
	Sanity         int            `json:"sanity"`
	Inventory      []string       `json:"inventory"`
	LastDaily      string         `json:"last_daily"`
	LastWork       string         `json:"last_work"`
	LastExpedition string         `json:"last_expedition"`
	LastAct        string         `json:"last_act"`
	ActingMastery  int            `json:"acting_mastery"`
	Affiliation    string         `json:"affiliation"`
	Stats          map[string]int `json:"stats"`
	StatPoints     int            `json:"stat_points"`
}

// NewPlayer constructs a record with the full default schema.
func NewPlayer() Player {
	return Player{
		Balance:     DefaultBalance,
		Pathway:     "",
		Sequence:    SequenceCivilian,
		ActingName:  CivilianTitle,
		Level:       1,
		XP:          0,
		MaxXP:       DefaultMaxXP,
		ActingXP:    0,
		ActingMaxXP: DefaultActingMaxXP,
		Sanity:      SanityMax,
		Inventory:   []string{},
		Affiliation: AffiliationNeutral,
		Stats:       NewBaseStats(),
		StatPoints:  DefaultStatPoints,
	}
}

// HasPathway reports whether the player has chosen a pathway.
func (p *Player) HasPathway() bool {
	return p.Pathway != ""
}

// LoseSanity subtracts amount, clamping at zero.
func (p *Player) LoseSanity(amount int) {
	p.Sanity -= amount
	if p.Sanity < 0 {
		p.Sanity = 0
	}
}

// GainSanity adds amount, capping at SanityMax.
func (p *Player) GainSanity(amount int) {
	p.Sanity += amount
	if p.Sanity > SanityMax {
		p.Sanity = SanityMax
	}
}

// GainActingXP adds amount to acting progress, capped at the current maximum.
func (p *Player) GainActingXP(amount int) {
	p.ActingXP += amount
	if p.ActingXP > p.ActingMaxXP {
		p.ActingXP = p.ActingMaxXP
	}
}

// ActingPercent is the acting completion of the current sequence in [0,100].
func (p *Player) ActingPercent() float64 {
	if p.ActingMaxXP <= 0 {
		return 100
	}
	percent := float64(p.ActingXP) / float64(p.ActingMaxXP) * 100
	if percent > 100 {
		percent = 100
	}
	return percent
}

// AddItem appends one unit of the item to the inventory multiset.
func (p *Player) AddItem(id string) {
	p.Inventory = append(p.Inventory, id)
}

// RemoveItem removes exactly one unit of the item. It reports false, leaving
// the inventory untouched, when no unit is present.
func (p *Player) RemoveItem(id string) bool {
	for i, have := range p.Inventory {
		if have == id {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// CountItem returns how many units of the item the inventory holds.
func (p *Player) CountItem(id string) int {
	count := 0
	for _, have := range p.Inventory {
		if have == id {
			count++
		}
	}
	return count
}
