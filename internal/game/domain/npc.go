package domain

// WillAuceptinID is the identity of the only auto-vivified NPC, the casino
// opponent. NPC identities live in a namespace disjoint from player ids.
const WillAuceptinID = "will_auceptin"

// NPC is a persisted non-player record.
type NPC struct {
	Name     string `json:"name"`
	Bankroll int    `json:"bankroll"`
	Wins     int    `json:"wins"`
}

// NewWillAuceptin constructs the casino NPC with an empty ledger.
func NewWillAuceptin() NPC {
	return NPC{Name: "Will Auceptin"}
}
