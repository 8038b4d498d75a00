package app

import (
	"context"
	"fmt"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/cooldown"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/currency"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/dice"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/domain"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/progression"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// Work payout and reward constants.
const (
	workPayMin = 10
	workPayMax = 20
	workXP     = 5

	dailyPay      = 120
	dailyXP       = 50
	dailyActingXP = 15
)

// Casino duel roll range.
const (
	casinoRollMin = 2
	casinoRollMax = 12
)

func formatPence(totalPence int) string {
	return currency.Format(totalPence)
}

// WorkResult reports one completed work shift.
type WorkResult struct {
	Earned     int    `json:"earned"`
	EarnedText string `json:"earned_text"`
	XPGained   int    `json:"xp_gained"`
	LeveledUp  bool   `json:"leveled_up"`
	Level      int    `json:"level"`
	Balance    int    `json:"balance"`
}

// Work pays a small wage once per hour.
func (s *Service) Work(ctx context.Context, playerID string) (WorkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return WorkResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	now := s.now()
	if cdErr := checkCooldown(player.LastWork, WorkCooldown, now, "work"); cdErr != nil {
		return WorkResult{}, cdErr
	}

	earned := dice.Between(s.rng, workPayMin, workPayMax)
	player.Balance += earned
	leveledUp, level := progression.GainXP(&player, workXP)
	player.LastWork = cooldown.Mark(now)

	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return WorkResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	return WorkResult{
		Earned:     earned,
		EarnedText: formatPence(earned),
		XPGained:   workXP,
		LeveledUp:  leveledUp,
		Level:      level,
		Balance:    player.Balance,
	}, nil
}

// DailyResult reports one claimed daily stipend.
type DailyResult struct {
	Earned       int    `json:"earned"`
	EarnedText   string `json:"earned_text"`
	XPGained     int    `json:"xp_gained"`
	ActingGained int    `json:"acting_gained"`
	ItemID       string `json:"item_id,omitempty"`
	ItemName     string `json:"item_name,omitempty"`
	LeveledUp    bool   `json:"leveled_up"`
	Level        int    `json:"level"`
	Balance      int    `json:"balance"`
}

// Daily pays the fixed stipend once per day: pence, xp, capped acting xp
// and one uniformly drawn catalog item.
func (s *Service) Daily(ctx context.Context, playerID string) (DailyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return DailyResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	now := s.now()
	if cdErr := checkCooldown(player.LastDaily, DailyCooldown, now, "daily"); cdErr != nil {
		return DailyResult{}, cdErr
	}

	player.Balance += dailyPay
	leveledUp, level := progression.GainXP(&player, dailyXP)
	player.GainActingXP(dailyActingXP)

	result := DailyResult{
		Earned:       dailyPay,
		EarnedText:   formatPence(dailyPay),
		XPGained:     dailyXP,
		ActingGained: dailyActingXP,
		LeveledUp:    leveledUp,
		Level:        level,
	}
	if itemID, ok := s.drawItem(); ok {
		player.AddItem(itemID)
		result.ItemID = itemID
		result.ItemName = s.content.ItemName(itemID)
	}
	player.LastDaily = cooldown.Mark(now)

	if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
		return DailyResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
	}
	result.Balance = player.Balance
	return result, nil
}

// drawItem picks one item id uniformly from the sorted catalog. An empty
// catalog grants nothing.
func (s *Service) drawItem() (string, bool) {
	ids := s.content.ItemIDs()
	if len(ids) == 0 {
		return "", false
	}
	return ids[s.rng.Intn(len(ids))], true
}

// Casino duel outcomes.
const (
	CasinoWin  = "win"
	CasinoLoss = "loss"
	CasinoTie  = "tie"
)

// CasinoResult reports one resolved duel against the house NPC.
type CasinoResult struct {
	Wager      int        `json:"wager"`
	PlayerRoll int        `json:"player_roll"`
	NPCRoll    int        `json:"npc_roll"`
	Outcome    string     `json:"outcome"`
	Balance    int        `json:"balance"`
	NPC        domain.NPC `json:"npc"`
}

// Casino duels the player against Will Auceptin for the wager. Both sides
// roll uniformly; a tie moves no money. An all-in wager stakes the whole
// balance, so a loss lands exactly on zero.
func (s *Service) Casino(ctx context.Context, playerID string, wager int, allIn bool) (CasinoResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.store.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return CasinoResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load player", err)
	}
	if allIn {
		wager = player.Balance
	}
	if wager < 1 {
		return CasinoResult{}, apperrors.New(apperrors.CodeWagerInvalid, "wager must be at least 1 pence")
	}
	if wager > player.Balance {
		return CasinoResult{}, apperrors.WithMetadata(apperrors.CodeInsufficientFunds,
			fmt.Sprintf("wager %s exceeds balance %s", formatPence(wager), formatPence(player.Balance)),
			map[string]string{
				"Wager":   formatPence(wager),
				"Balance": formatPence(player.Balance),
			})
	}

	npc, err := s.store.GetOrCreateNPC(ctx, domain.WillAuceptinID, domain.NewWillAuceptin())
	if err != nil {
		return CasinoResult{}, apperrors.Wrap(apperrors.CodeUnknown, "load npc", err)
	}

	duel := dice.Contest(s.rng, casinoRollMin, casinoRollMax)
	result := CasinoResult{
		Wager:      wager,
		PlayerRoll: duel.Challenger,
		NPCRoll:    duel.Opponent,
	}
	switch {
	case duel.Margin > 0:
		result.Outcome = CasinoWin
		player.Balance += wager
	case duel.Margin < 0:
		result.Outcome = CasinoLoss
		player.Balance -= wager
		npc.Bankroll += wager
		npc.Wins++
	default:
		result.Outcome = CasinoTie
	}

	if result.Outcome != CasinoTie {
		if err := s.store.PutPlayer(ctx, playerID, player); err != nil {
			return CasinoResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save player", err)
		}
	}
	if result.Outcome == CasinoLoss {
		if err := s.store.PutNPC(ctx, domain.WillAuceptinID, npc); err != nil {
			return CasinoResult{}, apperrors.Wrap(apperrors.CodeUnknown, "save npc", err)
		}
	}
	result.Balance = player.Balance
	result.NPC = npc
	return result, nil
}
