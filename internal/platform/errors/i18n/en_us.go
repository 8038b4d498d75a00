package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeWagerInvalid       = "WAGER_INVALID"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodePathwayNameEmpty   = "PATHWAY_NAME_EMPTY"
	CodePathwayAlreadySet  = "PATHWAY_ALREADY_SET"
	CodePathwayNotFound    = "PATHWAY_NOT_FOUND"
	CodeNoPathway          = "NO_PATHWAY"
	CodeSequenceAtPinnacle = "SEQUENCE_AT_PINNACLE"
	CodeSequenceUndefined  = "SEQUENCE_UNDEFINED"
	CodeMissingPotion      = "MISSING_POTION"
	CodeStatUnknown        = "STAT_UNKNOWN"
	CodeNoStatPoints       = "NO_STAT_POINTS"
	CodeStatAtMinimum      = "STAT_AT_MINIMUM"
	CodeRecipeNotFound     = "RECIPE_NOT_FOUND"
	CodeMissingIngredient  = "MISSING_INGREDIENT"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeCooldownActive     = "COOLDOWN_ACTIVE"
	CodeAdminRequired      = "ADMIN_REQUIRED"
	CodeNotFound           = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Wager errors
		CodeWagerInvalid:      "Wager must be a positive whole number of pence",
		CodeInsufficientFunds: "Your balance cannot cover that wager",

		// Pathway errors
		CodePathwayNameEmpty:  "A pathway name is required",
		CodePathwayAlreadySet: "Your destiny is already set",
		CodePathwayNotFound:   "No pathway named {{.Pathway}} exists",
		CodeNoPathway:         "Civilians cannot do this. Choose a pathway first",

		// Sequence/ascension errors
		CodeSequenceAtPinnacle: "You have already reached the pinnacle of divinity",
		CodeSequenceUndefined:  "Sequence {{.Sequence}} of the {{.Pathway}} pathway is not recorded",
		CodeMissingPotion:      "You need the {{.Potion}} Potion to advance",

		// Characteristic errors
		CodeStatUnknown:   "Unknown characteristic: {{.Stat}}",
		CodeNoStatPoints:  "You have no characteristic points to assign",
		CodeStatAtMinimum: "{{.Stat}} cannot drop below 1",

		// Crafting/inventory errors
		CodeRecipeNotFound:    "Recipe not found",
		CodeMissingIngredient: "Missing ingredient: {{.Ingredient}} (needs {{.Count}})",
		CodeItemNotFound:      "Item not found",

		// Action-economy errors
		CodeCooldownActive: "You must wait {{.Remaining}} before doing that again",

		// Auth errors
		CodeAdminRequired: "This action requires administrator privileges",

		// Storage errors
		CodeNotFound: "The requested resource was not found",
	},
}
