// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Wager errors
	CodeWagerInvalid      Code = "WAGER_INVALID"
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"

	// Pathway errors
	CodePathwayNameEmpty  Code = "PATHWAY_NAME_EMPTY"
	CodePathwayAlreadySet Code = "PATHWAY_ALREADY_SET"
	CodePathwayNotFound   Code = "PATHWAY_NOT_FOUND"
	CodeNoPathway         Code = "NO_PATHWAY"

	// Sequence/ascension errors
	CodeSequenceAtPinnacle Code = "SEQUENCE_AT_PINNACLE"
	CodeSequenceUndefined  Code = "SEQUENCE_UNDEFINED"
	CodeMissingPotion      Code = "MISSING_POTION"

	// Characteristic errors
	CodeStatUnknown   Code = "STAT_UNKNOWN"
	CodeNoStatPoints  Code = "NO_STAT_POINTS"
	CodeStatAtMinimum Code = "STAT_AT_MINIMUM"

	// Crafting/inventory errors
	CodeRecipeNotFound    Code = "RECIPE_NOT_FOUND"
	CodeMissingIngredient Code = "MISSING_INGREDIENT"
	CodeItemNotFound      Code = "ITEM_NOT_FOUND"

	// Action-economy errors
	CodeCooldownActive Code = "COOLDOWN_ACTIVE"

	// Auth errors
	CodeAdminRequired Code = "ADMIN_REQUIRED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeWagerInvalid,
		CodePathwayNameEmpty,
		CodeStatUnknown:
		return http.StatusBadRequest

	// Conflict - state doesn't allow operation
	case CodeInsufficientFunds,
		CodePathwayAlreadySet,
		CodeNoPathway,
		CodeSequenceAtPinnacle,
		CodeMissingPotion,
		CodeNoStatPoints,
		CodeStatAtMinimum,
		CodeMissingIngredient,
		CodeCooldownActive:
		return http.StatusConflict

	// Not found - resource doesn't exist
	case CodeNotFound,
		CodePathwayNotFound,
		CodeSequenceUndefined,
		CodeRecipeNotFound,
		CodeItemNotFound:
		return http.StatusNotFound

	case CodeAdminRequired:
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}
