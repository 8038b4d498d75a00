package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	base := New(CodeMissingPotion, "potion missing")
	wrapped := fmt.Errorf("advance: %w", base)

	if !stderrors.Is(wrapped, New(CodeMissingPotion, "other message")) {
		t.Fatal("expected code match through wrapping")
	}
	if stderrors.Is(wrapped, New(CodeNoPathway, "potion missing")) {
		t.Fatal("did not expect match on different code")
	}
}

func TestGetCodeUnknownForPlainErrors(t *testing.T) {
	if got := GetCode(stderrors.New("boom")); got != CodeUnknown {
		t.Fatalf("expected CodeUnknown, got %s", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodeNotFound, "load record", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestGetMetadata(t *testing.T) {
	err := WithMetadata(CodeMissingIngredient, "missing", map[string]string{"Ingredient": "ash"})
	if got := GetMetadata(err); got["Ingredient"] != "ash" {
		t.Fatalf("unexpected metadata: %v", got)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeWagerInvalid, http.StatusBadRequest},
		{CodeCooldownActive, http.StatusConflict},
		{CodeRecipeNotFound, http.StatusNotFound},
		{CodeAdminRequired, http.StatusForbidden},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.code, tc.want, got)
		}
	}
}
