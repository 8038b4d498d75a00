package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors/i18n"
	"golang.org/x/text/language"
)

// errorPayload is the wire shape of every failed response.
type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError renders a failure as {code, message}, localizing the message
// by the request's Accept-Language header. Non-typed errors map to the
// unknown code so internals never leak to callers.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(apperrors.CodeUnknown, "internal error", err)
	}

	catalog := i18n.GetCatalog(localeFromRequest(r))
	writeJSON(w, appErr.Code.HTTPStatus(), errorPayload{
		Code:    string(appErr.Code),
		Message: catalog.Format(string(appErr.Code), appErr.Metadata),
	})
}

// localeFromRequest picks the first parsable Accept-Language tag.
func localeFromRequest(r *http.Request) string {
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}
