package httphandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/i18n"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		ct := r.Header.Get("Content-Type")
		if ct != "application/json" && !strings.HasPrefix(ct, "application/json;") {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

type localeCtxKey struct{}

// ResolveLocale picks the response language: an explicit `locale`
// query parameter wins, then Accept-Language, then Hebrew. A locale
// parameter naming an unsupported language is a client error, while a
// merely unsupported Accept-Language quietly gets the default.
func ResolveLocale(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if raw := r.URL.Query().Get("locale"); raw != "" {
			l, ok := i18n.Parse(raw)
			if !ok {
				writeError(w, r, apperr.InvalidLocale(raw))
				return
			}
			next.ServeHTTP(w, r.WithContext(withLocale(r.Context(), l)))
			return
		}

		l := localeFromAcceptLanguage(r.Header.Get("Accept-Language"))
		next.ServeHTTP(w, r.WithContext(withLocale(r.Context(), l)))
	}
	return http.HandlerFunc(hf)
}

func withLocale(ctx context.Context, l i18n.Locale) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, l)
}

func localeOf(r *http.Request) i18n.Locale {
	if l, ok := r.Context().Value(localeCtxKey{}).(i18n.Locale); ok {
		return l
	}
	return i18n.DefaultLocale
}

// localeFromAcceptLanguage walks the header's preference list and
// returns the first supported language. Quality weights are ignored,
// the listed order decides.
func localeFromAcceptLanguage(header string) i18n.Locale {
	for _, part := range strings.Split(header, ",") {
		raw, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if l, ok := i18n.Parse(raw); ok {
			return l
		}
	}
	return i18n.DefaultLocale
}
