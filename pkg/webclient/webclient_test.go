package webclient_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/webclient"
)

type pricePayload struct {
	ProductID string  `json:"productId"`
	Amount    float64 `json:"amount"`
}

func TestGet(t *testing.T) {
	t.Run("DecodesJSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/prices/prod-1", r.URL.Path)
				assert.Equal(t, "ILS", r.URL.Query().Get("currency"))
				assert.Equal(t, "secret", r.Header.Get("X-Affiliate-Key"))
				json.NewEncoder(w).Encode(pricePayload{ProductID: "prod-1", Amount: 4999})
			}))
		defer srv.Close()

		cl := webclient.New(srv.URL, webclient.WithHeader("X-Affiliate-Key", "secret"))

		var got pricePayload
		err := cl.Get(t.Context(), "/api/prices/prod-1", &got,
			webclient.Query(webclient.Params{"currency": "ILS"}))
		require.NoError(t, err)
		assert.Equal(t, "prod-1", got.ProductID)
		assert.Equal(t, float64(4999), got.Amount)
	})

	t.Run("TimeoutIsOperational", func(t *testing.T) {
		blocked := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				<-blocked
			}))
		defer srv.Close()
		defer close(blocked)

		cl := webclient.New(srv.URL)
		err := cl.Get(t.Context(), "/api/prices/prod-1", nil,
			webclient.Timeout(time.Millisecond))
		require.Error(t, err)
		assert.True(t, apperr.IsOperational(err))
		assert.ErrorIs(t, err, apperr.Timeout(""))
	})

	t.Run("ErrorBodyIsTranslated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"message":"no such product","code":"PRODUCT_NOT_FOUND"}`))
			}))
		defer srv.Close()

		err := webclient.New(srv.URL).Get(t.Context(), "/api/prices/nope", nil)
		require.Error(t, err)
		appErr := apperr.From(err)
		assert.Equal(t, apperr.CodeProductNotFound, appErr.Code)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "no such product", appErr.Message)
	})

	t.Run("MalformedErrorBodyStillFails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("<html>bad gateway</html>"))
			}))
		defer srv.Close()

		err := webclient.New(srv.URL).Get(t.Context(), "/x", nil)
		require.Error(t, err)
		appErr := apperr.From(err)
		assert.Equal(t, apperr.Code("API_ERROR"), appErr.Code)
		assert.Equal(t, http.StatusBadGateway, appErr.Status)
		assert.Contains(t, appErr.Message, "502")
	})

	t.Run("NoContent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))
		defer srv.Close()

		var got pricePayload
		err := webclient.New(srv.URL).Get(t.Context(), "/x", &got)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("MalformedSuccessBodyIsProgrammingError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"productId":`))
			}))
		defer srv.Close()

		var got pricePayload
		err := webclient.New(srv.URL).Get(t.Context(), "/x", &got)
		require.Error(t, err)
		assert.False(t, apperr.IsOperational(err))
	})
}

func TestPost(t *testing.T) {
	t.Run("SendsJSONBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				var in map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
				assert.Equal(t, "user@example.com", in["email"])
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"status":"subscribed"}`))
			}))
		defer srv.Close()

		var got map[string]string
		err := webclient.New(srv.URL).Post(
			t.Context(), "/api/newsletter/subscribe",
			map[string]string{"email": "user@example.com", "locale": "he"},
			&got,
		)
		require.NoError(t, err)
		assert.Equal(t, "subscribed", got["status"])
	})
}

func TestVerbRouting(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			w.WriteHeader(http.StatusNoContent)
		}))
	defer srv.Close()

	cl := webclient.New(srv.URL)

	require.NoError(t, cl.Put(t.Context(), "/x", nil, nil))
	assert.Equal(t, http.MethodPut, gotMethod)

	require.NoError(t, cl.Patch(t.Context(), "/x", nil, nil))
	assert.Equal(t, http.MethodPatch, gotMethod)

	require.NoError(t, cl.Delete(t.Context(), "/x", nil))
	assert.Equal(t, http.MethodDelete, gotMethod)
}
