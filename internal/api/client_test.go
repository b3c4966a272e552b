package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/inkpost/inkpost-go/internal/errors"
	mocks "github.com/inkpost/inkpost-go/internal/mocks/blog"
	"github.com/inkpost/inkpost-go/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler, tokens ports.TokenStore) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:    srv.URL + "/api",
		Tokens:     tokens,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{Tokens: mocks.NewMemoryTokenStore()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base URL")

	_, err = NewClient(Config{BaseURL: "http://localhost/api"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token store")
}

func TestRequestCarriesBearerTokenWhenStored(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"id":"u1"}}`)) //nolint:errcheck
	})

	client := newTestClient(t, handler, mocks.NewMemoryTokenStoreWith("T1"))

	_, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer T1", gotAuth)
}

func TestRequestOmitsAuthorizationWhenNoToken(t *testing.T) {
	var hadAuth bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`{"data":{"id":"u1"}}`)) //nolint:errcheck
	})

	client := newTestClient(t, handler, mocks.NewMemoryTokenStore())

	_, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.False(t, hadAuth, "request without a stored token must not carry an Authorization header")
}

func TestTokenIsReadFromStoreOnEveryRequest(t *testing.T) {
	var auths []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"id":"u1"}}`)) //nolint:errcheck
	})

	tokens := mocks.NewMemoryTokenStoreWith("T1")
	client := newTestClient(t, handler, tokens)

	ctx := context.Background()
	_, err := client.Profile(ctx)
	require.NoError(t, err)

	// A token written by another component is picked up without rebuilding
	// the client.
	require.NoError(t, tokens.Save(ctx, "T2"))
	_, err = client.Profile(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer T1", "Bearer T2"}, auths)
}

func TestJSONRequestsCarryJSONContentType(t *testing.T) {
	var contentTypes []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentTypes = append(contentTypes, r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data":{"posts":[],"pagination":{}}}`)) //nolint:errcheck
	})

	client := newTestClient(t, handler, mocks.NewMemoryTokenStore())

	ctx := context.Background()
	_, err := client.ListPosts(ctx, listFilters())
	require.NoError(t, err)

	for _, ct := range contentTypes {
		assert.Equal(t, "application/json", ct)
	}
}

func TestUnauthorizedResponseClearsTokenOncePerOccurrence(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"token expired"}`, http.StatusUnauthorized)
	})

	tokens := mocks.NewMemoryTokenStoreWith("stale")
	client := newTestClient(t, handler, tokens)

	ctx := context.Background()
	_, err := client.Profile(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, 1, tokens.Clears)
	assert.Empty(t, tokens.Token())

	// A second 401 clears again: once per occurrence, not once ever.
	_, err = client.Profile(ctx)
	require.Error(t, err)
	assert.Equal(t, 2, tokens.Clears)
}

func TestUnauthorizedPolicyAppliesToEveryEndpoint(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
	})

	tokens := mocks.NewMemoryTokenStoreWith("stale")
	client := newTestClient(t, handler, tokens)

	var notified int
	client.OnUnauthorized(func() { notified++ })

	ctx := context.Background()
	_, listErr := client.ListPosts(ctx, listFilters())
	deleteErr := client.DeletePost(ctx, "p1")

	assert.True(t, apperrors.IsUnauthorized(listErr))
	assert.True(t, apperrors.IsUnauthorized(deleteErr))
	assert.Equal(t, 2, notified, "every 401 notifies listeners regardless of originating call")
	assert.Equal(t, 2, tokens.Clears)
}

func TestErrorMessageExtractedFromEnvelope(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid credentials"}`)) //nolint:errcheck
	})

	client := newTestClient(t, handler, mocks.NewMemoryTokenStore())

	_, err := client.Login(context.Background(), credentials())
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "Invalid credentials", apperrors.DisplayMessage(err))
}

func TestErrorWithoutMessageFallsBackToStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, handler, mocks.NewMemoryTokenStore())

	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetCode(err))
	assert.Contains(t, apperrors.DisplayMessage(err), "500")
}

func TestTransportFailurePropagatesAsTransportError(t *testing.T) {
	tokens := mocks.NewMemoryTokenStore()
	client, err := NewClient(Config{
		// Nothing listens here; the request fails before any response.
		BaseURL: "http://127.0.0.1:1/api",
		Tokens:  tokens,
	})
	require.NoError(t, err)

	_, err = client.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
	assert.Equal(t, 0, tokens.Clears, "transport failures must not touch the token")
}

func TestRequestsCarryCorrelationID(t *testing.T) {
	var ids []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"data":{"id":"u1"}}`)) //nolint:errcheck
	})

	client := newTestClient(t, handler, mocks.NewMemoryTokenStore())

	ctx := context.Background()
	_, err := client.Profile(ctx)
	require.NoError(t, err)
	_, err = client.Profile(ctx)
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestEnvelopeWithoutDataIsAnError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok but empty"}`)) //nolint:errcheck
	})

	client := newTestClient(t, handler, mocks.NewMemoryTokenStore())

	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetCode(err))
}
