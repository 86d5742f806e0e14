package spoonacular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	viper.Set("spoonacular.base_url", srv.URL)
	viper.Set("spoonacular.api_key", "test-key")

	return NewClient()
}

func TestFindByIngredients(t *testing.T) {
	var gotPath, gotIngredients, gotKey string

	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotIngredients = r.URL.Query().Get("ingredients")
		gotKey = r.URL.Query().Get("apiKey")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":55,"title":"Soup","image":"soup.jpg"}]`))
	})

	body, err := c.FindByIngredients(context.Background(), "carrot,onion", 12)
	require.NoError(t, err)

	assert.Equal(t, "/recipes/findByIngredients", gotPath)
	assert.Equal(t, "carrot,onion", gotIngredients)
	assert.Equal(t, "test-key", gotKey)
	assert.JSONEq(t, `[{"id":55,"title":"Soup","image":"soup.jpg"}]`, string(body))
}

func TestInformation(t *testing.T) {
	var gotPath string

	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":55,"title":"Soup"}`))
	})

	body, err := c.Information(context.Background(), "55")
	require.NoError(t, err)

	assert.Equal(t, "/recipes/55/information", gotPath)
	assert.JSONEq(t, `{"id":55,"title":"Soup"}`, string(body))
}

func TestUpstreamErrorStatus(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	_, err := c.FindByIngredients(context.Background(), "carrot", 12)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestUpstreamUnreachable(t *testing.T) {
	viper.Set("spoonacular.base_url", "http://127.0.0.1:1")
	viper.Set("spoonacular.api_key", "test-key")

	c := NewClient()

	_, err := c.Information(context.Background(), "55")
	assert.ErrorIs(t, err, ErrUpstream)
}
