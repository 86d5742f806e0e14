// Package spoonacular is a thin client for the external recipe API. The
// backend never interprets the payloads beyond passing them through to
// the frontend, so responses stay raw JSON
package spoonacular

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const requestTimeout = 10 * time.Second

// ErrUpstream is returned for any failure talking to the recipe API.
// Callers surface it as a retryable gateway error, never a crash
var ErrUpstream = errors.New("recipe api request failed")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: viper.GetString("spoonacular.base_url"),
		apiKey:  viper.GetString("spoonacular.api_key"),
	}
}

// FindByIngredients returns candidate recipes for a comma separated
// ingredient list
func (c *Client) FindByIngredients(ctx context.Context, ingredients string, limit int) ([]byte, error) {
	q := url.Values{}
	q.Set("ingredients", ingredients)
	q.Set("number", fmt.Sprint(limit))

	return c.get(ctx, "/recipes/findByIngredients", q)
}

// Information returns the detailed payload for a single recipe id
func (c *Client) Information(ctx context.Context, recipeID string) ([]byte, error) {
	return c.get(ctx, "/recipes/"+url.PathEscape(recipeID)+"/information", url.Values{})
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return body, nil
}
