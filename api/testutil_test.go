package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"platewise/recipe-api/db"
	"platewise/recipe-api/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestAPI builds a full router over a fresh in-memory database.
// cache=shared keeps gorm's connection pool pointed at the same memory
// db, the test name keeps databases isolated between tests
func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.ttl_hours", 1)
	viper.Set("jwt.revoke_on_password_change", false)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"

	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(d))

	a, err := newRouter(d)
	require.NoError(t, err)

	t.Cleanup(a.Blacklist.Close)

	return a
}

func doRequest(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func signup(t *testing.T, a *API, name, email, password string) {
	t.Helper()

	w := doRequest(t, a, http.MethodPost, "/signup", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func ownerID(t *testing.T, a *API, email string) string {
	t.Helper()

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", email).First(&user).Error)

	return user.ID
}

func login(t *testing.T, a *API, email, password string) string {
	t.Helper()

	w := doRequest(t, a, http.MethodPost, "/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	return token
}
