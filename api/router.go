// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"platewise/recipe-api/blacklist"
	"platewise/recipe-api/db"
	"platewise/recipe-api/middleware"
	"platewise/recipe-api/model"
	"platewise/recipe-api/security"
	"platewise/recipe-api/service"
	"platewise/recipe-api/spoonacular"
	"platewise/recipe-api/store"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Argon     *security.ArgonHash
	Tokens    *security.Tokens
	Blacklist *blacklist.Blacklist
	Recipes   *spoonacular.Client

	Favorites *store.Owned[model.Favorite]
	Viewed    *store.Owned[model.ViewedRecipe]
	Custom    *store.Owned[model.CustomRecipe]

	// Whether a password change stamps tokens_invalid_before, captured
	// once at construction from jwt.revoke_on_password_change
	RevokeOnPasswordChange bool
}

func NewRouter() (*API, error) {
	d, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	a, err := newRouter(d)
	if err != nil {
		return nil, err
	}

	sweep := time.Minute * time.Duration(viper.GetInt("blacklist.sweep_minutes"))
	service.BlacklistCleanup(sweep, d)

	return a, nil
}

func newRouter(d *gorm.DB) (*API, error) {
	a := &API{
		DB:        d,
		Argon:     security.New(),
		Tokens: security.NewTokens(
			viper.GetString("jwt.secret"),
			time.Hour*time.Duration(viper.GetInt("jwt.ttl_hours")),
		),
		Blacklist: blacklist.New(d),
		Recipes:   spoonacular.NewClient(),
		Favorites: store.NewOwned[model.Favorite](d, ""),
		Viewed:    store.NewOwned[model.ViewedRecipe](d, "viewed_at desc"),
		Custom:    store.NewOwned[model.CustomRecipe](d, ""),

		RevokeOnPasswordChange: viper.GetBool("jwt.revoke_on_password_change"),
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5500", "http://127.0.0.1:5500"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(d, a.Blacklist, a.Tokens)
	jsonBody := middleware.BodySizeLimiter(1 << 20)

	// HEAD /heartbeat 		-> Used to check if the server is alive
	router.HEAD("/heartbeat", a.Heartbeat)

	// HEAD /validate		-> Validates a JWT token
	router.HEAD("/validate", jwt, a.Validate)

	// POST /signup 		-> Registers a new user
	router.POST("/signup", jsonBody, a.UserRegister)

	// POST /login 			-> Verifies credentials and returns a JWT token
	router.POST("/login", jsonBody, a.UserLogin)

	// POST /logout 		-> Blacklists the presented token until it expires
	router.POST("/logout", a.UserLogout)

	// GET /profile			-> Returns the caller's profile sans hash
	router.GET("/profile", jwt, a.ProfileFetch)

	// PUT /profile			-> Partially updates name/email/password
	router.PUT("/profile", jwt, jsonBody, a.ProfileUpdate)

	// DELETE /account		-> Deletes the account and everything it owns
	router.DELETE("/account", jwt, a.AccountDelete)

	favorites := router.Group("/favorites", jwt, jsonBody)
	{
		// POST /favorites		-> Saves a recipe reference, rejects duplicates
		favorites.POST("", a.FavoriteAdd)

		// GET /favorites		-> Lists the caller's favorites
		favorites.GET("", a.FavoriteFetch)

		// DELETE /favorites/:id	-> Removes one favorite owned by the caller
		favorites.DELETE("/:id", a.FavoriteDelete)
	}

	viewed := router.Group("/viewed", jwt, jsonBody)
	{
		// POST /viewed			-> Records a viewed recipe
		viewed.POST("", a.ViewedAdd)

		// GET /viewed			-> Lists viewed history, newest first
		viewed.GET("", a.ViewedFetch)

		// DELETE /viewed/:id		-> Removes one history entry
		viewed.DELETE("/:id", a.ViewedDelete)

		// DELETE /viewed		-> Clears the whole history
		viewed.DELETE("", a.ViewedClear)
	}

	custom := router.Group("/custom-recipes", jwt, middleware.BodySizeLimiter(10<<20))
	{
		// POST /custom-recipes		-> Creates a freeform recipe
		custom.POST("", a.CustomRecipeAdd)

		// GET /custom-recipes		-> Lists the caller's own recipes
		custom.GET("", a.CustomRecipeFetch)

		// DELETE /custom-recipes/:id	-> Deletes one owned recipe
		custom.DELETE("/:id", a.CustomRecipeDelete)
	}

	recipes := router.Group("/recipes")
	{
		// GET /recipes/search		-> Proxies an ingredient search upstream
		recipes.GET("/search", cacheFor(60), a.RecipeSearch)

		// GET /recipes/:id		-> Proxies a recipe detail lookup upstream
		recipes.GET("/:id", cacheFor(300), a.RecipeInfo)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
