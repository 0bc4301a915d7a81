package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/byteKumar/pepperuni/internal/extract"
	"github.com/byteKumar/pepperuni/internal/llm"
	"github.com/byteKumar/pepperuni/internal/llm/openai"
	"github.com/byteKumar/pepperuni/internal/profiles"
	"github.com/byteKumar/pepperuni/internal/resumes"
	"github.com/byteKumar/pepperuni/internal/shared/config"
	"github.com/byteKumar/pepperuni/internal/shared/metrics"
	"github.com/byteKumar/pepperuni/internal/shared/server/middleware"
	"github.com/byteKumar/pepperuni/internal/shared/server/respond"
	"github.com/byteKumar/pepperuni/internal/shared/storage/db"
	localstore "github.com/byteKumar/pepperuni/internal/shared/storage/object/local"
	"github.com/byteKumar/pepperuni/internal/users"
)

// submitRule throttles the submit endpoint; each submission costs an LLM
// call, so one sustained request per two seconds with a small burst is
// plenty for a single client.
var submitRule = middleware.RateLimitRule{Rate: 0.5, Burst: 3}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := localstore.New(cfg.SpoolDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var userRepo users.Repo
	var profileRepo profiles.Repo
	var resumeRepo resumes.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
		profileRepo = &profiles.PGRepo{DB: sqlDB}
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
		profileRepo = profiles.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
	}

	var rewriter llm.Rewriter
	if cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("failed to build OpenAI client, using placeholder: %v", err)
			rewriter = llm.PlaceholderRewriter{}
		} else {
			rewriter = client
		}
	} else {
		log.Printf("OPENAI_API_KEY not set, resume rewriting disabled")
		rewriter = llm.PlaceholderRewriter{}
	}

	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)
	profileHandler := profiles.NewHandler(profiles.NewService(profileRepo, userRepo))
	pipeline := resumes.NewPipeline(store, extract.New(), rewriter, resumeRepo)
	resumeHandler := resumes.NewHandler(pipeline)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	userHandler.RegisterRoutes(api)
	profileHandler.RegisterRoutes(api)
	resumeHandler.RegisterRoutes(api, middleware.RateLimit(submitRule, middleware.NewRateLimiter(nil)))

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
