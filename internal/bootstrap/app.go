package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"resume-analyzer/internal/analyses"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/llm/azure"
	"resume-analyzer/internal/resumes"
	"resume-analyzer/internal/shared/auth"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/server"
	"resume-analyzer/internal/shared/storage/db"
	"resume-analyzer/internal/shared/storage/doclog"
	"resume-analyzer/internal/shared/storage/object"
	localstore "resume-analyzer/internal/shared/storage/object/local"
	s3store "resume-analyzer/internal/shared/storage/object/s3"
	"resume-analyzer/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Mongo  *mongo.Database
	Store  object.ObjectStore
	Tokens *auth.TokenIssuer

	UsersRepo    users.Repo
	ResumesRepo  resumes.Repo
	AnalysesRepo analyses.Repo

	UsersService    *users.Service
	ResumesService  *resumes.Service
	AnalysesService *analyses.Service

	UsersHandler    *users.Handler
	ResumesHandler  *resumes.Handler
	AnalysesHandler *analyses.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	mongoDB, err := buildMongo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Mongo:  mongoDB,
		Store:  store,
		Tokens: auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Tokens:          app.Tokens,
		UsersHandler:    app.UsersHandler,
		ResumesHandler:  app.ResumesHandler,
		AnalysesHandler: app.AnalysesHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildMongo(ctx context.Context, cfg config.Config) (*mongo.Database, error) {
	if strings.TrimSpace(cfg.MongoURI) == "" {
		log.Printf("bootstrap: MONGO_URI empty; using in-memory document log")
		return nil, nil
	}
	mongoDB, err := doclog.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: mongo connect failed; using in-memory document log: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return mongoDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var userRepo users.Repo
	var resumeRepo resumes.Repo
	var analysisRepo analyses.Repo

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		analysisRepo = &analyses.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
	}

	var mirror resumes.TextMirror
	var logRepo analyses.LogRepo
	if app.Mongo != nil {
		mirror = &resumes.MongoTextMirror{DB: app.Mongo}
		logRepo = &analyses.MongoLogRepo{DB: app.Mongo}
	} else {
		mirror = resumes.NewMemoryTextMirror()
		logRepo = analyses.NewMemoryLogRepo()
	}

	var llmClient llm.Client = azure.NewClient(app.Config.AzureOpenAI)

	analysisSvc := &analyses.Service{
		Repo:       analysisRepo,
		Logs:       logRepo,
		ResumeRepo: resumeRepo,
		LLM:        llmClient,
	}
	resumeSvc := &resumes.Service{
		Repo:   resumeRepo,
		Mirror: mirror,
		Store:  app.Store,
		Purger: analysisSvc,
	}
	userSvc := users.NewService(userRepo, auth.NewHasher(app.Config.BcryptCost), app.Tokens)

	app.UsersRepo = userRepo
	app.ResumesRepo = resumeRepo
	app.AnalysesRepo = analysisRepo
	app.UsersService = userSvc
	app.ResumesService = resumeSvc
	app.AnalysesService = analysisSvc
	app.UsersHandler = users.NewHandler(userSvc)
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.AnalysesHandler = analyses.NewHandler(analysisSvc)
}
