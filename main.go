package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/mazegen/api"
	api_i "github.com/beka-birhanu/mazegen/api/i"
	"github.com/beka-birhanu/mazegen/api/identity"
	"github.com/beka-birhanu/mazegen/api/mazeapi"
	"github.com/beka-birhanu/mazegen/config"
	"github.com/beka-birhanu/mazegen/infrastruture/lock"
	"github.com/beka-birhanu/mazegen/infrastruture/planstore"
	"github.com/beka-birhanu/mazegen/infrastruture/repo"
	"github.com/beka-birhanu/mazegen/infrastruture/token"
	"github.com/beka-birhanu/mazegen/service"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	accountRepo    i.AccountRepo
	settingsRepo   i.SettingsRepo
	planStore      i.PlanStore
	ownerLocker    i.Locker
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	mazeService    i.MazeBuilder
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
	storageLogger  *log.Logger
)

func initMongo(ctx context.Context) error {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	storageLogger.Printf("%s Connected to MongoDB", config.InfoTag)
	return nil
}

func initRedis(ctx context.Context) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis ping failed: %w", err)
	}
	storageLogger.Printf("%s Connected to Redis", config.InfoTag)
	return nil
}

func initRepos(ctx context.Context) error {
	accounts := repo.NewAccountRepo(mongoClient, config.Envs.DBName, "accounts")
	if err := accounts.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("creating account indexes: %w", err)
	}
	accountRepo = accounts
	settingsRepo = repo.NewSettingsRepo(mongoClient, config.Envs.DBName, "settings")
	storageLogger.Printf("%s Repositories initialized", config.InfoTag)
	return nil
}

func initPlanStore() error {
	var err error
	planStore, err = planstore.NewRedisPlanStore(redisClient, config.Envs.PlanTTLSeconds)
	if err != nil {
		return fmt.Errorf("creating plan store: %w", err)
	}
	storageLogger.Printf("%s Plan store initialized", config.InfoTag)
	return nil
}

func initLocker() error {
	var err error
	ownerLocker, err = lock.NewRedisLocker(redisClient)
	if err != nil {
		return fmt.Errorf("creating locker: %w", err)
	}
	storageLogger.Printf("%s Locker initialized", config.InfoTag)
	return nil
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Printf("%s JWT Tokenizer initialized", config.InfoTag)
}

func initAuthService() error {
	var err error
	authService, err = service.NewAuthService(accountRepo, jwtTokenizer)
	if err != nil {
		return fmt.Errorf("creating auth service: %w", err)
	}
	appLogger.Printf("%s Auth service initialized", config.InfoTag)
	return nil
}

func initMazeService() error {
	var err error
	mazeService, err = service.NewMazeService(&service.MazeConfig{
		Plans:        planStore,
		SettingsRepo: settingsRepo,
		Locker:       ownerLocker,
		MaxDimension: config.Envs.MaxMazeDimension,
		Logger:       config.NewLogger("MAZE", config.ColorService, os.Stdout),
	})
	if err != nil {
		return fmt.Errorf("creating maze service: %w", err)
	}
	appLogger.Printf("%s Maze service initialized", config.InfoTag)
	return nil
}

func initControllers() error {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		return fmt.Errorf("creating maze controller: %w", err)
	}
	appLogger.Printf("%s Controllers initialized", config.InfoTag)
	return nil
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
		Logger:                  config.NewLogger("API", config.ColorAPI, os.Stdout),
	})
	appLogger.Printf("%s Router initialized", config.InfoTag)
}

// run wires every dependency and serves until the router stops. Connections
// opened here are closed before it returns.
func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := initMongo(ctx); err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := initRedis(ctx); err != nil {
		return err
	}
	defer redisClient.Close()

	if err := initRepos(ctx); err != nil {
		return err
	}
	if err := initPlanStore(); err != nil {
		return err
	}
	if err := initLocker(); err != nil {
		return err
	}
	initJWTTokenizer()
	if err := initAuthService(); err != nil {
		return err
	}
	if err := initMazeService(); err != nil {
		return err
	}
	if err := initControllers(); err != nil {
		return err
	}
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}

func main() {
	appLogger = config.NewLogger("APP", config.ColorApp, os.Stdout)
	storageLogger = config.NewLogger("STORAGE", config.ColorStorage, os.Stdout)
	config.Load()

	if err := run(); err != nil {
		appLogger.Printf("%s %v", config.FatalTag, err)
		os.Exit(1)
	}
}
