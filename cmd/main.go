package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/townlink/docs"
	"github.com/sbilibin2017/townlink/internal/handlers"
	"github.com/sbilibin2017/townlink/internal/hasher"
	"github.com/sbilibin2017/townlink/internal/jwt"
	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/middlewares"
	"github.com/sbilibin2017/townlink/internal/repositories"
	"github.com/sbilibin2017/townlink/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

const reviewBatchTimeout = 5 * time.Millisecond

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title TownLink API
// @version 1.0.0
// @description Local business directory: accounts, business listings and reviews with average ratings
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds application, database, Redis, Kafka, logging, auth and HTTP settings.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisExpSecond    int

	kafkaBrokers     []string
	kafkaReviewTopic string

	jwtSecretKey string
	jwtExpSecond int
	bcryptCost   int

	corsAllowedOrigins []string
	authRatePerSecond  float64
	authRateBurst      int
	trustProxyHeaders  bool

	adminUsername string
	adminPassword string
}

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "3000")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "townlink")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// Kafka config, disabled without brokers
	cfg.kafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.kafkaReviewTopic = getEnv("KAFKA_REVIEW_TOPIC", "reviews")

	// Auth config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}
	if cfg.bcryptCost, err = getInt("BCRYPT_COST", "10"); err != nil {
		return
	}
	cfg.adminUsername = getEnv("ADMIN_USERNAME", "")
	cfg.adminPassword = getEnv("ADMIN_PASSWORD", "")

	// HTTP config
	cfg.corsAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", "http://127.0.0.1:5500")
	if cfg.authRatePerSecond, err = strconv.ParseFloat(getEnv("AUTH_RATE_PER_SECOND", "5"), 64); err != nil {
		err = fmt.Errorf("AUTH_RATE_PER_SECOND: %w", err)
		return
	}
	if cfg.authRateBurst, err = getInt("AUTH_RATE_BURST", "10"); err != nil {
		return
	}
	if cfg.trustProxyHeaders, err = strconv.ParseBool(getEnv("TRUST_PROXY_HEADERS", "false")); err != nil {
		err = fmt.Errorf("TRUST_PROXY_HEADERS: %w", err)
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	if err := repositories.Bootstrap(ctx, db); err != nil {
		return fmt.Errorf("schema bootstrap failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for review events
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := newReviewWriter(cfg)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing review events to Kafka topic %s", cfg.kafkaReviewTopic)
	}

	// Initialize JWT service and hasher
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)
	passwordHasher := hasher.New(cfg.bcryptCost)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	businessReadRepo := repositories.NewBusinessReadRepository(db)
	businessWriteRepo := repositories.NewBusinessWriteRepository(db, middlewares.GetTxFromContext)
	businessCacheRepo := repositories.NewBusinessCacheRepository(rdb, time.Duration(cfg.redisExpSecond)*time.Second)
	reviewReadRepo := repositories.NewReviewReadRepository(db, middlewares.GetTxFromContext)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, passwordHasher, tokens)
	businessService := services.NewBusinessService(businessReadRepo, businessWriteRepo, businessCacheRepo)
	ratingService := services.NewRatingService(middlewares.NewTxRunner(db), reviewReadRepo, businessWriteRepo, businessCacheRepo)
	reviewService := services.NewReviewService(businessReadRepo, reviewReadRepo, reviewWriteRepo, ratingService, kafkaWriter)

	if cfg.adminUsername != "" && cfg.adminPassword != "" {
		if err := authService.SeedUser(ctx, cfg.adminUsername, cfg.adminPassword); err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		logger.Log.Infow("Admin user ensured", "username", cfg.adminUsername)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := newRouter(cfg, routerDeps{
		db:              db,
		tokens:          tokens,
		users:           userReadRepo,
		registerer:      authService,
		loginer:         authService,
		businessLister:  businessService,
		businessGetter:  businessService,
		businessCreator: businessService,
		reviewLister:    reviewService,
		reviewCreator:   reviewService,
		registry:        registry,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newReviewWriter builds the Kafka writer for review events.
// Batches flush after reviewBatchTimeout so a publish does not hold the request for a full second.
func newReviewWriter(cfg config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.kafkaBrokers...),
		Topic:                  cfg.kafkaReviewTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           reviewBatchTimeout,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
}

// routerDeps are the collaborators wired into the HTTP router.
type routerDeps struct {
	db              *sqlx.DB
	tokens          middlewares.Tokener
	users           middlewares.UserGetter
	registerer      handlers.Registerer
	loginer         handlers.Loginer
	businessLister  handlers.BusinessLister
	businessGetter  handlers.BusinessGetter
	businessCreator handlers.BusinessCreator
	reviewLister    handlers.ReviewLister
	reviewCreator   handlers.ReviewCreator
	registry        *prometheus.Registry
}

// newRouter builds the chi router with public, rate limited and authenticated routes.
func newRouter(cfg config, d routerDeps) http.Handler {
	metrics := middlewares.NewMetrics(d.registry)
	authLimiter := middlewares.NewRateLimiter(cfg.authRatePerSecond, cfg.authRateBurst)
	authMiddleware := middlewares.AuthMiddleware(d.tokens, d.users)

	r := chi.NewRouter()
	// X-Forwarded-For and X-Real-IP are client controlled unless a proxy in front overwrites them.
	if cfg.trustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", handlers.NewHealthHandler(d.db))
	r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.With(authLimiter.Handler).Post("/register", handlers.NewRegisterHandler(d.registerer))
		r.With(authLimiter.Handler).Post("/login", handlers.NewLoginHandler(d.loginer))
		r.Get("/businesses", handlers.NewListBusinessesHandler(d.businessLister))
		r.Get("/businesses/{id}", handlers.NewGetBusinessHandler(d.businessGetter))
		r.Get("/reviews/{businessId}", handlers.NewListReviewsHandler(d.reviewLister))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.With(middlewares.TxMiddleware(d.db)).Post("/businesses", handlers.NewCreateBusinessHandler(d.businessCreator))
			r.Post("/reviews", handlers.NewCreateReviewHandler(d.reviewCreator))
		})
	})

	return r
}
