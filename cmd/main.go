package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Minister-Isaac/Avagapp-Backend/config"
	"github.com/Minister-Isaac/Avagapp-Backend/database"
	_ "github.com/Minister-Isaac/Avagapp-Backend/docs" // Swagger docs
	adminctrl "github.com/Minister-Isaac/Avagapp-Backend/internal/controller/admin"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/controller/middleware"
	userctrl "github.com/Minister-Isaac/Avagapp-Backend/internal/controller/user"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/logger"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/service"
)

// @title Avagapp Gamified Learning API
// @version 1.0
// @description Answer submission, scoring, leaderboard and statistics API for the Avagapp learning platform.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedisClient,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewRepositories,
			repository.NewTxManager,
			repository.NewUserRepository,
			repository.NewGameRepository,
		),

		// Services layer
		fx.Provide(
			func(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, cfg *config.Config) service.AuthService {
				return service.NewAuthService(userRepo, profileRepo, cfg.JWTSecret)
			},
			func(repos *repository.Repositories) repository.ProfileRepository {
				return repos.Profiles
			},
			service.NewGameService,
			func(repos *repository.Repositories) service.KnowledgeTrailService {
				return service.NewKnowledgeTrailService(repos.KnowledgeTrails)
			},
			service.NewSubmissionService,
			service.NewLeaderboardService,
			service.NewStatisticsService,
			func(userRepo repository.UserRepository, repos *repository.Repositories) service.CertificateService {
				return service.NewCertificateService(userRepo, repos.Certificates)
			},
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewGameController,
			userctrl.NewAnswerController,
			userctrl.NewLeaderboardController,
			userctrl.NewKnowledgeTrailController,
			adminctrl.NewGameController,
			adminctrl.NewKnowledgeTrailController,
			adminctrl.NewStatisticsController,
			adminctrl.NewCertificateController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authSvc service.AuthService,
	authCtrl *userctrl.AuthController,
	gameCtrl *userctrl.GameController,
	answerCtrl *userctrl.AnswerController,
	leaderboardCtrl *userctrl.LeaderboardController,
	trailCtrl *userctrl.KnowledgeTrailController,
	adminGameCtrl *adminctrl.GameController,
	adminTrailCtrl *adminctrl.KnowledgeTrailController,
	statsCtrl *adminctrl.StatisticsController,
	certCtrl *adminctrl.CertificateController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/sign-up", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(authSvc))
	{
		authed.GET("/games", gameCtrl.GetAllGames)
		authed.GET("/games/:game_id", gameCtrl.GetGameDetails)

		authed.POST("/answers", middleware.RequireRoles(model.RoleStudent), answerCtrl.SubmitAnswer)

		authed.GET("/knowledge-trails", trailCtrl.GetKnowledgeTrails)

		authed.GET("/leaderboard", leaderboardCtrl.GetLeaderboard)
		authed.GET("/dashboard", middleware.RequireRoles(model.RoleStudent), leaderboardCtrl.GetDashboard)

		authed.GET("/statistics/admin-stats", middleware.RequireRoles(model.RoleAdmin), statsCtrl.GetAdminStats)
		authed.GET("/statistics/teacher-stats", middleware.RequireRoles(model.RoleTeacher, model.RoleAdmin), statsCtrl.GetTeacherStats)
		authed.GET("/statistics/student-stats", middleware.RequireRoles(model.RoleStudent), leaderboardCtrl.GetStudentStats)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(authSvc), middleware.RequireRoles(model.RoleTeacher, model.RoleAdmin))
	{
		adminGroup.POST("/games", adminGameCtrl.CreateGame)
		adminGroup.POST("/knowledge-trails", adminTrailCtrl.CreateKnowledgeTrail)
		adminGroup.POST("/certificates", certCtrl.IssueCertificate)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Avagapp API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.Question{},
		&model.Option{},
		&model.Game{},
		&model.PlayedGame{},
		&model.StudentAnswer{},
		&model.KnowledgeTrail{},
		&model.Certificate{},
		&model.Statistics{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
