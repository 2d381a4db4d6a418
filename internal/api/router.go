package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetledger/fleetledger/internal/api/handler"
	"github.com/fleetledger/fleetledger/internal/api/middleware"
	"github.com/fleetledger/fleetledger/internal/core/service"
	"github.com/fleetledger/fleetledger/internal/infrastructure/config"
	mongodb "github.com/fleetledger/fleetledger/internal/infrastructure/db/mongo"
	redisdb "github.com/fleetledger/fleetledger/internal/infrastructure/db/redis"
	"github.com/fleetledger/fleetledger/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fleetledger"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clienteRepo := mongodb.NewClienteRepository(db)
	equipamentoRepo := mongodb.NewEquipamentoRepository(db)
	motoristaRepo := mongodb.NewMotoristaRepository(db)
	planoContasRepo := mongodb.NewPlanoContasRepository(db)
	lancamentoRepo := mongodb.NewLancamentoRepository(db)
	contaPagarRepo := mongodb.NewContaPagarRepository(db)
	contaReceberRepo := mongodb.NewContaReceberRepository(db)
	revocations := redisdb.NewRevocationStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, revocations, cfg.JWTSecret, cfg.TokenTTL, log)
	clienteService := service.NewClienteService(clienteRepo, log)
	equipamentoService := service.NewEquipamentoService(equipamentoRepo, log)
	motoristaService := service.NewMotoristaService(motoristaRepo, log)
	planoContasService := service.NewPlanoContasService(planoContasRepo, log)
	lancamentoService := service.NewLancamentoService(lancamentoRepo, planoContasRepo, log)
	contaPagarService := service.NewContaPagarService(contaPagarRepo, log)
	contaReceberService := service.NewContaReceberService(contaReceberRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clienteHandler := handler.NewClienteHandler(clienteService)
	equipamentoHandler := handler.NewEquipamentoHandler(equipamentoService)
	motoristaHandler := handler.NewMotoristaHandler(motoristaService)
	planoContasHandler := handler.NewPlanoContasHandler(planoContasService)
	lancamentoHandler := handler.NewLancamentoHandler(lancamentoService)
	contaPagarHandler := handler.NewContaPagarHandler(contaPagarService)
	contaReceberHandler := handler.NewContaReceberHandler(contaReceberService)

	auth := middleware.Auth(cfg.JWTSecret, userRepo, revocations)
	adminOnly := middleware.AdminOnly()

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout, auth)
	authGroup.GET("/me", authHandler.Me, auth)
	authGroup.POST("/register", authHandler.Register, auth, adminOnly)
	authGroup.GET("/users", authHandler.ListUsers, auth, adminOnly)
	authGroup.PATCH("/users/:id", authHandler.UpdateUser, auth, adminOnly)
	authGroup.DELETE("/users/:id", authHandler.DeleteUser, auth, adminOnly)

	// --- Business routes (any authenticated user) ---
	registerCRUD := func(g *echo.Group, create, list, get, update, del echo.HandlerFunc) {
		g.POST("", create)
		g.GET("", list)
		g.GET("/:id", get)
		g.PATCH("/:id", update)
		g.DELETE("/:id", del)
	}

	clientes := e.Group("/api/clientes", auth)
	registerCRUD(clientes, clienteHandler.Create, clienteHandler.List, clienteHandler.Get, clienteHandler.Update, clienteHandler.Delete)

	equipamentos := e.Group("/api/equipamentos", auth)
	registerCRUD(equipamentos, equipamentoHandler.Create, equipamentoHandler.List, equipamentoHandler.Get, equipamentoHandler.Update, equipamentoHandler.Delete)

	motoristas := e.Group("/api/motoristas", auth)
	registerCRUD(motoristas, motoristaHandler.Create, motoristaHandler.List, motoristaHandler.Get, motoristaHandler.Update, motoristaHandler.Delete)

	planoContas := e.Group("/api/plano-contas", auth)
	registerCRUD(planoContas, planoContasHandler.Create, planoContasHandler.List, planoContasHandler.Get, planoContasHandler.Update, planoContasHandler.Delete)

	lancamentos := e.Group("/api/lancamentos", auth)
	registerCRUD(lancamentos, lancamentoHandler.Create, lancamentoHandler.List, lancamentoHandler.Get, lancamentoHandler.Update, lancamentoHandler.Delete)

	contasPagar := e.Group("/api/contas-pagar", auth)
	registerCRUD(contasPagar, contaPagarHandler.Create, contaPagarHandler.List, contaPagarHandler.Get, contaPagarHandler.Update, contaPagarHandler.Delete)
	contasPagar.POST("/:id/pagar", contaPagarHandler.Pagar)

	contasReceber := e.Group("/api/contas-receber", auth)
	registerCRUD(contasReceber, contaReceberHandler.Create, contaReceberHandler.List, contaReceberHandler.Get, contaReceberHandler.Update, contaReceberHandler.Delete)
	contasReceber.POST("/:id/receber", contaReceberHandler.Receber)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
