package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"account-service/app/config"
	"account-service/app/driver/kratos"
	"account-service/app/driver/postgres"
	"account-service/app/gateway"
	"account-service/app/port"
	"account-service/app/rest"
	"account-service/app/rest/handlers"
	"account-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway port.IdentityGateway
	ProfileGateway  port.ProfileGateway

	// Usecases
	AccountUsecase port.AccountUsecase
	ProfileUsecase port.ProfileUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)

	kratosAdapter := kratos.NewAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(kratosAdapter, logger)
	container.ProfileGateway = gateway.NewProfileGateway(profileRepository, logger)

	container.AccountUsecase = usecase.NewAccountUseCase(container.IdentityGateway, container.ProfileGateway)
	container.ProfileUsecase = usecase.NewProfileUseCase(container.ProfileGateway)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:          c.Logger,
		AccountUsecase:  c.AccountUsecase,
		ProfileUsecase:  c.ProfileUsecase,
		IdentityGateway: c.IdentityGateway,
		HealthChecks: map[string]handlers.HealthChecker{
			"database": c.DB.HealthCheck,
			"kratos":   c.KratosClient.HealthCheck,
		},
		AllowedOrigins: c.Config.AllowedOrigins,
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
