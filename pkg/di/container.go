package di

import (
	"time"

	"gorm.io/gorm"

	"taskboard/application/serviceimpl"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	natspkg "taskboard/infrastructure/nats"
	"taskboard/infrastructure/postgres"
	redispkg "taskboard/infrastructure/redis"
	"taskboard/infrastructure/websocket"
	"taskboard/interfaces/api/handlers"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
	"taskboard/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional directory cache
	NATSClient     *natspkg.Client  // optional cross-instance event relay
	Hub            *websocket.Hub
	EventScheduler scheduler.EventScheduler

	// Notifier is the hub when this is the only instance, or the NATS
	// publisher when a relay is configured so every instance sees every event.
	Notifier        ports.Notifier
	EventPublisher  *natspkg.EventPublisher
	EventSubscriber *natspkg.EventSubscriber

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService  services.UserService
	TaskService  services.TaskService
	OverdueSweep *serviceimpl.OverdueSweepService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional, the directory endpoint falls back to the database.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	// The hub always runs; single-instance deployments emit straight into it.
	c.Hub = websocket.NewHub()
	c.Notifier = c.Hub

	// With NATS configured, services publish to the relay instead and every
	// instance's subscriber feeds its own hub.
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS unavailable, events stay instance-local", "error", err)
		} else {
			c.NATSClient = natsClient
			c.EventPublisher = natspkg.NewEventPublisher(natsClient)
			c.EventSubscriber = natspkg.NewEventSubscriber(natsClient)

			if err := c.EventSubscriber.Start(c.Hub); err != nil {
				logger.Warn("Event relay subscribe failed, events stay instance-local", "error", err)
				c.EventSubscriber = nil
			} else {
				c.Notifier = c.EventPublisher
			}
		}
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	tokenTTL := time.Duration(c.Config.JWT.TTLHours) * time.Hour

	c.UserService = serviceimpl.NewUserService(
		c.UserRepository,
		c.RedisClient,
		c.Config.JWT.Secret,
		tokenTTL,
	)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository, c.Notifier)

	logger.Info("Services initialized", "cache", c.RedisClient != nil, "relay", c.EventPublisher != nil)
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Info("Event scheduler started")

	c.OverdueSweep = serviceimpl.NewOverdueSweepService(
		c.TaskRepository,
		c.Notifier,
		c.EventScheduler,
		0, // default interval
	)
	if err := c.OverdueSweep.RegisterSweepJob(); err != nil {
		logger.Warn("Failed to register overdue sweep job", "error", err)
	}

	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	if c.EventSubscriber != nil {
		c.EventSubscriber.Stop()
		logger.Info("Event relay subscriber stopped")
	}

	if c.NATSClient != nil {
		c.NATSClient.Close()
		logger.Info("NATS connection closed")
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
	}
}
