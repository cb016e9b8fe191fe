package provider

import (
	"github.com/eneso-link/internal/cache"
	"github.com/eneso-link/internal/config"
	"github.com/eneso-link/internal/geoip"
	"github.com/eneso-link/internal/logger"
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/queue"
	"github.com/eneso-link/internal/repository"
	"github.com/eneso-link/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	LinkRepo     repository.LinkRepository
	ListRepo     repository.ListRepository
	ClickRepo    repository.ClickRepository
	CategoryRepo repository.CategoryRepository
	ProfileRepo  repository.ProfileRepository

	// Services
	GeoResolver     geoip.Resolver
	LinkService     *service.LinkService
	ListService     *service.ListService
	CategoryService *service.CategoryService
	ProfileService  *service.ProfileService
	ClickTracker    *service.ClickTracker
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.LinkRepo = repository.NewLinkRepository(db)
	c.ListRepo = repository.NewListRepository(db)
	c.ClickRepo = repository.NewClickRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProfileRepo = repository.NewProfileRepository(db)
}

func (c *Container) initServices() {
	c.GeoResolver = geoip.NewClient(&c.Config.GeoIP)
	c.LinkService = service.NewLinkService(c.LinkRepo)
	c.ListService = service.NewListService(c.ListRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProfileService = service.NewProfileService(c.ProfileRepo)
	c.ClickTracker = service.NewClickTracker(
		c.ClickRepo,
		c.LinkRepo,
		c.ListRepo,
		c.GeoResolver,
		c.QueueClient,
		&c.Config.Tracking,
	)
}
