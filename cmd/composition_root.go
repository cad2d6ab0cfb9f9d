package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	httpadapter "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/kafka"
	"sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/redis/pricecache"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
	"sales/internal/jobs"
	"sales/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *logrus.Entry

	// Optional collaborators stay nil interfaces when not configured.
	priceCache ports.ArticlePriceCache
	publisher  ports.OrderEventPublisher

	orderMetrics *metrics.OrderMetrics
	httpMetrics  *metrics.HTTPMetrics

	closers []func() error
}

// NewCompositionRoot wires the application. Redis and Kafka are connected only
// when their addresses are configured.
func NewCompositionRoot(ctx context.Context, configs Config, gormDB *gorm.DB, logger *logrus.Entry) (*CompositionRoot, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	root := &CompositionRoot{
		configs:      configs,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:       logger,
		orderMetrics: metrics.NewOrderMetrics(),
		httpMetrics:  metrics.NewHTTPMetrics(),
	}

	if configs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", configs.RedisAddr, err)
		}

		root.priceCache = pricecache.NewRedisArticlePriceCache(client)
		root.closers = append(root.closers, client.Close)
		logger.WithField("addr", configs.RedisAddr).Info("Article price cache enabled")
	}

	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		producer, err := kafka.NewOrderChangedProducer(brokers, configs.KafkaOrderChangedTopic)
		if err != nil {
			_ = root.Close()
			return nil, fmt.Errorf("create kafka producer: %w", err)
		}

		root.publisher = producer
		root.closers = append(root.closers, producer.Close)
		logger.WithField("topic", configs.KafkaOrderChangedTopic).Info("Order event publishing enabled")
	}

	return root, nil
}

func (c *CompositionRoot) CreateCreateOrdersCommandHandler() commands.CreateOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrdersCommandHandler(
		f,
		c.priceCache,
		c.publisher,
		c.orderMetrics,
		kernel.SystemClock{},
		c.logger,
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher, c.orderMetrics, kernel.SystemClock{}, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.configs.DateRangeMode)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createOrders := c.CreateCreateOrdersCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	return httpadapter.NewServer(
		&createOrders,
		&cancelOrder,
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.logger,
	)
}

// CreateRouter returns the echo instance with every route registered.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	return httpadapter.NewRouter(c.CreateHTTPServer(), c.httpMetrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCountOrdersByStatusQueryHandler(),
		c.orderMetrics,
		c.configs.StatsInterval,
		c.logger,
	)
}

// Close releases the optional collaborators in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
