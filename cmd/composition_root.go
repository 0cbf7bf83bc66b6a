package cmd

import (
	"log/slog"
	"strings"

	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/notify"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/notifications"
	"ordering/internal/core/observers"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: persistence, the notification
// pipeline, status observers and the use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory

	dispatcher     *notifications.Dispatcher
	notifier       *observers.StatusChangeNotifier
	eventPublisher *kafka.OrderEventPublisher
}

// NewCompositionRoot builds the full object graph from configuration.
// The Kafka status event publisher is wired only when a broker host is
// configured; the rest of the pipeline does not depend on it.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	emailChannel, err := notify.NewEmailChannel(logger)
	if err != nil {
		return nil, err
	}

	smsChannel, err := notify.NewSMSChannel(logger)
	if err != nil {
		return nil, err
	}

	maxAttempts := config.NotificationMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = notifications.DefaultMaxAttempts
	}

	registry := notifications.NewChannelRegistry(logger, maxAttempts, emailChannel, smsChannel)
	root.dispatcher = notifications.NewDispatcher(
		registry, config.NotificationWorkers, config.NotificationQueueSize, logger,
	)

	statusObservers := []ports.StatusObserver{
		observers.NewLoggingObserver(logger),
		observers.NewPaymentObserver(logger),
	}

	if config.KafkaHost != "" {
		publisher, pubErr := kafka.NewOrderEventPublisher(
			strings.Split(config.KafkaHost, ","), config.KafkaOrderChangedTopic, logger,
		)
		if pubErr != nil {
			return nil, pubErr
		}
		root.eventPublisher = publisher
		statusObservers = append(statusObservers, publisher)
	}

	root.notifier = observers.NewStatusChangeNotifier(logger, statusObservers...)

	return root, nil
}

// Dispatcher exposes the notification dispatcher for lifecycle management.
func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() {
	if c.eventPublisher != nil {
		c.eventPublisher.Close()
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.dispatcher, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
