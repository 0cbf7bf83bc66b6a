package notifications

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/domain/model/order"
)

const (
	// DefaultWorkerCount is the number of delivery workers used when no
	// explicit value is configured.
	DefaultWorkerCount = 4

	// DefaultQueueSize is the dispatch queue capacity used when no explicit
	// value is configured.
	DefaultQueueSize = 64
)

// dispatchTask is the unit of work handed to the worker pool: an order
// snapshot, the channel to use and the status the notification is about.
// Tasks exist only for the duration of a dispatch and are never persisted.
type dispatchTask struct {
	aggregate   *order.Order
	channelType order.NotificationType
	status      order.Status
}

// Dispatcher delivers customer notifications asynchronously on a bounded
// worker pool so that slow or retrying channel I/O never blocks order
// mutations.
//
// Dispatch hands a task off to the queue and returns immediately; the caller
// does not await completion and cannot cancel an in-flight delivery. The
// retry budget of the resolved channel bounds the worst-case duration.
// Delivery failures are logged and never propagate back to the operation
// that triggered the notification.
type Dispatcher struct {
	registry *ChannelRegistry
	queue    chan dispatchTask
	workers  int
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given registry. Non-positive
// workers or queueSize fall back to the package defaults.
func NewDispatcher(registry *ChannelRegistry, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkerCount
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &Dispatcher{
		registry: registry,
		queue:    make(chan dispatchTask, queueSize),
		workers:  workers,
		logger:   logger.With("component", "notification_dispatcher"),
	}
}

// Start launches the worker pool. Returns ErrDispatcherState if the
// dispatcher is already running.
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return ErrDispatcherState
	}
	d.running = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	d.logger.Info("Notification dispatcher started", "workers", d.workers, "queue_size", cap(d.queue))
	return nil
}

// Stop closes the queue and waits for the workers to drain the tasks that
// were already accepted. Dispatch calls made after Stop are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	queue := d.queue
	d.mu.Unlock()

	close(queue)
	d.wg.Wait()
	d.logger.Info("Notification dispatcher stopped")
}

// Dispatch enqueues a notification for asynchronous delivery and returns
// immediately. The order is treated as a snapshot: the caller must not
// mutate it after handing it off.
//
// When the dispatcher is stopped or the queue is full the notification is
// dropped and the drop is logged. Delivery is decoupled from the order
// mutation that triggered it, so no error reaches the caller.
func (d *Dispatcher) Dispatch(aggregate *order.Order, channelType order.NotificationType, status order.Status) {
	task := dispatchTask{aggregate: aggregate, channelType: channelType, status: status}

	// The send stays inside the critical section: Stop flips running under
	// the same mutex before it closes the queue, so a caller that passed the
	// running check can never send on a closed channel.
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		d.logger.Warn("Dispatcher not running, notification dropped",
			"order_id", aggregate.ID().String(),
			"channel", channelType.String(),
		)
		return
	}

	select {
	case d.queue <- task:
		d.mu.Unlock()
	default:
		d.mu.Unlock()
		d.logger.Warn("Dispatch queue full, notification dropped",
			"order_id", aggregate.ID().String(),
			"channel", channelType.String(),
		)
	}
}

// worker consumes tasks until the queue is closed and drained.
func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for task := range d.queue {
		d.deliver(task)
	}
}

// deliver composes the message, resolves the decorated channel and performs
// the send. Terminal failures are logged here; they never roll back the
// order mutation that triggered the notification.
func (d *Dispatcher) deliver(task dispatchTask) {
	ctx := context.Background()

	message := ComposeMessage(task.aggregate, task.status, task.channelType)

	channel, err := d.registry.Resolve(task.channelType)
	if err != nil {
		d.logger.ErrorContext(ctx, "Notification channel resolution failed",
			"order_id", task.aggregate.ID().String(),
			"channel", task.channelType.String(),
			"error", err,
		)
		return
	}

	if err := channel.Send(ctx, task.aggregate, message); err != nil {
		d.logger.ErrorContext(ctx, "Notification delivery abandoned",
			"order_id", task.aggregate.ID().String(),
			"channel", task.channelType.String(),
			"status", task.status.String(),
			"error", err,
		)
	}
}
