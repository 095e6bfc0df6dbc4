package jobs

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// Per-cycle batch limits for each lifecycle step. The funnel narrows on
// purpose: orders pile up in the later states, which keeps every vendor
// metric population growing between cycles.
const (
	issueBatchSize       = 100
	acknowledgeBatchSize = 80
	deliverBatchSize     = 40
	cancelBatchSize      = 5
	rateBatchSize        = 20
)

// OrderProgressionJob advances random batches of purchase orders through
// their lifecycle every five minutes. It drives the regular transition
// handlers with plausible fake timestamps, so demo environments accumulate
// realistic vendor metrics without manual traffic.
//
// Each transition runs in its own transaction; a failed order never blocks
// the rest of its batch.
type OrderProgressionJob struct {
	issueHandler       commands.IssueOrderCommandHandler
	acknowledgeHandler commands.AcknowledgeOrderCommandHandler
	deliverHandler     commands.DeliverOrderCommandHandler
	cancelHandler      commands.CancelOrderCommandHandler
	rateHandler        commands.RateOrderQualityCommandHandler

	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler
	allVendorsHandler     queries.GetAllVendorsQueryHandler

	cron   *cron.Cron
	logger *slog.Logger
	rng    *rand.Rand
}

// NewOrderProgressionJob creates the lifecycle progression job.
func NewOrderProgressionJob(
	issueHandler commands.IssueOrderCommandHandler,
	acknowledgeHandler commands.AcknowledgeOrderCommandHandler,
	deliverHandler commands.DeliverOrderCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	rateHandler commands.RateOrderQualityCommandHandler,
	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	allVendorsHandler queries.GetAllVendorsQueryHandler,
	logger *slog.Logger,
) *OrderProgressionJob {
	return &OrderProgressionJob{
		issueHandler:          issueHandler,
		acknowledgeHandler:    acknowledgeHandler,
		deliverHandler:        deliverHandler,
		cancelHandler:         cancelHandler,
		rateHandler:           rateHandler,
		ordersByStatusHandler: ordersByStatusHandler,
		allVendorsHandler:     allVendorsHandler,
		cron:                  cron.New(cron.WithSeconds()),
		logger:                logger.With("component", "order_progression_job"),
		rng:                   rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec //not security sensitive
	}
}

// Start schedules the job to run every five minutes.
func (j *OrderProgressionJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", j.runCycle)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progression job started (running every 5 minutes)")
	return nil
}

// Stop stops the progression job.
func (j *OrderProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progression job stopped")
}

// runCycle performs one full progression pass in the same order the states
// chain: issue, acknowledge, deliver, cancel, rate.
func (j *OrderProgressionJob) runCycle() {
	ctx := context.Background()

	j.issueBatch(ctx)
	j.acknowledgeBatch(ctx)
	j.deliverBatch(ctx)
	j.cancelBatch(ctx)
	j.rateBatch(ctx)
}

func (j *OrderProgressionJob) issueBatch(ctx context.Context) {
	vendors, err := j.allVendorsHandler.Handle(ctx, queries.NewGetAllVendorsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load vendors", "error", err)
		return
	}
	if len(vendors) == 0 {
		return
	}

	orders := j.sampleOrders(ctx, order.Pending, issueBatchSize)
	for _, o := range orders {
		v := vendors[j.rng.Intn(len(vendors))]
		issuedAt := j.randomTimeBetween(
			o.OrderDate.AddDate(0, 0, 1),
			o.OrderDate.AddDate(0, 0, 3),
		)

		cmd, cmdErr := commands.NewIssueOrderCommand(o.PONumber, v.Code, issuedAt)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build issue command", "error", cmdErr)
			continue
		}
		if _, handleErr := j.issueHandler.Handle(ctx, cmd); handleErr != nil {
			j.logTransitionError(ctx, "issue", o.PONumber.String(), handleErr)
		}
	}
}

func (j *OrderProgressionJob) acknowledgeBatch(ctx context.Context) {
	orders := j.sampleOrders(ctx, order.Issued, acknowledgeBatchSize)
	for _, o := range orders {
		if o.VendorCode == nil || o.IssueDate == nil {
			continue
		}
		acknowledgedAt := j.randomTimeBetween(
			o.IssueDate.Add(6*time.Hour),
			o.IssueDate.AddDate(0, 0, 3),
		)

		cmd, cmdErr := commands.NewAcknowledgeOrderCommand(o.PONumber, *o.VendorCode, acknowledgedAt)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build acknowledge command", "error", cmdErr)
			continue
		}
		if _, handleErr := j.acknowledgeHandler.Handle(ctx, cmd); handleErr != nil {
			j.logTransitionError(ctx, "acknowledge", o.PONumber.String(), handleErr)
		}
	}
}

func (j *OrderProgressionJob) deliverBatch(ctx context.Context) {
	orders := j.sampleOrders(ctx, order.Acknowledged, deliverBatchSize)
	for _, o := range orders {
		if o.VendorCode == nil {
			continue
		}
		// Delivery lands within two days of the promise in either
		// direction, so both on-time and late deliveries occur.
		deliveredAt := j.randomTimeBetween(
			o.ExpectedDeliveryDate.AddDate(0, 0, -2),
			o.ExpectedDeliveryDate.AddDate(0, 0, 2),
		)

		cmd, cmdErr := commands.NewDeliverOrderCommand(o.PONumber, *o.VendorCode, deliveredAt)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build deliver command", "error", cmdErr)
			continue
		}
		if _, handleErr := j.deliverHandler.Handle(ctx, cmd); handleErr != nil {
			j.logTransitionError(ctx, "deliver", o.PONumber.String(), handleErr)
		}
	}
}

func (j *OrderProgressionJob) cancelBatch(ctx context.Context) {
	cancellable := make([]queries.OrderResponse, 0, 3*cancelBatchSize)
	for _, status := range []order.Status{order.Pending, order.Issued, order.Acknowledged} {
		cancellable = append(cancellable, j.sampleOrders(ctx, status, cancelBatchSize)...)
	}
	j.rng.Shuffle(len(cancellable), func(a, b int) {
		cancellable[a], cancellable[b] = cancellable[b], cancellable[a]
	})
	if len(cancellable) > cancelBatchSize {
		cancellable = cancellable[:cancelBatchSize]
	}

	for _, o := range cancellable {
		vendorCode := o.PONumber // pending orders carry no vendor; any valid code passes
		if o.VendorCode != nil {
			vendorCode = *o.VendorCode
		}

		cmd, cmdErr := commands.NewCancelOrderCommand(o.PONumber, vendorCode)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build cancel command", "error", cmdErr)
			continue
		}
		if _, handleErr := j.cancelHandler.Handle(ctx, cmd); handleErr != nil {
			j.logTransitionError(ctx, "cancel", o.PONumber.String(), handleErr)
		}
	}
}

func (j *OrderProgressionJob) rateBatch(ctx context.Context) {
	delivered := j.sampleOrders(ctx, order.Delivered, 0)

	unrated := make([]queries.OrderResponse, 0, len(delivered))
	for _, o := range delivered {
		if o.QualityRating == nil {
			unrated = append(unrated, o)
		}
	}
	j.rng.Shuffle(len(unrated), func(a, b int) {
		unrated[a], unrated[b] = unrated[b], unrated[a]
	})
	if len(unrated) > rateBatchSize {
		unrated = unrated[:rateBatchSize]
	}

	for _, o := range unrated {
		cmd, cmdErr := commands.NewRateOrderQualityCommand(o.PONumber, 1+j.rng.Intn(5))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build rate command", "error", cmdErr)
			continue
		}
		if _, handleErr := j.rateHandler.Handle(ctx, cmd); handleErr != nil {
			j.logTransitionError(ctx, "rate", o.PONumber.String(), handleErr)
		}
	}
}

// sampleOrders loads orders in the given status and returns a random batch
// of at most limit of them. A limit of 0 returns the full population.
func (j *OrderProgressionJob) sampleOrders(
	ctx context.Context,
	status order.Status,
	limit int,
) []queries.OrderResponse {
	query, err := queries.NewGetOrdersByStatusQuery(status, 0)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build status query", "error", err)
		return nil
	}

	orders, err := j.ordersByStatusHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load orders", "status", status.String(), "error", err)
		return nil
	}

	j.rng.Shuffle(len(orders), func(a, b int) {
		orders[a], orders[b] = orders[b], orders[a]
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders
}

func (j *OrderProgressionJob) randomTimeBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	return start.Add(time.Duration(j.rng.Int63n(int64(end.Sub(start)))))
}

// logTransitionError keeps the noise down: orders legitimately race the
// batches (another cycle moved them on already), so expected lifecycle
// rejections are logged at debug level only.
func (j *OrderProgressionJob) logTransitionError(ctx context.Context, operation, poNumber string, err error) {
	if errors.Is(err, order.ErrAlreadyProcessed) ||
		errors.Is(err, order.ErrNotYetIssued) ||
		errors.Is(err, order.ErrNotYetAcknowledged) ||
		errors.Is(err, order.ErrNotYetDelivered) ||
		errors.Is(err, order.ErrAlreadyCancelled) ||
		errors.Is(err, order.ErrAlreadyRated) {
		j.logger.DebugContext(ctx, "Skipped order", "operation", operation, "po_number", poNumber, "error", err)
		return
	}

	j.logger.ErrorContext(ctx, "Order progression step failed",
		"operation", operation, "po_number", poNumber, "error", err)
}
