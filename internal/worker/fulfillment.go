package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// FulfillmentFacade exposes the subset of application functionality required by the worker.
type FulfillmentFacade interface {
	OrdersForFulfillment(limit int) []model.Order
	AdvanceOrder(id int64) (model.OrderStatus, bool)
}

// FulfillmentProcessor periodically moves open orders one step towards delivery.
type FulfillmentProcessor struct {
	facade       FulfillmentFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	wg       sync.WaitGroup
	cancel   context.CancelFunc
	mu       sync.Mutex
	inflight map[int64]struct{}
	flightMu sync.Mutex
}

// NewFulfillmentProcessor constructs fulfillment worker pool.
func NewFulfillmentProcessor(facade FulfillmentFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *FulfillmentProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &FulfillmentProcessor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		inflight:     make(map[int64]struct{}),
	}
}

// Start launches background processing. Calling Start on a running
// processor is a no-op; a stopped processor may be started again.
func (p *FulfillmentProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	jobs := make(chan model.Order, p.batchSize*p.workers)

	// claims left in a previous run's queue are dropped with it
	p.flightMu.Lock()
	p.inflight = make(map[int64]struct{})
	p.flightMu.Unlock()

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx, jobs)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx, jobs)
}

// Stop waits for all workers to finish.
func (p *FulfillmentProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *FulfillmentProcessor) dispatch(ctx context.Context, jobs chan<- model.Order) {
	defer p.wg.Done()
	defer close(jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx, jobs)
		}
	}
}

func (p *FulfillmentProcessor) fetchAndDispatch(ctx context.Context, jobs chan<- model.Order) {
	for _, order := range p.facade.OrdersForFulfillment(p.batchSize) {
		if !p.claim(order.ID) {
			continue
		}
		select {
		case <-ctx.Done():
			p.release(order.ID)
			return
		case jobs <- order:
		}
	}
}

// claim marks order as queued so the next tick does not dispatch it twice.
func (p *FulfillmentProcessor) claim(id int64) bool {
	p.flightMu.Lock()
	defer p.flightMu.Unlock()
	if _, busy := p.inflight[id]; busy {
		return false
	}
	p.inflight[id] = struct{}{}
	return true
}

func (p *FulfillmentProcessor) release(id int64) {
	p.flightMu.Lock()
	delete(p.inflight, id)
	p.flightMu.Unlock()
}

func (p *FulfillmentProcessor) worker(ctx context.Context, jobs <-chan model.Order) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-jobs:
			if !ok {
				return
			}
			p.handleOrder(order)
		}
	}
}

func (p *FulfillmentProcessor) handleOrder(order model.Order) {
	defer p.release(order.ID)

	next, ok := p.facade.AdvanceOrder(order.ID)
	if !ok {
		// cancelled or removed since the batch was fetched
		p.logger.Debug("order skipped", slog.Int64("order_id", order.ID), slog.String("status", string(order.Status)))
		return
	}
	p.logger.Info("order advanced",
		slog.Int64("order_id", order.ID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(next)),
	)
}
