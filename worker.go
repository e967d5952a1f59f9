package retail

import (
	"context"

	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/models"
)

type EventProcessor interface {
	ProcessStockEvent(ctx context.Context, event *models.StockEvent) error
}

// WorkerPool bounds how many stock events are processed concurrently.
type WorkerPool struct {
	workers   chan struct{}
	tasks     chan func()
	logger    *zap.Logger
	processor EventProcessor
}

func NewWorkerPool(size int, processor EventProcessor, logger *zap.Logger) *WorkerPool {
	wp := &WorkerPool{
		workers:   make(chan struct{}, size),
		tasks:     make(chan func(), 1000),
		logger:    logger,
		processor: processor,
	}

	for i := 0; i < size; i++ {
		go wp.worker()
	}

	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.tasks {
		wp.workers <- struct{}{}
		task()
		<-wp.workers
	}
}

func (wp *WorkerPool) Submit(ctx context.Context, event *models.StockEvent) {
	wp.tasks <- func() {
		if err := wp.processor.ProcessStockEvent(ctx, event); err != nil {
			wp.logger.Error("Failed to process stock event",
				zap.Error(err),
				zap.Int64("product_id", event.ProductID),
				zap.String("movement_type", string(event.MovementType)))
		}
	}
}

func (wp *WorkerPool) Shutdown() {
	close(wp.tasks)
	for i := 0; i < cap(wp.workers); i++ {
		wp.workers <- struct{}{}
	}
}
