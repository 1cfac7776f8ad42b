package ingest

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"banglprop/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// Batch is one unit of work for the writer: snapshot records of either
// kind, already cleaned by the loader.
type Batch struct {
	Properties []models.PropertyRecord
	Auctions   []models.AuctionRecord
}

func (b Batch) Len() int {
	return len(b.Properties) + len(b.Auctions)
}

// RecordQueue is an in-memory queue of record batches between the
// snapshot reader and the database writer.
type RecordQueue struct {
	items    chan Batch
	maxSize  int
	closed   bool
	mu       sync.RWMutex
	wg       sync.WaitGroup
	logger   *logrus.Logger
	handlers []func(Batch) error
}

// NewRecordQueue creates a queue with the specified buffer size.
func NewRecordQueue(bufferSize int, logger *logrus.Logger) *RecordQueue {
	return &RecordQueue{
		items:   make(chan Batch, bufferSize),
		maxSize: bufferSize,
		logger:  logger,
	}
}

// Push adds a batch to the queue without blocking.
func (q *RecordQueue) Push(batch Batch) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	select {
	case q.items <- batch:
		q.logger.WithField("batch_size", batch.Len()).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each batch.
func (q *RecordQueue) Subscribe(handler func(Batch) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins dispatching queued batches to the subscribed handlers.
func (q *RecordQueue) Start() {
	q.wg.Add(1)
	go q.process()
}

func (q *RecordQueue) process() {
	defer q.wg.Done()
	for batch := range q.items {
		q.dispatch(batch)
	}
}

func (q *RecordQueue) dispatch(batch Batch) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops accepting new batches. Already-queued batches still drain;
// use Wait to block until they have.
func (q *RecordQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	close(q.items)
	return nil
}

// Wait blocks until the dispatch loop has drained the queue.
func (q *RecordQueue) Wait() {
	q.wg.Wait()
}

// Len returns the current number of queued batches.
func (q *RecordQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed.
func (q *RecordQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
