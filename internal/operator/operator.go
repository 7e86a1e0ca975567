package operator

import (
	"context"
	"fmt"

	"github.com/carson-networks/transaction-service/internal/operator/actions"
	"github.com/carson-networks/transaction-service/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}
	item.response <- ActionItemResponse{err: o.perform(item.ctx, item.action)}
}

// perform runs the action inside one database transaction. The transaction is
// committed only when the action returns nil.
func (o *Operator) perform(ctx context.Context, action actions.IAction) (err error) {
	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = writer.Rollback(context.WithoutCancel(ctx))
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()

	if err = action.Perform(ctx, writer); err != nil {
		_ = writer.Rollback(context.WithoutCancel(ctx))
		return err
	}

	return writer.Commit(ctx)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
