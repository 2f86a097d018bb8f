package adapter

import "context"

// TxManager runs a function inside one storage transaction. Repository
// calls made with the context it passes to fn share that transaction;
// any error from fn rolls everything back.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
