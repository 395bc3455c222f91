package ports

import "context"

// TxManager scopes a function to a single storage transaction. The context
// passed to fn carries the transaction; repository calls made with it join
// the same transaction. fn returning an error rolls everything back,
// returning nil commits — there is no other exit path.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
