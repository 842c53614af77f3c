package repositories

import "context"

// TxFn runs inside a database transaction. The transaction is carried in
// ctx (see SetTx), so repository calls made through ctx join it.
type TxFn func(ctx context.Context) error

// TransactionManager runs a function inside a single transaction,
// committing on nil and rolling back on error or panic.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
