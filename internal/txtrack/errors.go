package txtrack

import "errors"

var (
	// ErrConnection is returned when the pending transaction subscription cannot be established.
	// It is fatal: no transaction is resolved when it occurs.
	ErrConnection = errors.New("node connection error")

	// ErrResolveFailed wraps transport or decoding failures while resolving a single transaction.
	// The pipeline logs it and moves on to the next hash.
	ErrResolveFailed = errors.New("transaction resolution failed")

	// ErrTransactionNotFound is returned by a Resolver when the node does not know the hash.
	// It is a normal outcome for pending transactions that were dropped or replaced.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSourceEnded is returned when the subscription feed stops before the sample is full.
	ErrSourceEnded = errors.New("pending transaction feed ended before the sample was complete")
)
