package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager implements the per-domain Transactor ports on top of a GORM
// connection. The transaction handle travels through the context so that
// repositories inside the unit of work share it.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager wires a transaction manager. Caller manages DB lifecycle.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// InTx runs fn inside one database transaction. Any error from fn rolls the
// whole unit of work back; reads and writes issued through DB(ctx, ...) within
// fn see and join the same transaction.
func (m *TxManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m == nil || m.db == nil {
		return errors.New("postgres transaction manager not configured")
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// DB returns the transaction bound to ctx when one is open, otherwise the
// fallback connection scoped to ctx.
func DB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	if fallback == nil {
		return nil
	}
	return fallback.WithContext(ctx)
}

// InTx reports whether ctx carries an open transaction.
func InTx(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok && tx != nil
}
