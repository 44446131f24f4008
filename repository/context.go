package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ctxTxKeyType struct{}

type ctxReadonlyKeyType struct{}

var ctxTxKey ctxTxKeyType
var ctxReadonlyKey ctxReadonlyKeyType

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, ctxTxKey, tx)
}

func txFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(ctxTxKey).(*sqlx.Tx)
	return tx, ok
}

func withReadonly(ctx context.Context, db *sqlx.DB) context.Context {
	return context.WithValue(ctx, ctxReadonlyKey, db)
}

// InTransaction reports whether ctx was created by Provider.Transact
func InTransaction(ctx context.Context) bool {
	_, ok := txFromContext(ctx)
	return ok
}

// GetTx returns the transaction of ctx, panics outside of Provider.Transact
func GetTx(ctx context.Context) Transaction {
	tx, ok := txFromContext(ctx)
	if !ok {
		panic("transaction not found in context")
	}
	return tx
}

// GetReadonly prefers the transaction of ctx so reads inside Transact see its writes and locks
func GetReadonly(ctx context.Context) Readonly {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}

	db, ok := ctx.Value(ctxReadonlyKey).(*sqlx.DB)
	if !ok {
		panic("readonly database not found in context")
	}
	return db
}
