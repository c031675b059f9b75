package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/townlink/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is committed when the handler responds with a status below 400
// and rolled back otherwise.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.FromContext(r.Context()).Errorw("failed to begin transaction", "error", err)
				writeJSONMessage(w, http.StatusInternalServerError, "Internal server error.")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &bufferedStatusWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(ContextWithTx(r.Context(), tx)))

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.FromContext(r.Context()).Errorw("failed to rollback transaction", "error", err)
				}
				rw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.FromContext(r.Context()).Errorw("failed to commit transaction", "error", err)
				writeJSONMessage(w, http.StatusInternalServerError, "Internal server error.")
				return
			}
			rw.flush()
		})
	}
}

// bufferedStatusWriter holds the response until the transaction outcome is known.
type bufferedStatusWriter struct {
	http.ResponseWriter
	statusCode int
	body       []byte
}

func (w *bufferedStatusWriter) WriteHeader(code int) {
	w.statusCode = code
}

func (w *bufferedStatusWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return len(b), nil
}

func (w *bufferedStatusWriter) flush() {
	w.ResponseWriter.WriteHeader(w.statusCode)
	if len(w.body) > 0 {
		w.ResponseWriter.Write(w.body)
	}
}

// TxRunner runs functions inside a database transaction carried by the context.
type TxRunner struct {
	db *sqlx.DB
}

// NewTxRunner creates a TxRunner over db.
func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run begins a transaction, calls fn with a context holding it and commits when fn succeeds.
// If ctx already carries a transaction, fn joins it.
func (t *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err = fn(ContextWithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.FromContext(ctx).Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// ContextWithTx stores a transaction in the context
func ContextWithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
