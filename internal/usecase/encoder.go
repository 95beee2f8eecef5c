package usecase

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
)

// RawFile is an uploaded attachment before encoding.
type RawFile struct {
	Name    string
	Type    string
	Content []byte
}

// PendingReceipt is a handle to an encode in flight. Wait blocks until the
// encoded receipt is available or the context is done. There is no
// cancellation of the encode itself; an abandoned handle simply never has
// its result consumed.
type PendingReceipt interface {
	Wait(ctx context.Context) (*domain.Receipt, error)
}

// ReceiptEncoder turns a raw attachment into its transport-safe textual
// form asynchronously.
type ReceiptEncoder interface {
	Encode(ctx context.Context, file RawFile) PendingReceipt
}
