// Package receipt encodes attachment blobs to the textual data-URL form the
// ledger stores inline on expense records, and decodes them back.
package receipt

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

const defaultMediaType = "application/octet-stream"

// Encoder implements usecase.ReceiptEncoder. Each Encode runs in its own
// goroutine; callers hold the returned handle and Wait for the result before
// persisting anything that depends on it.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

type result struct {
	receipt *domain.Receipt
	err     error
}

type pending struct {
	done chan result
}

// Encode starts encoding the file and returns a completion handle.
func (e *Encoder) Encode(ctx context.Context, file usecase.RawFile) usecase.PendingReceipt {
	p := &pending{done: make(chan result, 1)}

	go func() {
		if len(file.Content) == 0 {
			p.done <- result{err: domain.ErrMissingReceipt}
			return
		}

		mediaType := file.Type
		if mediaType == "" {
			mediaType = defaultMediaType
		}

		p.done <- result{receipt: &domain.Receipt{
			Name: file.Name,
			Type: mediaType,
			Data: "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(file.Content),
		}}
	}()

	return p
}

// Wait blocks until the encode completes or ctx is done.
func (p *pending) Wait(ctx context.Context) (*domain.Receipt, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-p.done:
		return r.receipt, r.err
	}
}

// DecodeDataURL recovers the media type and raw bytes from a stored
// data-URL payload.
func DecodeDataURL(data string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(data, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL")
	}

	mediaType := strings.TrimSuffix(meta, ";base64")

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	return mediaType, content, nil
}
