package repositories

import (
	"context"

	sdk "github.com/segmentio/kafka-go"
)

type Pagination interface {
	Limit() int64
	Offset() int64
}

// Page is the plain Pagination implementation.
type Page struct {
	Size   int64
	Number int64
}

func (p Page) Limit() int64 {
	return p.Size
}

func (p Page) Offset() int64 {
	return p.Size * p.Number
}

// Journal is an append-only log of lifecycle records keyed by subject handle.
type Journal interface {
	Append(ctx context.Context, records ...sdk.Message) error
	// Records returns the records of one subject in append order.
	// An empty subject selects every record.
	Records(ctx context.Context, subject string, page Pagination) ([]sdk.Message, error)
	Len() int
}
