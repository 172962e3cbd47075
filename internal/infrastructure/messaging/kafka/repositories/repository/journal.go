package repository

import (
	"bytes"
	"context"
	"errors"

	sdk "github.com/segmentio/kafka-go"

	domainrepos "github.com/whiteelite/workforce/internal/domain/repositories"
)

// JournalParams configures NewJournal.
type JournalParams struct {
	// Required
	Topic string

	// Optional
	InitialCapacity int
}

// Journal keeps lifecycle records in memory, in append order, on a single
// partition. It is not safe for concurrent use.
type Journal struct {
	topic   string
	records []sdk.Message
}

func NewJournal(params JournalParams) (*Journal, error) {
	if err := ValidateJournalParams(params); err != nil {
		return nil, err
	}

	if params.InitialCapacity <= 0 {
		params.InitialCapacity = 64
	}

	return &Journal{
		topic:   params.Topic,
		records: make([]sdk.Message, 0, params.InitialCapacity),
	}, nil
}

func (j *Journal) Topic() string {
	return j.topic
}

// Append stamps each record with the journal topic and the next offset.
// The journal keeps its own copy of key, value and headers.
func (j *Journal) Append(ctx context.Context, records ...sdk.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, record := range records {
		record = cloneRecord(record)
		record.Topic = j.topic
		record.Partition = 0
		record.Offset = int64(len(j.records))
		j.records = append(j.records, record)
	}
	return nil
}

// Records returns copies; changing them does not affect the journal.
func (j *Journal) Records(ctx context.Context, subject string, page domainrepos.Pagination) ([]sdk.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched []sdk.Message
	for _, record := range j.records {
		if subject != "" && !bytes.Equal(record.Key, []byte(subject)) {
			continue
		}
		matched = append(matched, record)
	}

	if page == nil {
		return cloneRecords(matched), nil
	}

	offset := page.Offset()
	if offset < 0 {
		offset = 0
	}
	if offset >= int64(len(matched)) {
		return nil, nil
	}
	matched = matched[offset:]

	if limit := page.Limit(); limit > 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return cloneRecords(matched), nil
}

func (j *Journal) Len() int {
	return len(j.records)
}

func cloneRecord(record sdk.Message) sdk.Message {
	record.Key = bytes.Clone(record.Key)
	record.Value = bytes.Clone(record.Value)
	if record.Headers != nil {
		headers := make([]sdk.Header, len(record.Headers))
		for i, h := range record.Headers {
			headers[i] = sdk.Header{Key: h.Key, Value: bytes.Clone(h.Value)}
		}
		record.Headers = headers
	}
	return record
}

func cloneRecords(records []sdk.Message) []sdk.Message {
	if records == nil {
		return nil
	}
	out := make([]sdk.Message, len(records))
	for i, record := range records {
		out[i] = cloneRecord(record)
	}
	return out
}

var _ domainrepos.Journal = (*Journal)(nil)

func ValidateJournalParams(p JournalParams) error {
	if p.Topic == "" {
		return errors.New("journal topic is required")
	}
	return nil
}
