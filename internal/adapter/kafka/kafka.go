// Package kafka carries the affiliate click stream: a producer that
// publishes click events and a goka processor/view pair aggregating
// them into per-product click counts.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/lovoo/goka"
	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

func withNoLogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func clickToSchemaV1(v domain.ClickEvent) (s schema.ClickEventV1) {
	s.ClickID = v.ClickID
	s.ProductID = v.ProductID
	s.ProductSlug = v.ProductSlug
	s.StoreID = v.StoreID
	s.UserID = v.UserID
	s.Locale = v.Locale
	s.PriceAmount = v.Price.Amount
	s.PriceCurrency = v.Price.Currency
	s.OccurredAt = v.OccurredAt.UnixMilli()
	return
}

// A clickCount is the aggregated per-product value persisted by the
// popularity group table.
type clickCount int64

type clickCountCodec struct{}

func (clickCountCodec) Encode(v any) ([]byte, error) {
	const op = "clickCountCodec.Encode"
	n, ok := v.(clickCount)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return strconv.AppendInt(nil, int64(n), 10), nil
}

func (clickCountCodec) Decode(data []byte) (any, error) {
	const op = "clickCountCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return clickCount(n), nil
}

// A clickEventCodec used for serde [schema.ClickEventV1]
type clickEventCodec struct {
	serde Serde
}

func newClickEventCodec(s Serde) clickEventCodec {
	return clickEventCodec{s}
}

func (c clickEventCodec) Encode(v any) ([]byte, error) {
	const op = "clickEventCodec.Encode"
	if _, ok := v.(schema.ClickEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c clickEventCodec) Decode(data []byte) (any, error) {
	const op = "clickEventCodec.Decode"
	var s schema.ClickEventV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}
