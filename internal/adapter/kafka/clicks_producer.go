package kafka

import (
	"context"
	"log/slog"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ClickProducer = (*ClicksProducer)(nil)

// A ClicksProducer publishes [domain.ClickEvent] to the click stream.
// Records are keyed by product id so one product's clicks land in one
// partition and the popularity table can count them locally.
type ClicksProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewClicksProducer(opts ...ProducerOpt) (ClicksProducer, error) {
	const op = "NewClicksProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ClicksProducer{}, opErr(err, op)
		}
	}
	return ClicksProducer{options.cl, options.encoder}, nil
}

func (p ClicksProducer) Close() {
	const op = "ClicksProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ClicksProducer) ProduceClick(
	ctx context.Context, ev domain.ClickEvent,
) error {
	const op = "ClicksProducer.ProduceClick"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	r, err := p.createRecord(ev)
	if err != nil {
		return opErr(err, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, op)
	}
	return nil
}

func (p ClicksProducer) createRecord(
	ev domain.ClickEvent,
) (*kgo.Record, error) {
	const op = "ClicksProducer.createRecord"

	s := clickToSchemaV1(ev)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return &kgo.Record{Key: []byte(s.ProductID), Value: b}, nil
}
