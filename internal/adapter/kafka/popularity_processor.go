package kafka

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/lovoo/goka"
	"github.com/techreviews/backend/pkg/schema"
)

// A PopularityProcessor folds the click stream into a per-product
// count group table. The table feeds the popular sort through
// [PopularityView].
type PopularityProcessor struct {
	opPrefix string
	gp       *goka.Processor
}

func NewPopularityProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	clickSerde Serde,
) (*PopularityProcessor, error) {
	const op = "NewPopularityProc"

	var p PopularityProcessor

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newClickEventCodec(clickSerde),
			p.processFn,
		),
		goka.Persist(clickCountCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNoLogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.opPrefix = "PopularityProcessor"
	p.gp = gp
	return &p, nil
}

func (p *PopularityProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "Run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *PopularityProcessor) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

func (p *PopularityProcessor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "runProc"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *PopularityProcessor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (p *PopularityProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.ClickEventV1)

	var count clickCount
	if v := ctx.Value(); v != nil {
		count, _ = v.(clickCount)
	}
	count++
	ctx.SetValue(count)

	log.Debug(
		"click counted",
		"productID", event.ProductID,
		"storeID", event.StoreID,
		"count", int64(count),
	)
}
