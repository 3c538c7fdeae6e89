package kafka

import (
	"context"
	"log/slog"

	"github.com/lovoo/goka"
	"github.com/techreviews/backend/internal/core/port"
)

var _ port.PopularityReader = (*PopularityView)(nil)

// A PopularityView reads the per-product click counts aggregated by
// [PopularityProcessor]. A missing key or a view error reads as zero:
// the popular sort then falls back to stored view counts alone.
type PopularityView struct {
	gv *goka.View
}

func NewPopularityView(
	seedBrokers []string, groupTable string,
) (*PopularityView, error) {
	const op = "NewPopularityView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		clickCountCodec{},
	)
	if err != nil {
		return nil, opErr(err, op)
	}
	return &PopularityView{gv}, nil
}

func (v *PopularityView) Run(ctx context.Context) {
	const op = "PopularityView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

func (v *PopularityView) ClickCount(productID string) int64 {
	const op = "PopularityView.ClickCount"
	log := slog.With("op", op)

	val, err := v.gv.Get(productID)
	if err != nil {
		log.Error("failed to get view data", "err", err)
		return 0
	}
	if val == nil {
		return 0
	}

	count, ok := val.(clickCount)
	if !ok {
		log.Error("unexpected type of data", "productID", productID)
		return 0
	}
	return int64(count)
}
