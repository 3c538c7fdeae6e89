package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/techreviews/backend/config"
	"github.com/techreviews/backend/internal/adapter/affiliate"
	"github.com/techreviews/backend/internal/adapter/catalog"
	"github.com/techreviews/backend/internal/adapter/httphandler"
	"github.com/techreviews/backend/internal/adapter/kafka"
	"github.com/techreviews/backend/internal/adapter/mailer"
	"github.com/techreviews/backend/internal/adapter/newsletter"
	"github.com/techreviews/backend/internal/core/service"
	"github.com/techreviews/backend/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx context.Context
	cfg config.Config

	clicksProducer *kafka.ClicksProducer
	popularityProc *kafka.PopularityProcessor
	popularityView *kafka.PopularityView
	procWG         sync.WaitGroup

	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	svcOpts := app.initClickStream()
	svcOpts = append(svcOpts, app.initPriceFetcher()...)
	svcOpts = append(svcOpts, app.initNewsletter()...)
	app.initInboundAdapters(svcOpts)

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// initClickStream wires the click producer and the popularity table.
// With no seed brokers configured the API runs standalone: clicks are
// logged only and the popular sort uses stored view counts.
func (app *App) initClickStream() []service.Opt {
	const op = "App.initClickStream"

	if !app.cfg.BrokerEnabled() {
		slog.Info("broker is not configured, click stream disabled")
		return nil
	}

	ctx := app.ctx
	brokerCfg := app.cfg.Broker

	srClient, err := sr.NewClient(sr.URLs(brokerCfg.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}
	schemaCreater := schema.NewSchemaCreater(srClient)

	clickSS := brokerCfg.Topics.ClickEvents + "-value"
	clickSerde, err := schema.NewSerdeClickEventV1(
		ctx,
		schema.SubjectOpt(clickSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewClicksProducer(
		kafka.ProducerClientOpt(ctx, brokerCfg.SeedBrokers, brokerCfg.Topics.ClickEvents),
		kafka.ProducerEncoderOpt(clickSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	proc, err := kafka.NewPopularityProc(
		brokerCfg.SeedBrokers,
		brokerCfg.Topics.ClickEvents,
		brokerCfg.Topics.PopularityTable,
		clickSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	view, err := kafka.NewPopularityView(
		brokerCfg.SeedBrokers, brokerCfg.Topics.PopularityTable,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.clicksProducer = &producer
	app.popularityProc = proc
	app.popularityView = view

	return []service.Opt{
		service.WithClickProducer(producer),
		service.WithPopularityReader(view),
	}
}

func (app *App) initPriceFetcher() []service.Opt {
	if app.cfg.Affiliate.APIURL == "" {
		slog.Info("affiliate price API is not configured, serving snapshots")
		return nil
	}

	cl := affiliate.New(app.cfg.Affiliate.APIURL, app.cfg.Affiliate.APIKey)
	return []service.Opt{service.WithPriceFetcher(cl)}
}

func (app *App) initNewsletter() []service.Opt {
	m := mailer.New(
		slog.Default(),
		app.cfg.Mail.SendGridKey,
		app.cfg.Mail.FromName,
		app.cfg.Mail.FromEmail,
		app.cfg.SiteURL,
	)
	return []service.Opt{service.WithNewsletter(newsletter.New(), m)}
}

func (app *App) initInboundAdapters(svcOpts []service.Opt) {
	s := service.New(slog.Default(), catalog.NewFromSample(), svcOpts...)

	router := httphandler.NewRouter(httphandler.Deps{
		Products:   s,
		Categories: s,
		Reviews:    s,
		Clicks:     s,
		Prices:     s,
		Newsletter: s,
	})

	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, router)
}

func (app *App) Run(stopFn context.CancelFunc) {
	if app.popularityProc != nil {
		app.procWG.Add(1)
		go app.popularityProc.Run(app.ctx, stopFn, &app.procWG)
		go app.popularityView.Run(app.ctx)
		app.procWG.Wait()
	}

	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.clicksProducer != nil {
		app.clicksProducer.Close()
	}
	if app.popularityProc != nil {
		app.popularityProc.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
