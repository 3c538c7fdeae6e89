package main

import (
	"context"
	"time"

	"github.com/techreviews/backend/config"
	"github.com/techreviews/backend/internal/app"
	"github.com/techreviews/backend/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	backend := app.New(sigCtx, cfg)

	backend.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	backend.Close(ctx)
}
