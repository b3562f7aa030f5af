package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/studyguide/internal/client/cli"
	"github.com/dmitrijs2005/studyguide/internal/client/config"
	"golang.org/x/term"
)

func main() {

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("studyguide client needs an interactive terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
