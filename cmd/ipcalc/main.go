package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/Flarenzy/ipnets/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := cli.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("ipcalc: %v", err)
	}

	if err := cli.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("ipcalc: %v", err)
	}
}
