// Package main starts the coffee bean inventory shell.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	beanstockcmd "github.com/louisbranch/beanstock/internal/cmd/beanstock"
	"github.com/louisbranch/beanstock/internal/platform/config"
)

func main() {
	log.SetPrefix("[BEANSTOCK] ")
	cfg, err := beanstockcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := beanstockcmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		config.Exitf("beanstock: %v", err)
	}
}
