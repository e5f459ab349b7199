package main

import (
	"fmt"
	"os"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "storefrontctl", Env: cfg.AppEnv, Level: cfg.LogLevel, Output: os.Stderr})

	if err := newRootCmd(newEnv(cfg, log)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
