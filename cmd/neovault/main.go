// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/neovault/neovault/internal/config"
	"github.com/neovault/neovault/internal/crypto"
	"github.com/neovault/neovault/internal/logger"
	"github.com/neovault/neovault/internal/store"
	"github.com/neovault/neovault/internal/tui"
	"github.com/neovault/neovault/internal/vault"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("neovault")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetGlobalLevel(cfg.Logging.Level)

	keys := crypto.NewKeyDeriverWithIterations(cfg.Crypto.KDFIterations)
	cipher := crypto.NewCipher()
	files := store.NewVaultFileStorage(log)
	v := vault.New(keys, cipher, files, log)

	ui := tui.NewTUI(v, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
