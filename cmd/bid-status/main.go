package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/exbot/goexch/exchanger/client"
	"github.com/exbot/goexch/pkg/config"
	"github.com/exbot/goexch/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	hash := flag.String("hash", "", "bid hash")
	bidID := flag.String("id", "", "bid id")
	pay := flag.Bool("pay", false, "confirm payment (guarded)")
	cancel := flag.Bool("cancel", false, "cancel the bid (guarded)")
	confirm := flag.Bool("confirm", false, "mark the bid completed")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[bid-status] no .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[bid-status] config: %v", err)
	}
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, OutputFile: cfg.Log.OutputFile}); err != nil {
		log.Fatalf("[bid-status] logger: %v", err)
	}

	api := client.New(client.Config{
		Login:   cfg.Exchanger.Login,
		Key:     cfg.Exchanger.Key,
		BaseURL: cfg.Exchanger.BaseURL,
		Timeout: cfg.Exchanger.Timeout(),
		Lang:    cfg.Exchanger.Lang,
	})
	ctx := context.Background()

	bid, err := api.GetBidStatus(ctx, *hash, *bidID)
	if err != nil {
		log.Fatalf("[bid-status] %v", err)
	}

	log.Printf("[bid-status] bid %s (hash=%s)", bid.ID, bid.Hash)
	log.Printf("[bid-status] status: %s (%s)", bid.StatusTitle, bid.Status)
	log.Printf("[bid-status] %s %s -> %s %s", bid.AmountGive, bid.CurrencyGive, bid.AmountGet, bid.CurrencyGet)
	log.Printf("[bid-status] actions: pay=%q cancel=%q type=%q",
		bid.APIActions.Pay, bid.APIActions.Cancel, bid.APIActions.Type)

	switch {
	case *pay:
		if _, err := api.SafePay(ctx, bid); err != nil {
			log.Fatalf("[bid-status] pay: %v", err)
		}
		log.Printf("[bid-status] payment confirmed")
	case *cancel:
		if _, err := api.SafeCancel(ctx, bid); err != nil {
			log.Fatalf("[bid-status] cancel: %v", err)
		}
		log.Printf("[bid-status] bid cancelled")
	case *confirm:
		if _, err := api.ConfirmBid(ctx, bid.Hash); err != nil {
			log.Fatalf("[bid-status] confirm: %v", err)
		}
		log.Printf("[bid-status] bid marked completed")
	}
}
