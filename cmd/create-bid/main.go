package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/exbot/goexch/exchanger/client"
	"github.com/exbot/goexch/pkg/config"
	"github.com/exbot/goexch/pkg/logger"
)

// fieldValues collects repeatable -field name=value flags.
type fieldValues map[string]string

func (f fieldValues) String() string {
	return fmt.Sprint(map[string]string(f))
}

func (f fieldValues) Set(value string) error {
	name, val, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected name=value, got %q", value)
	}
	f[name] = val
	return nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	directionID := flag.String("direction", "", "direction id (see exchange-probe)")
	amount := flag.String("amount", "", "amount in the give currency")
	action := flag.String("action", "give", "which leg the amount refers to: give, get, give_com, get_com")
	callbackURL := flag.String("callback", "", "webhook URL for status changes")
	noValidate := flag.Bool("no-validate", false, "skip the required-field check")
	fields := fieldValues{}
	flag.Var(fields, "field", "form field as name=value (repeatable)")
	flag.Parse()

	if *directionID == "" || *amount == "" {
		log.Fatal("[create-bid] -direction and -amount are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("[create-bid] no .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[create-bid] config: %v", err)
	}
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, OutputFile: cfg.Log.OutputFile}); err != nil {
		log.Fatalf("[create-bid] logger: %v", err)
	}

	api := client.New(client.Config{
		Login:   cfg.Exchanger.Login,
		Key:     cfg.Exchanger.Key,
		BaseURL: cfg.Exchanger.BaseURL,
		Timeout: cfg.Exchanger.Timeout(),
		Lang:    cfg.Exchanger.Lang,
	})

	apiID := uuid.NewString()
	result, err := api.FullExchange(context.Background(), client.FullExchangeRequest{
		DirectionID:    *directionID,
		Amount:         *amount,
		Fields:         fields,
		Action:         client.Action(*action),
		APIID:          apiID,
		CallbackURL:    *callbackURL,
		SkipValidation: *noValidate,
	})
	if err != nil {
		log.Fatalf("[create-bid] %v", err)
	}

	bid := result.Bid
	log.Printf("[create-bid] created: id=%s hash=%s api_id=%s", bid.ID, bid.Hash, apiID)
	log.Printf("[create-bid] status: %s (%s)", bid.StatusTitle, bid.Status)
	log.Printf("[create-bid] %s %s -> %s %s", bid.AmountGive, bid.CurrencyGive, bid.AmountGet, bid.CurrencyGet)
	if result.AmountAdjusted() {
		log.Printf("[create-bid] note: requested amount was outside limits and was adjusted")
	}
	switch {
	case bid.CanPayViaAPI():
		log.Printf("[create-bid] pay with: bid-status -hash %s -pay", bid.Hash)
	case bid.PaymentURL() != "":
		log.Printf("[create-bid] pay at: %s", bid.PaymentURL())
	}
	if bid.URL != "" {
		log.Printf("[create-bid] page: %s", bid.URL)
	}
}
