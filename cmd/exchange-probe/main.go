package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/exbot/goexch/exchanger/client"
	"github.com/exbot/goexch/pkg/config"
	"github.com/exbot/goexch/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (credentials may also come from env)")
	give := flag.String("give", "", "give currency to search for, e.g. RUB")
	get := flag.String("get", "", "get currency to search for, e.g. \"USDT TRC20\"")
	amount := flag.String("amount", "", "amount to calculate, in the give currency")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[probe] no .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[probe] config: %v", err)
	}
	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		OutputFile: cfg.Log.OutputFile,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		log.Fatalf("[probe] logger: %v", err)
	}

	api := client.New(client.Config{
		Login:   cfg.Exchanger.Login,
		Key:     cfg.Exchanger.Key,
		BaseURL: cfg.Exchanger.BaseURL,
		Timeout: cfg.Exchanger.Timeout(),
		Lang:    cfg.Exchanger.Lang,
	})
	ctx := context.Background()

	info, err := api.TestConnection(ctx)
	if err != nil {
		log.Fatalf("[probe] connection failed: %v", err)
	}
	log.Printf("[probe] connected: user_id=%s ip=%s locale=%s", info.UserID, info.IP, info.Locale)

	currencies, err := api.GetCurrencies(ctx, client.CurrencyFilter{})
	if err != nil {
		log.Fatalf("[probe] currencies: %v", err)
	}
	log.Printf("[probe] currencies: %d give / %d get", len(currencies.Give), len(currencies.Get))

	if *give == "" || *get == "" {
		return
	}

	direction, err := api.FindDirection(ctx, *give, *get)
	if err != nil {
		log.Fatalf("[probe] find direction: %v", err)
	}
	if direction == nil {
		log.Printf("[probe] no direction matches %s -> %s", *give, *get)
		os.Exit(1)
	}
	log.Printf("[probe] direction %s: %s -> %s", direction.DirectionID, direction.CurrencyGiveTitle, direction.CurrencyGetTitle)

	detail, err := api.GetDirection(ctx, direction.DirectionID.String())
	if err != nil {
		log.Fatalf("[probe] direction detail: %v", err)
	}
	for _, f := range detail.RequiredFields() {
		log.Printf("[probe] required field: %s (%s, type=%s)", f.Name, f.Label, f.Type)
	}

	if *amount == "" {
		return
	}

	calc, err := api.Calculate(ctx, client.CalcRequest{
		DirectionID: direction.DirectionID.String(),
		Amount:      *amount,
	})
	if err != nil {
		log.Fatalf("[probe] calculate: %v", err)
	}
	log.Printf("[probe] %s %s -> %s %s (reserve %s)",
		calc.SumGive, calc.CurrencyGive, calc.SumGet, calc.CurrencyGet, calc.Reserve)
	if calc.AmountCorrected() {
		log.Printf("[probe] note: amount was adjusted to fit limits %s-%s", calc.MinGive, calc.MaxGive)
	}
}
