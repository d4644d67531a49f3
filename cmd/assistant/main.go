package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/clients/backend"
	"max.ks1230/finance-assistant/internal/config"
	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
	"max.ks1230/finance-assistant/internal/model/export"
	"max.ks1230/finance-assistant/internal/model/turn"
	"max.ks1230/finance-assistant/internal/utils"
)

func main() {
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	var (
		backendURL = flag.String("backend", conf.HTTP().BackendURL(), "chat backend base URL")
		outDir     = flag.String("out", conf.App().DownloadsDir(), "directory for exported files")
		csvOut     = flag.Bool("csv", true, "export the turn's expenses as CSV")
		xlsxOut    = flag.Bool("xlsx", false, "export the turn's expenses as an Excel workbook")
		status     = flag.Bool("status", false, "only print the backend connection status")
	)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	clock := utils.SystemClock{}
	client := backend.New(*backendURL, conf.App().RequestTimeout())

	if *status {
		health, err := client.Health(ctx)
		fmt.Println(turn.ConnectionStatus(health, err).Label())
		return
	}

	message := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if message == "" {
		fmt.Fprintln(os.Stderr, "usage: assistant [flags] <message>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	maxTokens, temperature := conf.App().MaxTokens(), conf.App().Temperature()
	resp, err := client.Chat(ctx, chat.Request{Message: message, MaxTokens: &maxTokens, Temperature: &temperature})
	if err != nil {
		logger.Error("chat failed", zap.Error(err))
		fmt.Println(turn.ErrorText(err))
		os.Exit(1)
	}
	fmt.Println(resp.Response)

	hasExpenses, payload := turn.Interpret(resp, expense.Today(clock.Now()))
	if !hasExpenses {
		return
	}

	exporter := export.NewExporter(conf.App(), clock, client)
	sink := export.DirSink{Dir: *outDir}

	if *csvOut {
		if err = exporter.ExportCSV(ctx, payload, sink); err != nil {
			logger.Error("csv export failed", zap.Error(err))
			fmt.Println("Failed to download CSV file. Please try again.")
		}
	}
	if *xlsxOut {
		if err = exporter.ExportSpreadsheet(ctx, payload, sink); err != nil {
			logger.Error("excel export failed", zap.Error(err))
			fmt.Println("Failed to download Excel file. Please try again.")
		}
	}
}
