package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/asyncapi"
)

type config struct {
	Output    string `long:"output" env:"ASYNCAPI_OUTPUT" description:"file to write, - for stdout" default:"asyncapi.yaml"`
	ServerURL string `long:"server-url" env:"ASYNCAPI_SERVER_URL" description:"broker address advertised in the document" default:"localhost:9092"`
	Version   string `long:"version" env:"ASYNCAPI_DOC_VERSION" description:"document version" default:"1.0.0"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := generate(cfg); err != nil {
		logger.Fatal("failed to generate asyncapi document", zap.Error(err))
	}
	logger.Info("asyncapi document generated",
		zap.String("output", cfg.Output),
		zap.Int("channels", len(asyncapi.Channels)))
}

func generate(cfg config) error {
	doc := asyncapi.Build(asyncapi.Info{
		Title:       "BC Adapter",
		Version:     cfg.Version,
		Description: "Kafka interface of the blockchain adapter: smart wallet creation, deposit tracking and ERC-4337 withdrawals.",
	}, "local", asyncapi.Server{URL: cfg.ServerURL, Protocol: "kafka"})

	if cfg.Output == "-" {
		return asyncapi.Write(os.Stdout, doc)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output, err)
	}
	if err := asyncapi.Write(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
