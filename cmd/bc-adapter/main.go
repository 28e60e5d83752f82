package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/byunyourim/BC-Adapter/internal/account"
	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/ethereum"
	"github.com/byunyourim/BC-Adapter/internal/metrics"
	"github.com/byunyourim/BC-Adapter/internal/repository/clickhouse"
	"github.com/byunyourim/BC-Adapter/internal/repository/mongodb"
	"github.com/byunyourim/BC-Adapter/internal/service"
	"github.com/byunyourim/BC-Adapter/internal/signer"
	"github.com/byunyourim/BC-Adapter/internal/transport/admin"
	"github.com/byunyourim/BC-Adapter/internal/transport/kafka"
	"github.com/byunyourim/BC-Adapter/internal/transport/websocket"
	"github.com/byunyourim/BC-Adapter/internal/userop"
	"github.com/byunyourim/BC-Adapter/pkg/batcher"
	"github.com/byunyourim/BC-Adapter/pkg/retry"
)

type config struct {
	LogLevel string `long:"log-level" env:"LOG_LEVEL" description:"log level" default:"info"`
	LogDev   bool   `long:"log-dev" env:"LOG_DEV" description:"human readable development logging"`

	KafkaBrokers  []string `long:"kafka-brokers" env:"KAFKA_BROKERS" env-delim:"," description:"Kafka bootstrap brokers" required:"true"`
	KafkaClientID string   `long:"kafka-client-id" env:"KAFKA_CLIENT_ID" description:"Kafka client id" default:"bc-adapter"`
	KafkaGroupID  string   `long:"kafka-group-id" env:"KAFKA_GROUP_ID" description:"Kafka consumer group" default:"bc-adapter-group"`
	Workers       int      `long:"workers" env:"WORKERS" description:"concurrently handled requests" default:"8"`

	MongoURI      string `long:"mongo-uri" env:"MONGO_URI" description:"MongoDB connection string" default:"mongodb://localhost:27017"`
	MongoDatabase string `long:"mongo-database" env:"MONGO_DATABASE" description:"MongoDB database" default:"bc_adapter"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"ClickHouse DSN for the deposit journal, journal disabled when empty"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"JOURNAL_FLUSH_SIZE" description:"deposit rows per journal insert" default:"100"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"JOURNAL_FLUSH_INTERVAL" description:"journal flush interval" default:"1s"`

	ChainsFile            string `long:"chains-file" env:"CHAINS_FILE" description:"YAML file with per-chain rpc and bundler URLs"`
	FactoryAddress        string `long:"create2-factory" env:"CREATE2_FACTORY_ADDRESS" description:"CREATE2 deployer used for address derivation" required:"true"`
	InitCodeHash          string `long:"create2-init-code-hash" env:"CREATE2_INIT_CODE_HASH" description:"wallet init code hash" required:"true"`
	EntryPointAddress     string `long:"entry-point" env:"ENTRY_POINT_ADDRESS" description:"ERC-4337 EntryPoint address" required:"true"`
	AccountFactoryAddress string `long:"account-factory" env:"ACCOUNT_FACTORY_ADDRESS" description:"smart account factory address" required:"true"`
	RequiredConfirmations uint64 `long:"required-confirmations" env:"REQUIRED_CONFIRMATIONS" description:"confirmations before a deposit is final" default:"12"`

	UseLocalSigner bool          `long:"use-local-signer" env:"USE_MOCK_KMS" description:"sign with an in-process key instead of KMS"`
	LocalKey       string        `long:"local-key" env:"LOCAL_SIGNER_KEY" description:"hex private key for the local signer, random when empty"`
	KMSEndpoint    string        `long:"kms-endpoint" env:"NHN_KMS_ENDPOINT" description:"KMS endpoint"`
	KMSAppKey      string        `long:"kms-app-key" env:"NHN_KMS_APP_KEY" description:"KMS app key"`
	KMSSecretKey   string        `long:"kms-secret-key" env:"NHN_KMS_SECRET_KEY" description:"KMS secret key"`
	KMSKeyID       string        `long:"kms-key-id" env:"NHN_KMS_KEY_ID" description:"KMS key id"`
	KMSRPS         int           `long:"kms-rps" env:"KMS_RPS" description:"KMS requests per second" default:"20"`
	KMSTimeout     time.Duration `long:"kms-timeout" env:"KMS_TIMEOUT" description:"KMS HTTP timeout" default:"10s"`

	AdminAddr       string  `long:"admin-addr" env:"ADMIN_ADDR" description:"metrics, health and deposit socket address" default:":8080"`
	WSFramesPerSec  float64 `long:"ws-frames-per-second" env:"WS_FRAMES_PER_SECOND" description:"deposit frames accepted per connection per second" default:"100"`
	WSBurst         int     `long:"ws-burst" env:"WS_BURST" description:"deposit frame burst per connection" default:"50"`
	WSMaxFrameBytes int64   `long:"ws-max-frame-bytes" env:"WS_MAX_FRAME_BYTES" description:"largest accepted deposit frame" default:"65536"`
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

	logger, err := newLogger(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("bc adapter failed", zap.Error(err))
	}
	logger.Info("bc adapter stopped")
}

func newLogger(level string, dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	addrs, err := parseContracts(cfg)
	if err != nil {
		return err
	}
	endpoints, err := loadEndpoints(cfg.ChainsFile, os.LookupEnv)
	if err != nil {
		return err
	}

	accounts, err := mongodb.NewRepository(ctx, cfg.MongoURI, cfg.MongoDatabase, metrics.NewRepository("mongodb"))
	if err != nil {
		return fmt.Errorf("init account repository: %w", err)
	}
	defer func() {
		if err := accounts.Close(context.Background()); err != nil {
			logger.Error("failed to close account repository", zap.Error(err))
		}
	}()
	checks := map[string]admin.HealthCheck{"mongodb": accounts.Ping}

	var journal service.DepositRecorder
	if cfg.ClickhouseDSN != "" {
		journalRepo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository("clickhouse"))
		if err != nil {
			return fmt.Errorf("init deposit journal repository: %w", err)
		}
		defer func() {
			if err := journalRepo.Close(); err != nil {
				logger.Error("failed to close deposit journal repository", zap.Error(err))
			}
		}()
		checks["clickhouse"] = journalRepo.Ping

		depositJournal, err := service.NewDepositJournal(journalRepo, metrics.NewDepositJournal(), batcher.Config{
			FlushSize:     cfg.JournalFlushSize,
			FlushInterval: cfg.JournalFlushInterval,
		}, logger)
		if err != nil {
			return err
		}
		// Buffered rows are flushed by Stop after the inputs have shut down.
		depositJournal.Start(context.WithoutCancel(ctx))
		defer depositJournal.Stop()
		journal = depositJournal
	} else {
		logger.Info("deposit journal disabled")
	}

	registry, err := chain.NewRegistry(endpoints, ethereum.DialLedger, ethereum.DialBundler, logger)
	if err != nil {
		return err
	}
	defer registry.Close()

	deriver, err := account.NewDeriver(addrs.factory, addrs.initCodeHash)
	if err != nil {
		return err
	}
	builder, err := userop.NewBuilder(registry, addrs.accountFactory, addrs.entryPoint, logger)
	if err != nil {
		return err
	}
	sig, err := newSigner(cfg, logger)
	if err != nil {
		return err
	}

	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.KafkaClientID)
	busMetrics := metrics.NewBus()
	publisher, err := kafka.NewPublisher(writer, busMetrics, retry.Default, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close publisher", zap.Error(err))
		}
	}()

	registrar, err := service.NewAccountRegistrar(accounts, sig, deriver, publisher, metrics.NewOrchestrator("create_account"), logger)
	if err != nil {
		return err
	}
	tracker, err := service.NewDepositTracker(accounts, registry, journal, publisher, metrics.NewOrchestrator("check_confirm"), cfg.RequiredConfirmations, logger)
	if err != nil {
		return err
	}
	withdrawals, err := service.NewWithdrawalOrchestrator(accounts, sig, builder, registry, publisher,
		metrics.NewOrchestrator("withdraw"), metrics.NewOrchestrator("withdraw_status"), logger)
	if err != nil {
		return err
	}

	router, err := kafka.NewRouter(registrar, tracker, withdrawals, publisher, busMetrics, logger)
	if err != nil {
		return err
	}
	consumer, err := kafka.NewConsumer(kafka.NewReader(cfg.KafkaBrokers, cfg.KafkaGroupID, router.Topics()), router, cfg.Workers, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			logger.Error("failed to close consumer", zap.Error(err))
		}
	}()

	listener, err := websocket.NewListener(tracker, websocket.Config{
		FramesPerSecond: cfg.WSFramesPerSec,
		Burst:           cfg.WSBurst,
		MaxFrameBytes:   cfg.WSMaxFrameBytes,
	}, logger)
	if err != nil {
		return err
	}
	defer listener.Close()

	server := admin.NewServer(cfg.AdminAddr, checks, map[string]http.Handler{websocket.Path: listener}, logger)

	logger.Info("bc adapter started",
		zap.Strings("topics", router.Topics()),
		zap.String("admin_addr", cfg.AdminAddr),
		zap.Int("workers", cfg.Workers))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.Run(gctx)
	})
	g.Go(func() error {
		return server.Run(gctx)
	})
	return g.Wait()
}

type contracts struct {
	factory        common.Address
	initCodeHash   common.Hash
	entryPoint     common.Address
	accountFactory common.Address
}

func parseContracts(cfg config) (contracts, error) {
	var c contracts
	for _, a := range []struct {
		name  string
		value string
		dst   *common.Address
	}{
		{"create2 factory", cfg.FactoryAddress, &c.factory},
		{"entry point", cfg.EntryPointAddress, &c.entryPoint},
		{"account factory", cfg.AccountFactoryAddress, &c.accountFactory},
	} {
		if !common.IsHexAddress(a.value) {
			return contracts{}, fmt.Errorf("invalid %s address %q", a.name, a.value)
		}
		*a.dst = common.HexToAddress(a.value)
	}
	raw := common.FromHex(cfg.InitCodeHash)
	if len(raw) != common.HashLength {
		return contracts{}, fmt.Errorf("invalid init code hash %q", cfg.InitCodeHash)
	}
	c.initCodeHash = common.BytesToHash(raw)
	return c, nil
}

func newSigner(cfg config, logger *zap.Logger) (service.Signer, error) {
	if cfg.UseLocalSigner {
		s, err := signer.NewLocalSigner(cfg.LocalKey, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := signer.NewKMSClient(signer.KMSConfig{
		Endpoint:  cfg.KMSEndpoint,
		AppKey:    cfg.KMSAppKey,
		SecretKey: cfg.KMSSecretKey,
		KeyID:     cfg.KMSKeyID,
		RPS:       cfg.KMSRPS,
		Retry:     retry.Default,
	}, &http.Client{Timeout: cfg.KMSTimeout}, metrics.NewKMSClient(), logger)
	if err != nil {
		return nil, fmt.Errorf("init kms signer: %w", err)
	}
	return s, nil
}
