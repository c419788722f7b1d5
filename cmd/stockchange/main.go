package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flf2ko/fasthttp-prometheus"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/stockchange/pkg/models"
	"github.com/stockchange/pkg/pipeline"
	"github.com/stockchange/pkg/quotes"
	"github.com/stockchange/pkg/service"
)

var (
	serviceVersion = "dev"
	methodError    = []string{"method", "error"}
	lookupLabels   = []string{"ticker", "error", "empty"}
)

type configuration struct {
	AmazonDates     string `envconfig:"AMAZON_DATES" required:"true"`
	GoogleDates     string `envconfig:"GOOGLE_DATES" required:"true"`
	BitcoinDates    string `envconfig:"BITCOIN_DATES" required:"true"`
	DestinationFile string `envconfig:"DESTINATION_FILE" required:"true"`

	Workers          int           `envconfig:"WORKERS" default:"10"`
	PercentPrecision int32         `envconfig:"PERCENT_PRECISION" default:"6"`
	ProviderURL      string        `envconfig:"PROVIDER_URL" default:"https://query1.finance.yahoo.com"`
	ProviderTimeout  time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"30s"`
	UserAgent        string        `envconfig:"USER_AGENT"`
	ExecuteTimeout   time.Duration `envconfig:"EXECUTE_TIMEOUT" default:"30m"`

	Port               string `envconfig:"PORT" default:"8080"`
	MaxRequestBodySize int    `envconfig:"MAX_REQUEST_BODY_SIZE" default:"10485760"` // 10 MB

	MetricsNamespace    string `envconfig:"METRICS_NAMESPACE" default:"stockchange"`
	MetricsSubsystem    string `envconfig:"METRICS_SUBSYSTEM" default:"pipeline"`
	MetricsNameCount    string `envconfig:"METRICS_NAME_COUNT" default:"request_count"`
	MetricsNameDuration string `envconfig:"METRICS_NAME_DURATION" default:"request_duration"`
	MetricsHelpCount    string `envconfig:"METRICS_HELP_COUNT" default:"Request count"`
	MetricsHelpDuration string `envconfig:"METRICS_HELP_DURATION" default:"Request duration"`

	WriteTimeout int `envconfig:"WRITE_TIMEOUT" default:"30"`

	URIPathExecute string `envconfig:"URI_PATH_EXECUTE" default:"/execute"`
}

func (c configuration) sources() []pipeline.Source {
	return []pipeline.Source{
		{Ticker: pipeline.Amazon, Path: c.AmazonDates},
		{Ticker: pipeline.Bitcoin, Path: c.BitcoinDates},
		{Ticker: pipeline.Google, Path: c.GoogleDates},
	}
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	envFile := flag.String("env", ".env", "dotenv file loaded before reading the environment")
	serve := flag.Bool("serve", false, "serve the execute endpoint and /metrics instead of a single run")
	remote := flag.String("remote", "", "trigger a run on a serving instance at host:port")
	flag.Parse()

	if *printVersion {
		fmt.Println(serviceVersion)
		os.Exit(0)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	_ = level.Info(logger).Log("msg", "initializing", "version", serviceVersion)

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = level.Error(logger).Log("msg", "failed to load env file", "path", *envFile, "err", err)
		os.Exit(1)
	}

	if *remote != "" {
		os.Exit(runRemote(logger, *remote))
	}

	var cfg configuration
	if err := envconfig.Process("", &cfg); err != nil {
		_ = level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		os.Exit(1)
	}

	var provider quotes.Provider = quotes.NewYahoo(&fasthttp.Client{
		Name:            "stockchange",
		MaxConnsPerHost: cfg.Workers,
	}, cfg.ProviderURL, cfg.UserAgent, cfg.ProviderTimeout)
	provider = quotes.NewLoggingMiddleware(log.With(logger, "component", "provider"), provider)
	provider = quotes.NewInstrumentingMiddleware(
		kitprometheus.NewCounterFrom(prometheus.CounterOpts{
			Namespace: cfg.MetricsNamespace,
			Subsystem: cfg.MetricsSubsystem,
			Name:      "lookup_count",
			Help:      "Price lookups",
		}, lookupLabels),
		kitprometheus.NewSummaryFrom(prometheus.SummaryOpts{
			Namespace: cfg.MetricsNamespace,
			Subsystem: cfg.MetricsSubsystem,
			Name:      "lookup_duration",
			Help:      "Price lookup duration",
		}, lookupLabels),
		provider,
	)

	jobs := []models.Job{
		pipeline.NewReadJob(cfg.sources(), logger),
		pipeline.NewLookupJob(provider, cfg.Workers, logger),
		pipeline.NewWriteJob(cfg.DestinationFile, cfg.PercentPrecision, logger),
	}

	svc := service.NewService(jobs)

	svc = service.NewLoggingMiddleware(logger, svc)
	svc = service.NewInstrumentingMiddleware(
		kitprometheus.NewCounterFrom(prometheus.CounterOpts{
			Namespace: cfg.MetricsNamespace,
			Subsystem: cfg.MetricsSubsystem,
			Name:      cfg.MetricsNameCount,
			Help:      cfg.MetricsHelpCount,
		}, methodError),
		kitprometheus.NewSummaryFrom(prometheus.SummaryOpts{
			Namespace: cfg.MetricsNamespace,
			Subsystem: cfg.MetricsSubsystem,
			Name:      cfg.MetricsNameDuration,
			Help:      cfg.MetricsHelpDuration,
		}, methodError),
		svc,
	)

	if *serve {
		runServer(logger, cfg, svc)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ExecuteTimeout)
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-c
		_ = level.Info(logger).Log("msg", "received signal, cancelling", "signal", sig)
		cancel()
	}()

	if _, err := svc.Execute(ctx, &models.ExecuteRequest{}); err != nil {
		os.Exit(1)
	}
}

func runServer(logger log.Logger, cfg configuration, svc service.Service) {
	errorProcessor := service.NewErrorProcessor(http.StatusInternalServerError, "internal error")
	executeTransport := service.NewExecuteTransport(service.NewError)

	router := service.MakeFastHTTPRouter(
		[]*service.HandlerSettings{
			{
				Path:    cfg.URIPathExecute,
				Method:  http.MethodPost,
				Handler: service.NewExecuteServer(executeTransport, svc, errorProcessor, cfg.ExecuteTimeout),
			},
		})

	router.Handle("GET", "/debug/pprof/", fasthttpadaptor.NewFastHTTPHandlerFunc(pprof.Index))
	router.Handle("GET", "/debug/pprof/profile", fasthttpadaptor.NewFastHTTPHandlerFunc(pprof.Profile))

	p := fasthttpprometheus.NewPrometheus(cfg.MetricsSubsystem)
	fasthttpServer := &fasthttp.Server{
		Handler:            p.WrapHandler(router),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Duration(cfg.WriteTimeout) * time.Second,
	}

	go func() {
		_ = level.Info(logger).Log("msg", "starting http server", "port", cfg.Port)
		if err := fasthttpServer.ListenAndServe(":" + cfg.Port); err != nil {
			_ = level.Error(logger).Log("msg", "server run failure", "err", err)
			os.Exit(1)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)

	defer func(sig os.Signal) {
		_ = level.Info(logger).Log("msg", "received signal, exiting", "signal", sig)
		if err := fasthttpServer.Shutdown(); err != nil {
			_ = level.Error(logger).Log("msg", "server shutdown failure", "err", err)
		}

		_ = level.Info(logger).Log("msg", "goodbye")
	}(<-c)
}

// runRemote asks a serving instance to run and returns the exit code.
func runRemote(logger log.Logger, addr string) int {
	var cfg struct {
		URIPathExecute string        `envconfig:"URI_PATH_EXECUTE" default:"/execute"`
		ExecuteTimeout time.Duration `envconfig:"EXECUTE_TIMEOUT" default:"30m"`
	}
	if err := envconfig.Process("", &cfg); err != nil {
		_ = level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		return 1
	}

	cli := service.NewClient(
		&fasthttp.HostClient{Addr: addr},
		service.NewExecuteClientTransport(
			service.NewErrorProcessor(http.StatusInternalServerError, "internal error"),
			service.NewError,
			"http://"+addr+cfg.URIPathExecute,
			http.MethodPost,
		),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ExecuteTimeout)
	defer cancel()

	response, err := service.NewLoggingMiddleware(log.With(logger, "remote", addr), cli).Execute(ctx, &models.ExecuteRequest{})
	if err != nil {
		return 1
	}
	fmt.Printf("%s: %d rows, %d without data\n", response.Data.Destination, response.Data.Rows, response.Data.Missing)
	return 0
}
