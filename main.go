package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"os"

	"github.com/oppenprint/docpress/service/app"
	"github.com/oppenprint/docpress/service/common"
	"github.com/oppenprint/docpress/service/config"
	apperrors "github.com/oppenprint/docpress/service/errors"
	"github.com/oppenprint/docpress/service/http"
	log "github.com/sirupsen/logrus"
)

const version = "0.1.0"

var (
	sha1ver   string // sha1 revision used to build the program
	buildTime string // when the executable was built
)

func init() {
	log.SetLevel(log.InfoLevel)
}

func main() {
	var (
		printVersion bool
		envFilePath  string
	)

	// If we should just print the version number and exit
	flag.BoolVar(&printVersion, "version", false, "if true, print version and exit")

	// Allow configuration of envfile path
	// If not set, ParseConfig will not try to load variables to environment from a file
	flag.StringVar(&envFilePath, "envfile", "", "envfile path")

	flag.Parse()

	if printVersion {
		fmt.Printf("v%s build on %s from sha1 %s\n", version, buildTime, sha1ver)
		os.Exit(0)
	}

	opts := &config.ConfigOptions{EnvFilePath: envFilePath}
	cfg, err := config.ParseConfig(opts)
	if err != nil {
		panic(err)
	}

	if err := runServer(cfg); err != nil {
		panic(err)
	}

	os.Exit(0)
}

func runServer(cfg *config.Config) error {
	if cfg == nil {
		return &apperrors.NilConfigError{}
	}

	logger := log.New()

	logger.Printf("Starting server (v%s)...\n", version)

	profiles, err := config.LoadProfiles(cfg.ProfilesFile)
	if err != nil {
		return err
	}
	logger.Printf("Loaded %d layout profile(s)\n", len(profiles))

	// Database
	db, err := common.NewGormDB(cfg)
	if err != nil {
		return err
	}
	defer common.CloseGormDB(db)

	store := app.NewGormStore(db)

	cache := app.NewRedisRenderCache(cfg.RedisAddr, time.Duration(cfg.RedisTTL)*time.Second)

	// Application
	renderApp := app.New(cfg, logger, store, cache, http.DecodeDocument)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go renderApp.StartWorker(ctx)

	// HTTP server
	server := http.NewServer(cfg, logger, renderApp)

	server.ListenAndServe()

	return nil
}
