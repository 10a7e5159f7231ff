package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/oppenprint/docpress/service/app"
	"github.com/oppenprint/docpress/service/common"
	"github.com/oppenprint/docpress/service/config"
	"github.com/oppenprint/docpress/service/http"
	"gorm.io/gorm"
)

func cleanTestDatabase(cfg *config.Config, db *gorm.DB) {
	// Only run this if database DSN contains "test"
	if strings.Contains(strings.ToLower(cfg.DatabaseDSN), "test") {
		db.Delete(app.RenderJob{})
	}
}

func getTestCfg() *config.Config {
	cfg, err := config.ParseConfig(&config.ConfigOptions{EnvFilePath: ".env.test"})
	if err != nil {
		panic(err)
	}

	if !strings.Contains(strings.ToLower(cfg.DatabaseDSN), "test") {
		cfg.DatabaseDSN = "test.db"
		cfg.DatabaseType = "sqlite"
	}

	return cfg
}

func getTestApp(cfg *config.Config) (*app.App, func()) {
	db, err := common.NewGormDB(cfg)
	if err != nil {
		panic(err)
	}

	cleanTestDatabase(cfg, db)

	store := app.NewGormStore(db)

	renderApp := app.New(cfg, nil, store, nil, http.DecodeDocument)

	clean := func() {
		cleanTestDatabase(cfg, db)
		common.CloseGormDB(db)
	}

	return renderApp, clean
}

func getTestServer(cfg *config.Config) (*http.Server, func()) {
	renderApp, cleanupApp := getTestApp(cfg)
	clean := func() {
		cleanupApp()
	}
	return http.NewServer(cfg, nil, renderApp), clean
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	if a == b {
		return
	}
	t.Errorf("Received %v (type %v), expected %v (type %v)", a, reflect.TypeOf(a), b, reflect.TypeOf(b))
}

func AssertNotEqual(t *testing.T, a interface{}, b interface{}) {
	if a != b {
		return
	}
	t.Error("Did not expect to equal")
}
