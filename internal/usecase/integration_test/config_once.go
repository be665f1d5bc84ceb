package integrationtest

import (
	"context"
	"sync"

	"github.com/humanbelnik/distancehug/internal/config"
	infra_storage "github.com/humanbelnik/distancehug/internal/infra/storage"
	"github.com/ozontech/allure-go/pkg/framework/provider"
)

var (
	cfg     *config.Config
	cfgErr  error
	cfgOnce sync.Once
)

func getConfig() (*config.Config, error) {
	cfgOnce.Do(func() {
		cfg, cfgErr = config.FromEnv()
	})
	return cfg, cfgErr
}

// openStore connects to the backend named by STORAGE_DRIVER.
func openStore(t provider.T) *infra_storage.Store {
	cfg, err := getConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	store, err := infra_storage.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open %s store: %v", cfg.Storage.Driver, err)
	}
	return store
}
