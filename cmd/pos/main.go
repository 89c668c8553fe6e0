// Startup wiring for the Pocket POS core. The presentation shell (screens,
// dialogs, pickers) lives elsewhere and drives the core exclusively through
// the component operations constructed here.
package main

import (
	"os"

	inventoryapp "github.com/pocketpos/backend/internal/application/inventory"
	licenseapp "github.com/pocketpos/backend/internal/application/license"
	salesapp "github.com/pocketpos/backend/internal/application/sales"
	inventorydomain "github.com/pocketpos/backend/internal/domain/inventory"
	licensedomain "github.com/pocketpos/backend/internal/domain/license"
	salesdomain "github.com/pocketpos/backend/internal/domain/sales"
	"github.com/pocketpos/backend/internal/infrastructure/config"
	"github.com/pocketpos/backend/internal/infrastructure/logger"
	"github.com/pocketpos/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Data.EnsureDirs(); err != nil {
		log.Fatal("failed to prepare data directories", zap.Error(err))
	}

	// Document resources
	invRes := persistence.NewResource[[]inventorydomain.Item](cfg.Data.InventoryPath(), log)
	salesRes := persistence.NewResource[[]salesdomain.Record](cfg.Data.SalesPath(), log)
	flagsRes := persistence.NewResource[licensedomain.Flags](cfg.Data.FlagsPath(), log)

	// Core components; the shell additionally owns a CartSession and a
	// RefundProcessor built over these ledgers.
	invLedger := inventoryapp.NewLedger(invRes, log)
	salesLedger := salesapp.NewLedger(salesRes, log)
	licenses := licenseapp.NewManager(flagsRes, log)

	invLedger.LoadAll()
	salesLedger.LoadAll()
	flags := licenses.LoadFlags()

	log.Info("pocket pos core ready",
		zap.String("app", cfg.App.Name),
		zap.String("data_dir", cfg.Data.BaseDir),
		zap.Int("inventory_items", invLedger.Count()),
		zap.Int("sales_records", salesLedger.Len()),
		zap.String("license", flags.Summary()))
}
