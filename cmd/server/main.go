package main

import (
	"context"
	"turtledb-backend/lib/configutil"
	"turtledb-backend/lib/scrapers/turtlewow"
	"turtledb-backend/lib/serviceutil"
	"turtledb-backend/lib/sqliteutil"
	"turtledb-backend/lib/telemetry"
	"turtledb-backend/services/api"
	"turtledb-backend/services/catalog"
	"turtledb-backend/services/catalog/db"
	"turtledb-backend/services/importer"
)

type Config struct {
	Addr     string `json:"addr"`
	Database string `json:"database"`
	Seed     bool   `json:"seed"`
}

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	t, err := telemetry.SetupFromEnv(ctx, "turtledb-server")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.Database == "" {
		config.Database = "turtledb.db"
	}

	database, err := sqliteutil.OpenDB(db.Schema, config.Database)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	defer database.Close()

	if config.Seed {
		if err := catalog.Seed(ctx, database); err != nil {
			serviceutil.Fatal("failed to seed database", err)
		}
	}

	scraper := turtlewow.NewClient(turtlewow.ClientOptions{})
	defer scraper.Close()

	server := api.NewServer(
		catalog.NewService(database),
		importer.NewService(database, scraper),
	)
	go func() {
		if err := server.Run(config.Addr); err != nil {
			serviceutil.Fatal("http server exited", err)
		}
	}()

	<-ctx.Done()
}
