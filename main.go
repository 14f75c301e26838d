package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/logevent"
	"github.com/asecurityteam/serverfull"
	"github.com/asecurityteam/settings"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	v1 "github.com/asecurityteam/data-migration-tool/pkg/handlers/v1"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
	"github.com/asecurityteam/data-migration-tool/pkg/mode"
	"github.com/asecurityteam/data-migration-tool/pkg/stages"
	"github.com/asecurityteam/data-migration-tool/pkg/steplist"
	"github.com/asecurityteam/data-migration-tool/pkg/storage"
)

type serverConfig struct {
	Enabled bool `description:"Serve the migration functions over HTTP instead of running once."`
}

func (*serverConfig) Name() string {
	return "Server"
}

type config struct {
	PostgresConfig       *storage.PostgresConfig
	PostgresSourceConfig *storage.PostgresSourceConfig
	StepsConfig          *steplist.Config
	ServerConfig         *serverConfig
}

func (*config) Name() string {
	return "MIGRATOR"
}

type component struct {
	PostgresConfig       *storage.PostgresConfigComponent
	PostgresSourceConfig *storage.PostgresSourceConfigComponent
}

func newComponent() *component {
	return &component{
		PostgresConfig:       storage.NewPostgresComponent(),
		PostgresSourceConfig: storage.NewPostgresSourceComponent(),
	}
}

func (c *component) Settings() *config {
	return &config{
		PostgresConfig:       c.PostgresConfig.Settings(),
		PostgresSourceConfig: c.PostgresSourceConfig.Settings(),
		StepsConfig: &steplist.Config{
			File:      "/etc/migrator/steps.yaml",
			BatchSize: stages.DefaultBatchSize,
		},
		ServerConfig: &serverConfig{},
	}
}

func (c *component) New(ctx context.Context, conf *config) (func(context.Context, settings.Source) error, error) {
	destination, err := c.PostgresConfig.New(ctx, conf.PostgresConfig)
	if err != nil {
		return nil, err
	}
	source, err := c.PostgresSourceConfig.New(ctx, conf.PostgresSourceConfig)
	if err != nil {
		return nil, err
	}
	schemaManager, err := storage.NewSchemaManager(conf.PostgresConfig.MigrationsPath, conf.PostgresConfig.URL)
	if err != nil {
		return nil, err
	}
	progress := storage.NewProgressStore(destination.Conn())

	provider := &steplist.FileProvider{
		Path:        conf.StepsConfig.File,
		LogFn:       domain.LoggerFromContext,
		Source:      source.Conn(),
		Destination: destination.Conn(),
		Progress:    progress,
		BatchSize:   conf.StepsConfig.BatchSize,
	}
	deltaTables, err := provider.DeltaTables()
	if err != nil {
		return nil, err
	}
	var setupDeltaLog domain.Stage = &stages.Nop{
		LogFn:  domain.LoggerFromContext,
		Reason: "no step requires delta logging",
	}
	if len(deltaTables) > 0 {
		setupDeltaLog = &stages.DeltaLogSetup{
			LogFn:  domain.LoggerFromContext,
			Source: source.Conn(),
			Tables: deltaTables,
		}
	}

	dataMode := &mode.Data{
		LogFn:         domain.LoggerFromContext,
		StatFn:        domain.StatFromContext,
		Steps:         provider,
		Progress:      progress,
		SetupDeltaLog: setupDeltaLog,
	}

	prepare := func(ctx context.Context) error {
		version, err := schemaManager.Prepare(ctx)
		if err != nil {
			domain.LoggerFromContext(ctx).Error(logs.StorageError{Reason: err.Error()})
			return err
		}
		domain.LoggerFromContext(ctx).Info(logs.SchemaPrepared{Version: version})
		return nil
	}

	if !conf.ServerConfig.Enabled {
		return func(ctx context.Context, _ settings.Source) error {
			defer source.Close()
			defer destination.Close()
			if err := prepare(ctx); err != nil {
				return err
			}
			return dataMode.Run(ctx)
		}, nil
	}

	runMigration := &v1.RunMigrationHandler{
		LogFn:  domain.LoggerFromContext,
		Runner: dataMode,
	}
	getSchemaVersion := &v1.GetSchemaVersionHandler{
		LogFn:  domain.LoggerFromContext,
		Getter: schemaManager,
	}
	resetProgress := &v1.ResetProgressHandler{
		LogFn:   domain.LoggerFromContext,
		Clearer: progress,
	}
	handlers := map[string]serverfull.Function{
		"runMigration":     serverfull.NewFunction(runMigration.Handle),
		"getSchemaVersion": serverfull.NewFunction(getSchemaVersion.Handle),
		"resetProgress":    serverfull.NewFunction(resetProgress.Handle),
	}

	fetcher := &serverfull.StaticFetcher{Functions: handlers}
	return func(ctx context.Context, settingsSource settings.Source) error {
		if err := prepare(ctx); err != nil {
			return err
		}
		return serverfull.Start(ctx, settingsSource, fetcher)
	}, nil
}

func main() {
	ctx := logevent.NewContext(context.Background(), logevent.New(logevent.Config{Output: os.Stdout}))
	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	runner := new(func(context.Context, settings.Source) error)
	cmp := newComponent()
	fs := flag.NewFlagSet("data-migration-tool", flag.ContinueOnError)
	fs.Usage = func() {}
	if err = fs.Parse(os.Args[1:]); err == flag.ErrHelp {
		sg, _ := settings.GroupFromComponent(cmp)
		fmt.Println("Usage:")
		fmt.Println(settings.ExampleEnvGroups([]settings.Group{sg}))
		fmt.Println((&mode.Data{}).UsageHelp())
		return
	}
	if err = settings.NewComponent(ctx, source, cmp, runner); err != nil {
		panic(err.Error())
	}
	if err := (*runner)(ctx, source); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
