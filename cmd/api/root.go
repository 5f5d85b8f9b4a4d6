package main

import (
	"pet-api/internal/platform/config"
	"pet-api/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pet-api",
		Short: "Pet CRUD HTTP service",
		Long: `pet-api expone un CRUD JSON de mascotas.

Sin DB_DSN usa storage en memoria (modo dev). Con DB_DSN usa Postgres
y aplica las migraciones al arrancar salvo --auto-migrate=false.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runServe,
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "YAML config file")
	pf.IntP("port", "p", config.DefaultPort, "HTTP listen port")
	pf.String("dsn", "", "Postgres DSN (empty = in-memory storage)")
	pf.Bool("auto-migrate", true, "apply schema migrations on startup")
	pf.String("log-level", "info", "debug|info|warn|error")
	pf.String("log-format", "text", "text|json")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newHealthcheckCmd(),
	)

	return root
}

// loadConfig: defaults < YAML < env < flags. Solo pisan los flags que el usuario pasó.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	fs := cmd.Flags()

	path, _ := fs.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if fs.Changed("port") {
		cfg.Port, _ = fs.GetInt("port")
	}
	if fs.Changed("dsn") {
		cfg.DBDSN, _ = fs.GetString("dsn")
	}
	if fs.Changed("auto-migrate") {
		cfg.AutoMigrate, _ = fs.GetBool("auto-migrate")
	}
	if fs.Changed("log-level") {
		cfg.Log.Level, _ = fs.GetString("log-level")
	}
	if fs.Changed("log-format") {
		cfg.Log.Format, _ = fs.GetString("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
}
