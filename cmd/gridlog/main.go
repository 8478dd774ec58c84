package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/gridlog/gridlog/internal/cli"
	"github.com/gridlog/gridlog/internal/db"
	"github.com/gridlog/gridlog/internal/repository"
	"github.com/gridlog/gridlog/internal/service"
	"github.com/gridlog/gridlog/internal/timeline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads ~/.gridlog/config.yaml (if present) and GRIDLOG_*
// environment variables, with sensible defaults for everything.
func loadConfig() error {
	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	viper.SetDefault("db", filepath.Join(home, ".gridlog", "gridlog.db"))
	viper.SetDefault("owner", "local")
	viper.SetDefault("haptics", true)
	viper.SetDefault("log_engine", false)

	viper.AddConfigPath(filepath.Join(home, ".gridlog"))
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("GRIDLOG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func run() error {
	if err := loadConfig(); err != nil {
		return err
	}

	database, err := db.OpenDB(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	recordRepo := repository.NewSQLiteRecordRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer timeline.EngineObserver = timeline.NoopEngineObserver{}
	if viper.GetBool("log_engine") {
		var sink io.Writer = os.Stderr
		observer = timeline.NewLogEngineObserver(sink)
	}

	app := &cli.App{
		Records:        service.NewRecordService(recordRepo, uow, observer),
		Categories:     service.NewCategoryService(categoryRepo),
		Notes:          service.NewNoteService(noteRepo, recordRepo),
		Owner:          viper.GetString("owner"),
		HapticsEnabled: viper.GetBool("haptics"),
		Observer:       observer,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
