package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/recommendation"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
	"github.com/complyaudit/complyaudit/internal/repository/sqlite"
	"github.com/complyaudit/complyaudit/internal/services"
)

var (
	cfgFile      string
	outputFormat string
	dbPath       string
	actor        string
	catalogPath  string
)

// runtime bundles the locally wired services behind the CLI commands. The
// CLI drives the same service layer as the API server, against the same
// database file.
type runtime struct {
	store     *sqlite.Store
	posture   *services.PostureService
	workflows *services.WorkflowManager
}

func (rt *runtime) Close() {
	if rt.store != nil {
		rt.store.Close()
	}
}

func newRuntime() (*runtime, error) {
	path := dbPath
	if path == "" {
		path = viper.GetString("db_path")
	}

	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	catalog := compliance.DefaultCatalog()
	if cp := resolveCatalogPath(); cp != "" {
		catalog, err = compliance.LoadCatalog(cp)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to load catalog %s: %w", cp, err)
		}
	}
	library := recommendation.DefaultLibrary()

	log := logger.New(logger.Config{Level: "error", Format: "console"})

	opts := []services.PostureOption{services.WithTrendStore(store)}
	if viper.GetBool("count_applied") {
		opts = append(opts, services.WithAppliedCountedAsPassed())
	}
	posture := services.NewPostureService(catalog, library, store, log, opts...)
	workflows := services.NewWorkflowManager(catalog, library, store, viper.GetDuration("apply_delay"), log)

	return &runtime{
		store:     store,
		posture:   posture,
		workflows: workflows,
	}, nil
}

func resolveCatalogPath() string {
	if catalogPath != "" {
		return catalogPath
	}
	return viper.GetString("catalog_path")
}

func getActor() string {
	if actor != "" {
		return actor
	}
	return viper.GetString("actor")
}

var rootCmd = &cobra.Command{
	Use:   "complyaudit",
	Short: "ComplyAudit CLI - compliance posture assessment and remediation",
	Long: `ComplyAudit CLI assesses compliance posture across security frameworks,
scores each framework from its control scan results, and tracks the
accept/apply remediation workflow for failing findings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.complyaudit/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&actor, "actor", "", "identity recorded on workflow transitions")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default built-in catalog)")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))

	rootCmd.AddCommand(newPostureCmd())
	rootCmd.AddCommand(newRemediationCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		configDir := home + "/.complyaudit"
		_ = os.MkdirAll(configDir, 0700)
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("COMPLYAUDIT")
	viper.AutomaticEnv()

	viper.SetDefault("db_path", "./complyaudit.db")
	viper.SetDefault("output", "table")
	viper.SetDefault("actor", "operator")
	viper.SetDefault("apply_delay", 2*time.Second)

	_ = viper.ReadInConfig()
}

func getOutputFormat() string {
	if outputFormat != "" && outputFormat != "table" {
		return outputFormat
	}
	return viper.GetString("output")
}
