package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saga-io/saga/pkg/config"
	"github.com/saga-io/saga/pkg/store"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "saga",
	Short: "saga - typed record codec service",
	Long: `saga converts typed records between decimal text, fixed-width
big-endian bytes, framed binary blobs, JSON and CBOR, and persists
each representation to a named file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()

		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" && config.ConfigExists(config.GetDefaultConfigPath()) {
			configPath = config.GetDefaultConfigPath()
		}
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}

		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}

		fs := store.NewFileStore(store.FileStoreConfig{
			DataDir:      cfg.DataDir,
			FsyncOnWrite: cfg.Durability.FsyncOnWrite,
			AtomicWrites: cfg.Durability.AtomicWrites,
		})

		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), "store", fs))
		return nil
	},
}

// storeFromContext retrieves the file store placed in the command context
// by PersistentPreRunE.
func storeFromContext(cmd *cobra.Command) (store.FileStore, bool) {
	fs, ok := cmd.Context().Value("store").(store.FileStore)
	return fs, ok
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for persisted files")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a yaml config file")
}
