package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the sepplot.toml style file",
	// Replaces the root hook: no run log and no style checks here. init
	// must work over an unreadable file.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == configInitCmd {
			return nil
		}
		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write the default settings to PATH (default: --config)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("config:      %s\n", configPath)
		fmt.Printf("output_dir:  %s\n", cfg.OutputDir)
		fmt.Printf("outlier_x:   %g\n", cfg.OutlierX)
		fmt.Printf("type:        %s\n", cfg.Type)
		fmt.Printf("colors:      %v\n", cfg.Style.Colors)
		fmt.Printf("markers:     %v\n", cfg.Style.Markers)
		fmt.Printf("accent:      %s\n", cfg.Style.Accent)
		fmt.Printf("size:        %gx%g in\n", cfg.Style.Width, cfg.Style.Height)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
