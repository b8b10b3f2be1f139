package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "config subcommands",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configs.InitConfig(configPath)
	},
}

// configPathCmd 打印实际生效的配置文件路径，便于排查多环境部署取错配置的问题.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "print the path of the active config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := configs.GetViper()
		if v == nil {
			return fmt.Errorf("config not initialized")
		}

		if used := v.ConfigFileUsed(); used != "" {
			fmt.Fprintln(cmd.OutOrStdout(), used)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "no config file used (defaults and env only)")
		}

		return nil
	},
}

// configDumpCmd 以 JSON 输出合并了默认值、文件与环境变量后的最终配置.
var configDumpCmd = &cobra.Command{
	Use:     "debug",
	Short:   "print the resolved config values",
	Aliases: []string{"dump"},
	RunE: func(cmd *cobra.Command, args []string) error {
		v := configs.GetViper()
		if v == nil {
			return fmt.Errorf("config not initialized")
		}

		if debug {
			v.Debug()
		}

		b, err := json.MarshalIndent(configs.GetConfig(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(b))

		return nil
	},
}

func registerConfigsCommands() {
	configCmd.AddCommand(configPathCmd, configDumpCmd)
	rootCmd.AddCommand(configCmd)
}
