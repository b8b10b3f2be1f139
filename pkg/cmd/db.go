package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotrackhq/ecotrack/pkg/internal/storage/db"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "database related commands",
}

// dbListCmd 列出当前编译产物支持的数据库类型（受 no_mysql 等构建标签影响）.
var dbListCmd = &cobra.Command{
	Use:     "ls",
	Short:   "list compiled-in database dialectors",
	Aliases: []string{"list", "l"},
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range db.GetRegisteredDBTypes() {
			fmt.Fprintln(cmd.OutOrStdout(), string(t))
		}
	},
}

func registerDBCommands() {
	dbCmd.AddCommand(dbListCmd)
	rootCmd.AddCommand(dbCmd)
}
