package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mq "github.com/ecotrackhq/ecotrack/pkg/internal/storage/mq"
)

var mqCmd = &cobra.Command{
	Use:   "mq",
	Short: "message queue related commands",
}

var mqListCmd = &cobra.Command{
	Use:     "ls",
	Short:   "list registered message queue backends",
	Aliases: []string{"list", "l"},
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range mq.GetRegisteredMQTypes() {
			fmt.Fprintln(cmd.OutOrStdout(), string(t))
		}
	},
}

func registerMQCommands() {
	mqCmd.AddCommand(mqListCmd)
	rootCmd.AddCommand(mqCmd)
}
