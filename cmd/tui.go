package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jmath/jmath/internal/client"
	"github.com/jmath/jmath/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal client against a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		server, _ := cmd.Flags().GetString("server")
		return tui.Run(cmd.Context(), client.New(server))
	},
}

func init() {
	tuiCmd.Flags().String("server", client.DefaultBaseURL, "Base URL of a running jmath server")
}
