package cli

import (
	"github.com/spf13/cobra"

	"github.com/yigit/classbook/internal/server"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(*configPath)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}
}
