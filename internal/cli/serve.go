package cli

import (
	"stegano/internal/server"

	"github.com/spf13/cobra"
)

func ServeAppCommand(a *app) *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "stegano serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.config.Server.Port
			}
			a.logger.Info("Starting server", "port", port)
			return server.StartServer(port, a.config)
		},
	}

	command.Flags().StringVar(&port, "port", "8080", "Port on which to start the server, overrides server.port from the config file")

	return command
}
