package main

import (
	"github.com/spf13/cobra"

	"quickbites/internal/server"
)

// quickbites serve starts the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}
