package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/terrapath/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP routing service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			srv, err := server.New(a.cfg, a.log)
			if err != nil {
				return err
			}

			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides the config")

	return cmd
}
