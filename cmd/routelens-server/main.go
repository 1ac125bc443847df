// Package main provides the routelens HTTP server binary
package main

import (
	stdlog "log"
	"os"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/log"
	"github.com/routelens/routelens/server"
)

var (
	addr     string
	redisURL string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "routelens-server",
	Short: "Upstreams HTTP server",
	Long:  `HTTP server that summarizes upstream networks for address blocks via a REST API`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetVerbose(verbose)

		if redisURL == "" {
			redisURL = os.Getenv("ROUTELENS_REDIS")
		}

		srv := server.NewServer(redisURL)

		stdlog.Printf("Starting upstreams HTTP server on %s", addr)
		stdlog.Printf("Example usage: curl 'http://localhost:3766/upstreams?target=1.1.1.0/24'")

		return srv.Start(addr)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&addr, "addr", "a", ":3766", "HTTP server address to listen on")
	rootCmd.Flags().StringVarP(&redisURL, "redis", "r", "", "Redis URL for the report cache (or ROUTELENS_REDIS)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
