package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/log"
	"github.com/routelens/routelens/upstreams"
)

type args struct {
	timeout int
	jsonOut bool
	verbose bool
}

var Args args

var rootCmd = &cobra.Command{
	Use:   "routelens [address-block]",
	Short: "Summarize the upstream networks serving an address block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, cmdArgs []string) error {
		log.SetVerbose(Args.verbose)

		params := upstreams.Params{
			Target:  cmdArgs[0],
			Timeout: time.Duration(Args.timeout) * time.Millisecond,
		}

		rep, err := upstreams.New().Analyze(cmd.Context(), params)
		if err != nil {
			return err
		}

		if Args.jsonOut {
			jsonStr, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return fmt.Errorf("JSON marshalling failed: %v", err)
			}
			fmt.Println(string(jsonStr))
			return nil
		}

		fmt.Print(rep.Render())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&Args.timeout, "timeout", "t", 0, "Per-source fetch timeout (ms)")
	rootCmd.Flags().BoolVarP(&Args.jsonOut, "json", "j", false, "Print the structured report as JSON")
	rootCmd.Flags().BoolVarP(&Args.verbose, "verbose", "v", false, "verbose")
}
