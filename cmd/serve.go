package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/begraf/spurkarte/cmd/serve"
	"gitlab.com/begraf/spurkarte/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive track map",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP(
		"listen",
		"l",
		"",
		"Listen address (default \":8000\")",
	)

	if err := viper.BindPFlag(config.KeyListenAddress, serveCmd.Flags().Lookup("listen")); err != nil {
		panic(err)
	}
}
