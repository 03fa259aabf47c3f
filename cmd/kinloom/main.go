package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kinloom",
	Short: "Kinetic sequence player and toolkit",
	Long: `Kinloom parses two-prop sequence documents, resolves each beat into
continuous prop motion, and plays the result in the terminal. It can
also inspect documents, export thumbnails, and serve sequences over HTTP.`,
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
