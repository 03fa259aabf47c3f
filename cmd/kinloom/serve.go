package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/kinloom/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve sequences over HTTP",
	Long: `Serve runs the sequence HTTP API. Documents are posted as JSON and
queried for poses, thumbnails and animations. Configuration comes from
KINLOOM_* environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serve() {
	cfg, err := server.ParseConfig()
	if err != nil {
		log.Fatal(err)
	}

	srv := server.New(cfg)
	log.Printf("listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Handler()))
}
