package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/thumbnail"
)

var (
	exportGIF    bool
	exportWidth  int
	exportHeight int
	exportOut    string
)

func init() {
	exportCmd.Flags().BoolVar(&exportGIF, "gif", false, "write an animated GIF instead of a still PNG")
	exportCmd.Flags().IntVar(&exportWidth, "width", 0, "image width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", 0, "image height in pixels")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (defaults to the document name)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <document>",
	Short: "Export a document as a PNG thumbnail or GIF animation",
	Long: `Export renders a sequence document to an image. The still PNG shows
both travel paths over the ring; the GIF animates one full pass of the
sequence.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "export needs exactly one document path")
			os.Exit(1)
		}
		if err := export(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to export: %v\n", err)
			os.Exit(1)
		}
	},
}

func export(path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	seq, err := sequence.Parse(doc)
	if err != nil {
		return err
	}

	ext := ".png"
	if exportGIF {
		ext = ".gif"
	}
	out := exportOut
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ext
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := thumbnail.Options{Width: exportWidth, Height: exportHeight}
	if exportGIF {
		err = thumbnail.WriteGIF(f, seq, opts)
	} else {
		err = thumbnail.WritePNG(f, seq, opts)
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}
