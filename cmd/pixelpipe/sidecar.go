package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dusklight/pixelpipe/pkg/codec"
	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
)

var sidecarOut string

var exportSidecarCmd = &cobra.Command{
	Use:   "export-sidecar <image-id>",
	Short: "Export an image's order as a sidecar XML file",
	Long: `Export-sidecar writes the image's order to a standalone XML document.
Built-in orders export as a bare version tag; custom orders embed the full
list in text form. Output goes to stdout unless --output names a file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageID, err := parseImageID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		doc, resolved := loadDocument(store, imageID)
		data, err := codec.EncodeSidecar(resolved, doc.Order)
		if err != nil {
			return err
		}

		if sidecarOut == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(sidecarOut, data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to write sidecar %s", sidecarOut)
		}
		fmt.Printf("wrote sidecar for image %d to %s\n", imageID, sidecarOut)
		return nil
	},
}

var importSidecarCmd = &cobra.Command{
	Use:   "import-sidecar <image-id> <sidecar-file>",
	Short: "Import an image's order from a sidecar XML file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageID, err := parseImageID(args[0])
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "failed to read sidecar %s", args[1])
		}

		version, list, err := codec.DecodeSidecar(data)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		doc := pipeline.NewDocument(imageID, list)
		if err := pipeline.SaveOrder(store, doc); err != nil {
			return err
		}

		r := newRenderer()
		fmt.Println(r.OrderSummary(doc, version))
		return nil
	},
}

func init() {
	exportSidecarCmd.Flags().StringVarP(&sidecarOut, "output", "o", "", "Write the sidecar to a file instead of stdout")
	rootCmd.AddCommand(exportSidecarCmd)
	rootCmd.AddCommand(importSidecarCmd)
}
