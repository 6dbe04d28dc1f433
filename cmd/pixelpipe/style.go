package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/styles"
)

var styleAppend bool

var applyStyleCmd = &cobra.Command{
	Use:   "apply-style <image-id> <style-file>",
	Short: "Apply a style's instance layout to an image",
	Long: `Apply-style reconciles the image's order with the instance requests a
style carries. By default disabled instances are recycled before new ones are
minted; --append preserves every existing instance and only adds the deficit.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageID, err := parseImageID(args[0])
		if err != nil {
			return err
		}
		style, err := styles.Load(args[1])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		doc, resolved := loadDocument(store, imageID)
		style.Apply(doc, styleAppend)
		if err := pipeline.SaveOrder(store, doc); err != nil {
			return err
		}

		r := newRenderer()
		fmt.Printf("applied style %q\n", style.Name)
		fmt.Println(r.OrderSummary(doc, resolved))
		return nil
	},
}

var captureStyleCmd = &cobra.Command{
	Use:   "capture-style <image-id> <name> <style-file>",
	Short: "Capture an image's multi-instance layout as a style",
	Args:  cobra.ExactArgs(3),
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

		doc, _ := loadDocument(store, imageID)
		style := styles.New(args[1], doc)
		if err := style.Save(args[2]); err != nil {
			return err
		}

		fmt.Printf("captured style %q (%d entries) to %s\n", style.Name, len(style.Entries), args[2])
		return nil
	},
}

func init() {
	applyStyleCmd.Flags().BoolVar(&styleAppend, "append", false,
		"Keep existing instances and only add missing ones")
	rootCmd.AddCommand(applyStyleCmd)
	rootCmd.AddCommand(captureStyleCmd)
}
