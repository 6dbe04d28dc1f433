package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/reconcile"
	"github.com/dusklight/pixelpipe/pkg/types"
)

var setOrderCmd = &cobra.Command{
	Use:   "set-order <image-id> <legacy|current>",
	Short: "Switch an image to a built-in order table",
	Long: `Set-order replaces the image's order with a built-in canonical table.
The current multi-instance layout is extracted first and merged back onto the
new table, so duplicated modules keep their instances and names.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageID, err := parseImageID(args[0])
		if err != nil {
			return err
		}
		version, ok := types.ParseVersion(args[1])
		if !ok || !version.IsBuiltin() {
			return errors.Newf(errors.ErrInvalidInput, "%q is not a built-in order version", args[1])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		doc, _ := loadDocument(store, imageID)

		extracted := reconcile.ExtractMultiInstance(doc.Order)
		merged := reconcile.MergeMultiInstance(order.NewCanonicalList(version), extracted)

		doc = pipeline.NewDocument(imageID, merged)
		if err := pipeline.SaveOrder(store, doc); err != nil {
			return err
		}

		r := newRenderer()
		fmt.Println(r.OrderSummary(doc, version))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setOrderCmd)
}
