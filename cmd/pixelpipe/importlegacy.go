package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
)

var importLegacyCmd = &cobra.Command{
	Use:   "import-legacy <image-id> <file>",
	Short: "Import a legacy float-ranked order dump",
	Long: `Import-legacy reads a float-ranked order dump — one "operation,instance,rank"
line per entry, '#' comments and blank lines ignored — sorts it by the float
rank, renumbers it with integer ranks and persists the result.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageID, err := parseImageID(args[0])
		if err != nil {
			return err
		}

		legacy, err := readLegacyDump(args[1])
		if err != nil {
			return err
		}
		if len(legacy) == 0 {
			return errors.Newf(errors.ErrInvalidInput, "no entries in %s", args[1])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		list := order.ImportLegacyFloatOrder(legacy)
		doc := pipeline.NewDocument(imageID, list)
		if err := pipeline.SaveOrder(store, doc); err != nil {
			return err
		}

		fmt.Printf("imported %d entries for image %d\n", list.Len(), imageID)
		return nil
	},
}

func readLegacyDump(path string) ([]order.FloatRanked, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to open %s", path)
	}
	defer f.Close()

	var out []order.FloatRanked
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s:%d: want operation,instance,rank", path, lineNo)
		}
		instance, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || instance < 0 {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s:%d: invalid instance %q", path, lineNo, parts[1])
		}
		rank, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s:%d: invalid rank %q", path, lineNo, parts[2])
		}

		out = append(out, order.FloatRanked{
			Operation: strings.TrimSpace(parts[0]),
			Instance:  instance,
			Rank:      rank,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to read %s", path)
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(importLegacyCmd)
}
