// Package categorize contains the command for one-off category lookups.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/cmd/root"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/categorizer"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/logging"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/store"
)

var (
	vendor string
	text   string
)

// Cmd is the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a vendor or receipt text",
	Long:  `Map a vendor name (and optionally full receipt text) to a spending category using the keyword tables.`,
	Run:   categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&vendor, "vendor", "v", "", "Vendor name (required)")
	Cmd.Flags().StringVarP(&text, "text", "t", "", "Full receipt text to check when the vendor yields no match")
	if err := Cmd.MarkFlagRequired("vendor"); err != nil {
		panic(err)
	}
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	cfgStore := store.NewConfigStore("categories.yaml", "templates.yaml")
	cat := categorizer.NewCategorizer(cfgStore, nil, logging.NewLogrusAdapterFromLogger(root.Log))

	category := cat.Categorize(cmd.Context(), text, vendor)
	fmt.Println(category)
}
