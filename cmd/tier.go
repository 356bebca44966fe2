package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tierCmd = &cobra.Command{
	Use:   "tier",
	Short: "Manage the tiered pricing schedule",
	Long: `The tier schedule maps quantity ranges to per-unit rates. It only
takes effect while tiered pricing is on (indiebyll set pricing.tiered
true); with it on, changing an item's quantity re-derives the item's
unit price from the schedule.`,
}

var tierAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a pricing tier",
	Example: `  # 1-19 units at 79 each
  indiebyll tier add --min 1 --max 19 --rate 79

  # 20 and up at 69 each (no --max means unbounded)
  indiebyll tier add --min 20 --rate 69`,
	Args: cobra.NoArgs,
	RunE: runTierAdd,
}

var tierRemoveCmd = &cobra.Command{
	Use:   "remove [tier-id]",
	Short: "Remove a pricing tier",
	Args:  cobra.ExactArgs(1),
	RunE:  runTierRemove,
}

var tierListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pricing tiers",
	Args:  cobra.NoArgs,
	RunE:  runTierList,
}

func init() {
	rootCmd.AddCommand(tierCmd)
	tierCmd.AddCommand(tierAddCmd)
	tierCmd.AddCommand(tierRemoveCmd)
	tierCmd.AddCommand(tierListCmd)

	tierAddCmd.Flags().Float64("min", 1, "Lowest quantity this tier covers")
	tierAddCmd.Flags().Float64("max", 0, "Highest quantity this tier covers (omit for unbounded)")
	tierAddCmd.Flags().Float64("rate", 0, "Per-unit rate within this tier")
	tierAddCmd.MarkFlagRequired("rate")
}

func runTierAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	min, _ := cmd.Flags().GetFloat64("min")
	rate, _ := cmd.Flags().GetFloat64("rate")
	var max *float64
	if cmd.Flags().Changed("max") {
		v, _ := cmd.Flags().GetFloat64("max")
		max = &v
	}

	id := a.Doc().AddTier(min, max, rate)
	a.Persist()

	fmt.Printf("Added tier %s\n", id)
	return nil
}

func runTierRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	a.Doc().RemoveTier(args[0])
	a.Persist()

	fmt.Printf("Removed tier %s\n", args[0])
	return nil
}

func runTierList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	doc := a.Doc()

	state := "off"
	if doc.UseTieredPricing {
		state = "on"
	}
	fmt.Printf("Tiered pricing: %s\n", state)

	if len(doc.Tiers) == 0 {
		fmt.Println("No tiers defined.")
		return nil
	}
	for _, t := range doc.Tiers {
		upper := "and up"
		if t.MaxQty != nil {
			upper = fmt.Sprintf("to %g", *t.MaxQty)
		}
		fmt.Printf("  [%s] %g %s at %s each\n",
			t.ID, t.MinQty, upper, formatDocMoney(doc.CurrencyCode, t.Rate))
	}
	return nil
}
