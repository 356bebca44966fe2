package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"indiebyll/internal/logger"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage line items of the current document",
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a blank line item",
	Long: `Append a blank line item with quantity 1 and price 0, and print its
id. Fill it in with "item update".`,
	Args: cobra.NoArgs,
	RunE: runItemAdd,
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update [item-id]",
	Short: "Update fields of a line item",
	Long: `Update one or more fields of a line item. Only the flags you pass
are applied; unknown ids are ignored silently, matching the editor's
latest-write-wins field model.

With tiered pricing enabled, setting the quantity also rewrites the
item's unit price to the tier schedule's effective per-unit rate for
that quantity.`,
	Example: `  indiebyll item update 01JK... --description "Sky replacement" --qty 12
  indiebyll item update 01JK... --price 25000`,
	Args: cobra.ExactArgs(1),
	RunE: runItemUpdate,
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove [item-id]",
	Short: "Remove a line item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemRemove,
}

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemRemoveCmd)

	itemUpdateCmd.Flags().String("description", "", "Item description")
	itemUpdateCmd.Flags().Float64("price", 0, "Unit price")
	itemUpdateCmd.Flags().Float64("qty", 0, "Quantity")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	id := a.Doc().AddItem()
	a.Persist()

	fmt.Printf("Added item %s\n", id)
	return nil
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("item")

	a, err := openApp()
	if err != nil {
		return err
	}
	doc := a.Doc()
	id := args[0]

	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		doc.SetItemDescription(id, v)
	}
	if cmd.Flags().Changed("price") {
		v, _ := cmd.Flags().GetFloat64("price")
		doc.SetItemPrice(id, v)
	}
	if cmd.Flags().Changed("qty") {
		v, _ := cmd.Flags().GetFloat64("qty")
		doc.SetItemQuantity(id, v)
	}
	a.Persist()

	log.Debug().Str("item_id", id).Msg("Item updated")

	totals := doc.Totals()
	fmt.Printf("Subtotal is now %s\n", formatDocMoney(doc.CurrencyCode, totals.Subtotal))
	return nil
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	a.Doc().RemoveItem(args[0])
	a.Persist()

	fmt.Printf("Removed item %s\n", args[0])
	return nil
}
