package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"indiebyll/internal/app"
	"indiebyll/internal/billing"
	"indiebyll/internal/logger"
	"indiebyll/pkg/models"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh document for the current client",
	Long: `Reset the editor to a fresh document for the currently selected
client. A new number with the next free sequence for this year is
generated; invoices and quotations number independently (INV-... vs
QUO-...). Company details, branding and pricing tiers carry over.`,
	Example: `  # Start a new invoice
  indiebyll new

  # Start a new quotation instead
  indiebyll new --quotation`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current document into the client's history",
	Long: `Capture the editor into a snapshot and store it under the current
client. Saving a number that already exists replaces that saved
document in place; a new number appends to the history.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

var loadCmd = &cobra.Command{
	Use:     "load [document-number]",
	Short:   "Load a saved document of the current client into the editor",
	Example: `  indiebyll load INV-2026-003`,
	Args:    cobra.ExactArgs(1),
	RunE:    runLoad,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current document with its computed totals",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(showCmd)

	newCmd.Flags().Bool("quotation", false, "Start a quotation instead of an invoice")
}

func runNew(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("document")

	a, err := openApp()
	if err != nil {
		return err
	}

	kind := models.KindInvoice
	if q, _ := cmd.Flags().GetBool("quotation"); q {
		kind = models.KindQuotation
	}

	if err := a.StartNewDocument(kind); err != nil {
		return fmt.Errorf("failed to start new document: %w", err)
	}

	log.Info().
		Str("kind", string(kind)).
		Str("number", a.Doc().Meta.DocumentNumber).
		Msg("Started new document")

	fmt.Printf("Editing %s %s for %q\n", kind, a.Doc().Meta.DocumentNumber, a.CurrentClientName())
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("document")

	a, err := openApp()
	if err != nil {
		return err
	}

	number := a.Doc().Meta.DocumentNumber
	if err := a.SaveDocument(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	log.Info().
		Str("number", number).
		Str("client", a.CurrentClientName()).
		Msg("Document saved")

	fmt.Printf("Saved %s for %q\n", number, a.CurrentClientName())
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	if err := a.LoadDocument(args[0]); err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	fmt.Printf("Editing %s for %q\n", a.Doc().Meta.DocumentNumber, a.CurrentClientName())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	printDocument(a)
	return nil
}

func formatDocMoney(currencyCode string, v float64) string {
	return billing.FormatCurrency(v, models.CurrencySymbol(currencyCode))
}

// printDocument renders the editor to stdout the way the printed page
// lays it out: header, items, totals, payment details, notes, annexure.
func printDocument(a *app.App) {
	doc := a.Doc()
	symbol := models.CurrencySymbol(doc.CurrencyCode)
	money := func(v float64) string { return billing.FormatCurrency(v, symbol) }

	title := "INVOICE"
	if doc.Meta.Kind == models.KindQuotation {
		title = "QUOTATION"
	}
	fmt.Printf("%s %s\n", title, doc.Meta.DocumentNumber)
	fmt.Printf("Issued %s", doc.Meta.IssueDate)
	if doc.Meta.DueDate != "" {
		fmt.Printf("  Due %s", doc.Meta.DueDate)
	}
	fmt.Println()

	fmt.Printf("\nFrom: %s\n", doc.Party.CompanyName)
	if doc.Party.CompanyAddress != "" {
		fmt.Printf("      %s\n", doc.Party.CompanyAddress)
	}
	fmt.Printf("To:   %s\n", doc.Party.ClientName)
	if doc.Party.ClientAddress != "" {
		fmt.Printf("      %s\n", doc.Party.ClientAddress)
	}
	if doc.Meta.ServiceType != "" {
		fmt.Printf("For:  %s", doc.Meta.ServiceType)
		if doc.Meta.Recurring {
			fmt.Printf(" (recurring)")
		}
		fmt.Println()
	}

	fmt.Println("\nItems:")
	for _, item := range doc.Items {
		fmt.Printf("  [%s] %-40s %8.2f x %12s = %12s\n",
			item.ID,
			item.Description,
			item.Quantity,
			money(item.UnitPrice),
			money(billing.LineAmount(item)))
	}

	totals := doc.Totals()
	fmt.Println()
	fmt.Printf("  %-22s %14s\n", "Subtotal", money(totals.Subtotal))
	if doc.Adjustments.DiscountAmount != 0 {
		fmt.Printf("  %-22s %14s\n", "Discount", "-"+money(doc.Adjustments.DiscountAmount))
		fmt.Printf("  %-22s %14s\n", "After discount", money(totals.AfterDiscount))
	}
	if doc.Adjustments.TaxEnabled {
		label := fmt.Sprintf("Tax (%g%%)", doc.Adjustments.TaxRatePercent)
		fmt.Printf("  %-22s %14s\n", label, money(totals.Tax))
	}
	fmt.Printf("  %-22s %14s\n", "Grand total", money(totals.GrandTotal))
	if doc.Adjustments.PreviousBalanceDue != 0 {
		fmt.Printf("  %-22s %14s\n", "Previous balance due", money(doc.Adjustments.PreviousBalanceDue))
	}
	if doc.Adjustments.AdvanceReceived != 0 {
		fmt.Printf("  %-22s %14s\n", "Advance received", "-"+money(doc.Adjustments.AdvanceReceived))
	}
	fmt.Printf("  %-22s %14s\n", "Balance due", money(totals.BalanceDue))

	if doc.Payment.Method.UsesBank() {
		fmt.Printf("\nBank: %s  A/C %s  %s\n",
			doc.Payment.BankName, doc.Payment.AccountNumber, doc.Payment.RoutingCode)
	}
	if doc.Payment.Method.UsesUPI() {
		fmt.Printf("UPI:  %s\n", doc.Payment.UPIHandle)
	}
	if doc.Payment.IncludeSignatoryBlock && doc.Payment.SignatoryName != "" {
		fmt.Printf("Signatory: %s\n", doc.Payment.SignatoryName)
	}

	if doc.Meta.Notes != "" {
		fmt.Printf("\nNotes:\n%s\n", doc.Meta.Notes)
	}

	if len(doc.Meta.Annexure.Rows) > 0 || doc.Meta.Annexure.Body != "" {
		fmt.Printf("\nAnnexure: %s\n", doc.Meta.Annexure.Title)
		for _, row := range doc.Meta.Annexure.Rows {
			fmt.Printf("  [%s] %-12s %-40s %s\n", row.ID, row.Date, row.Title, row.Status)
		}
		if doc.Meta.Annexure.Body != "" {
			fmt.Println(doc.Meta.Annexure.Body)
		}
	}
}
