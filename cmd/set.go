package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"indiebyll/internal/document"
	"indiebyll/pkg/models"
)

var setCmd = &cobra.Command{
	Use:   "set [field] [value]",
	Short: "Set a single field of the current document",
	Long: `Set exactly one field of the editing buffer. Every field is
independent: a write replaces that field and touches nothing else.
Totals are never stored, so they are simply correct the next time you
run "show".

Run "indiebyll set" with no arguments to list the available fields.`,
	Example: `  indiebyll set client.address "12 MG Road, Bengaluru"
  indiebyll set discount 500
  indiebyll set tax.enabled false
  indiebyll set payment.method upi
  indiebyll set due-date 2026-09-15`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

// fieldSetter binds a field name to a typed write on the editing
// buffer.
type fieldSetter struct {
	kind  string // text, number, bool
	apply func(doc *document.State, raw string) error
}

func textField(set func(*document.State, string)) fieldSetter {
	return fieldSetter{kind: "text", apply: func(doc *document.State, raw string) error {
		set(doc, raw)
		return nil
	}}
}

func numberField(set func(*document.State, float64)) fieldSetter {
	return fieldSetter{kind: "number", apply: func(doc *document.State, raw string) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("expected a number, got %q", raw)
		}
		set(doc, v)
		return nil
	}}
}

func boolField(set func(*document.State, bool)) fieldSetter {
	return fieldSetter{kind: "bool", apply: func(doc *document.State, raw string) error {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", raw)
		}
		set(doc, v)
		return nil
	}}
}

var documentFields = map[string]fieldSetter{
	"company.name":    textField((*document.State).SetCompanyName),
	"company.address": textField((*document.State).SetCompanyAddress),
	"company.email":   textField((*document.State).SetCompanyEmail),
	"company.phone":   textField((*document.State).SetCompanyPhone),
	"brand.color":     textField((*document.State).SetBrandColor),
	"client.name":     textField((*document.State).SetClientName),
	"client.address":  textField((*document.State).SetClientAddress),

	"number":         textField((*document.State).SetDocumentNumber),
	"issue-date":     textField((*document.State).SetIssueDate),
	"due-date":       textField((*document.State).SetDueDate),
	"service":        textField((*document.State).SetServiceType),
	"recurring":      boolField((*document.State).SetRecurring),
	"notes":          textField((*document.State).SetNotes),
	"annexure.title": textField((*document.State).SetAnnexureTitle),
	"annexure.body":  textField((*document.State).SetAnnexureBody),

	"discount":     numberField((*document.State).SetDiscountAmount),
	"tax.enabled":  boolField((*document.State).SetTaxEnabled),
	"tax.rate":     numberField((*document.State).SetTaxRatePercent),
	"previous-due": numberField((*document.State).SetPreviousBalanceDue),
	"advance":      numberField((*document.State).SetAdvanceReceived),

	"payment.method": {kind: "choice", apply: func(doc *document.State, raw string) error {
		return doc.SetPaymentMethod(models.PaymentMethod(raw))
	}},
	"bank.name":      textField((*document.State).SetBankName),
	"bank.account":   textField((*document.State).SetAccountNumber),
	"bank.ifsc":      textField((*document.State).SetRoutingCode),
	"upi":            textField((*document.State).SetUPIHandle),
	"signatory.name": textField((*document.State).SetSignatoryName),
	"signatory.show": boolField((*document.State).SetIncludeSignatoryBlock),

	"pricing.tiered": boolField((*document.State).SetUseTieredPricing),
	"currency":       textField((*document.State).SetCurrencyCode),
}

func runSet(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printFieldList()
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: indiebyll set [field] [value]")
	}

	name, raw := args[0], args[1]
	setter, ok := documentFields[name]
	if !ok {
		return fmt.Errorf("unknown field %q; run \"indiebyll set\" for the list", name)
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	if err := setter.apply(a.Doc(), raw); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	a.Persist()

	fmt.Printf("Set %s\n", name)
	return nil
}

func printFieldList() {
	names := make([]string, 0, len(documentFields))
	for name := range documentFields {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Available fields:")
	for _, name := range names {
		fmt.Printf("  %-16s (%s)\n", name, documentFields[name].kind)
	}
}
