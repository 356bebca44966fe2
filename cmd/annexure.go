package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var annexureCmd = &cobra.Command{
	Use:   "annexure",
	Short: "Manage the annexure table of the current document",
	Long: `The annexure is an optional dated activity table printed after the
main document, typically a delivery or work log. Its title and free
text body are set with "indiebyll set annexure.title" and
"indiebyll set annexure.body".`,
}

var annexureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an annexure row",
	Long: `Append a row dated today with placeholder content, and print its
id. Fill it in with "annexure update".`,
	Args: cobra.NoArgs,
	RunE: runAnnexureAdd,
}

var annexureUpdateCmd = &cobra.Command{
	Use:     "update [row-id]",
	Short:   "Update an annexure row",
	Example: `  indiebyll annexure update 01JK... --date 2026-08-14 --title "Final renders delivered" --status Completed`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAnnexureUpdate,
}

var annexureRemoveCmd = &cobra.Command{
	Use:   "remove [row-id]",
	Short: "Remove an annexure row",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnnexureRemove,
}

func init() {
	rootCmd.AddCommand(annexureCmd)
	annexureCmd.AddCommand(annexureAddCmd)
	annexureCmd.AddCommand(annexureUpdateCmd)
	annexureCmd.AddCommand(annexureRemoveCmd)

	annexureUpdateCmd.Flags().String("date", "", "Row date (YYYY-MM-DD)")
	annexureUpdateCmd.Flags().String("title", "", "Row title")
	annexureUpdateCmd.Flags().String("status", "", "Row status")
}

func runAnnexureAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	id := a.Doc().AddAnnexureRow(time.Now())
	a.Persist()

	fmt.Printf("Added annexure row %s\n", id)
	return nil
}

func runAnnexureUpdate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	doc := a.Doc()
	id := args[0]

	// Read current values so unset flags leave their field alone.
	date, title, status := "", "", ""
	for _, row := range doc.Meta.Annexure.Rows {
		if row.ID == id {
			date, title, status = row.Date, row.Title, row.Status
		}
	}
	if cmd.Flags().Changed("date") {
		date, _ = cmd.Flags().GetString("date")
	}
	if cmd.Flags().Changed("title") {
		title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("status") {
		status, _ = cmd.Flags().GetString("status")
	}

	doc.SetAnnexureRow(id, date, title, status)
	a.Persist()

	fmt.Printf("Updated annexure row %s\n", id)
	return nil
}

func runAnnexureRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	a.Doc().RemoveAnnexureRow(args[0])
	a.Persist()

	fmt.Printf("Removed annexure row %s\n", args[0])
	return nil
}
