package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"indiebyll/internal/logger"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients and their document history",
	Long: `Clients own the saved document history. Every saved invoice or
quotation belongs to exactly one client, and the editor is always
working on behalf of the currently selected client.`,
}

var clientAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new client and select it",
	Long: `Create a client with the given display name, make it the current
client and reset the editor to a fresh document addressed to it. The
company details, branding and pricing tiers in the editor carry over;
everything client-specific starts from defaults.`,
	Example: `  # Create a client and start editing a document for them
  indiebyll client add "Acme Exports"`,
	Args: cobra.ExactArgs(1),
	RunE: runClientAdd,
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients in creation order",
	Args:  cobra.NoArgs,
	RunE:  runClientList,
}

var clientUseCmd = &cobra.Command{
	Use:   "use [client-id]",
	Short: "Select a client and load their latest document",
	Long: `Make the given client current. The editor loads the client's most
recently saved document; a client with no history gets a fresh default
document with the next free number instead.`,
	Example: `  indiebyll client use 01JK3YV7N9M2Q8R4T6W0X5Z1AB`,
	Args:    cobra.ExactArgs(1),
	RunE:    runClientUse,
}

var clientHistoryCmd = &cobra.Command{
	Use:   "history [client-id]",
	Short: "List a client's saved documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientHistory,
}

func init() {
	rootCmd.AddCommand(clientCmd)
	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientUseCmd)
	clientCmd.AddCommand(clientHistoryCmd)
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("client")

	a, err := openApp()
	if err != nil {
		return err
	}

	id, err := a.AddClient(args[0])
	if err != nil {
		return fmt.Errorf("failed to add client: %w", err)
	}

	log.Info().
		Str("client_id", id).
		Str("name", args[0]).
		Msg("Client created")

	fmt.Printf("Created client %q (%s)\n", strings.TrimSpace(args[0]), id)
	fmt.Printf("Editing %s\n", a.Doc().Meta.DocumentNumber)
	return nil
}

func runClientList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	clients := a.Clients()
	if len(clients) == 0 {
		fmt.Println("No clients yet. Create one with: indiebyll client add \"Name\"")
		return nil
	}

	current := a.CurrentClientID()
	for _, c := range clients {
		marker := " "
		if c.ID == current {
			marker = "*"
		}
		fmt.Printf("%s %s  %s\n", marker, c.ID, c.Name)
	}
	return nil
}

func runClientUse(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	if err := a.SelectClient(args[0]); err != nil {
		return fmt.Errorf("failed to select client: %w", err)
	}

	fmt.Printf("Now editing for %q: %s\n", a.CurrentClientName(), a.Doc().Meta.DocumentNumber)
	return nil
}

func runClientHistory(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	history, err := a.ClientHistory(args[0])
	if err != nil {
		return fmt.Errorf("failed to read client history: %w", err)
	}
	if len(history) == 0 {
		fmt.Println("No saved documents for this client.")
		return nil
	}

	for _, snap := range history {
		fmt.Printf("%s  %-9s  issued %s  saved %s\n",
			snap.DocumentNumber,
			snap.Meta.Kind,
			snap.Meta.IssueDate,
			snap.SavedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
