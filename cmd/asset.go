package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"indiebyll/internal/app"
	"indiebyll/internal/logger"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage the logo, payment QR code and signature images",
	Long: `Three image slots decorate the printed page: the company logo, a
payment QR code and a signature. Images are stored inside the data
file itself (base64), so a single file still carries everything.
Images over 2MB are rejected.`,
}

var assetSetCmd = &cobra.Command{
	Use:   "set [logo|qr|signature] [image-file]",
	Short: "Load an image file into a slot",
	Example: `  indiebyll asset set logo ./branding/logo.png
  indiebyll asset set qr ./upi-qr.png`,
	Args: cobra.ExactArgs(2),
	RunE: runAssetSet,
}

var assetRemoveCmd = &cobra.Command{
	Use:   "remove [logo|qr|signature]",
	Short: "Clear a slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetRemove,
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which slots are filled",
	Args:  cobra.NoArgs,
	RunE:  runAssetList,
}

func init() {
	rootCmd.AddCommand(assetCmd)
	assetCmd.AddCommand(assetSetCmd)
	assetCmd.AddCommand(assetRemoveCmd)
	assetCmd.AddCommand(assetListCmd)
}

func parseAssetSlot(raw string) (app.AssetSlot, error) {
	switch raw {
	case "logo":
		return app.SlotLogo, nil
	case "qr":
		return app.SlotQRCode, nil
	case "signature":
		return app.SlotSignature, nil
	}
	return "", fmt.Errorf("unknown asset slot %q (want logo, qr or signature)", raw)
}

func runAssetSet(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("asset")

	slot, err := parseAssetSlot(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	if err := a.SetAsset(slot, args[1]); err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	asset := a.Asset(slot)
	log.Info().
		Str("slot", string(slot)).
		Str("mime", asset.MIME).
		Int("bytes", len(asset.Data)).
		Msg("Asset stored")

	fmt.Printf("Stored %s (%s, %d bytes)\n", slot, asset.MIME, len(asset.Data))
	return nil
}

func runAssetRemove(cmd *cobra.Command, args []string) error {
	slot, err := parseAssetSlot(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	a.RemoveAsset(slot)
	fmt.Printf("Cleared %s\n", slot)
	return nil
}

func runAssetList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	for _, slot := range []app.AssetSlot{app.SlotLogo, app.SlotQRCode, app.SlotSignature} {
		asset := a.Asset(slot)
		if asset == nil {
			fmt.Printf("  %-9s (empty)\n", slot)
			continue
		}
		fmt.Printf("  %-9s %s, %d bytes\n", slot, asset.MIME, len(asset.Data))
	}
	return nil
}
