package cli

import (
	"encoding/json"
	"fmt"

	"github.com/grendel/hdvault/pkg/ui"
	"github.com/grendel/hdvault/pkg/wallet"
)

// DisplayHelp shows usage information for the application
func DisplayHelp(cs *ui.ColorScheme) {
	ui.PrintHeader(cs, "hdvault - Stacks & Bitcoin HD Wallet Toolkit")

	ui.PrintSectionHeader(cs, "USAGE:")
	cs.Normal.Println("  hdvault [options]")
	fmt.Println()

	ui.PrintSectionHeader(cs, "OPTIONS:")
	ui.PrintOption(cs, "-new          ", "Generate a new 24-word wallet (index 0, mainnet)")
	ui.PrintOption(cs, "-restore      ", "Rebuild a wallet from an existing seed phrase")
	ui.PrintOption(cs, "-account      ", "Bitcoin account to derive (default: 0)")
	ui.PrintOption(cs, "-index        ", "Address index to derive (default: 0)")
	ui.PrintOption(cs, "-network      ", "Network: mainnet or testnet (default: mainnet)")
	ui.PrintOption(cs, "-validate-btc ", "Validate a Bitcoin address for the chosen network")
	ui.PrintOption(cs, "-validate-stx ", "Validate a Stacks address for the chosen network")
	ui.PrintOption(cs, "-json         ", "Emit the wallet record as JSON")
	ui.PrintOption(cs, "-v            ", "Verbose (debug) logging")
	ui.PrintOption(cs, "-help         ", "Display help information")
	fmt.Println()

	ui.PrintSectionHeader(cs, "EXAMPLES:")
	ui.PrintExample(cs, "hdvault -new                          ", "Generate a wallet")
	ui.PrintExample(cs, "hdvault -new -json                    ", "Generate and print JSON")
	ui.PrintExample(cs, "hdvault -restore \"word1 ... word24\"   ", "Restore from a seed phrase")
	ui.PrintExample(cs, "hdvault -restore \"...\" -index 3       ", "Derive address index 3")
	ui.PrintExample(cs, "hdvault -restore \"...\" -account 1     ", "Derive Bitcoin account 1")
	ui.PrintExample(cs, "hdvault -restore \"...\" -network testnet", "Derive testnet addresses")
	ui.PrintExample(cs, "hdvault -validate-stx SP000...        ", "Check a Stacks address")
	fmt.Println()

	ui.PrintSectionHeader(cs, "DESCRIPTION:")
	cs.Normal.Println("")
	cs.Normal.Println("  hdvault derives deterministic wallet records from a BIP-39 seed phrase:")
	cs.Normal.Println("")
	cs.Normal.Println("  • Stacks account address and public key (c32 encoded)")
	cs.Normal.Println("  • Bitcoin wrapped-segwit (BIP-49) address and public key")
	cs.Normal.Println("  • Bitcoin taproot / ordinals (BIP-86) address and internal key")
	cs.Normal.Println("")
	cs.Normal.Println("  The same seed phrase, index and network always reproduce the same record.")
	cs.Normal.Println("")
}

// PrintWallet renders one wallet record, either as JSON or as aligned
// colored fields. The seed phrase is printed as a secret.
func PrintWallet(cs *ui.ColorScheme, w *wallet.Wallet, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(w, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	ui.PrintSectionHeader(cs, "Addresses")
	ui.PrintField(cs, "Stacks", w.StxAddress)
	ui.PrintField(cs, "Bitcoin", w.BtcAddress)
	ui.PrintField(cs, "Ordinals", w.OrdinalsAddress)
	fmt.Println()

	ui.PrintSectionHeader(cs, "Public keys")
	ui.PrintField(cs, "Master", w.MasterPubKey)
	ui.PrintField(cs, "Stacks", w.StxPublicKey)
	ui.PrintField(cs, "Bitcoin", w.BtcPublicKey)
	ui.PrintField(cs, "Ordinals", w.OrdinalsPublicKey)
	fmt.Println()

	ui.PrintSectionHeader(cs, "Seed phrase")
	ui.PrintSecretField(cs, "Mnemonic", w.SeedPhrase)
	fmt.Println()
	return nil
}
