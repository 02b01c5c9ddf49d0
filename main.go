package main

import (
	"flag"
	"os"

	"github.com/grendel/hdvault/internal/cli"
	"github.com/grendel/hdvault/internal/log"
	"github.com/grendel/hdvault/pkg/common"
	"github.com/grendel/hdvault/pkg/crypto"
	"github.com/grendel/hdvault/pkg/ui"
	"github.com/grendel/hdvault/pkg/wallet"
)

func main() {
	// Define command line flags
	newWallet := flag.Bool("new", false, "Generate a new wallet")
	restore := flag.String("restore", "", "Seed phrase to restore a wallet from")
	account := flag.Uint("account", 0, "Bitcoin account to derive")
	index := flag.Uint("index", 0, "Address index to derive")
	networkName := flag.String("network", "mainnet", "Network: mainnet or testnet")
	validateBtc := flag.String("validate-btc", "", "Bitcoin address to validate")
	validateStx := flag.String("validate-stx", "", "Stacks address to validate")
	asJSON := flag.Bool("json", false, "Emit the wallet record as JSON")
	verbose := flag.Bool("v", false, "Verbose (debug) logging")
	help := flag.Bool("help", false, "Display help information")

	// Parse the flags
	flag.Parse()

	if *verbose {
		log.Init("debug")
	}

	// Initialize color scheme for consistent formatting
	cs := ui.DefaultColorScheme()

	// Check if no arguments or help flag is provided
	if len(os.Args) == 1 || *help {
		cli.DisplayHelp(cs)
		return
	}

	network, err := common.ParseNetwork(*networkName)
	if err != nil {
		log.Logger.Fatal().Err(err).Str("network", *networkName).Msg("bad network flag")
	}
	if *account > wallet.MaxHardenedValue {
		log.Logger.Fatal().Uint("account", *account).Msg("account out of range")
	}
	if *index > wallet.MaxHardenedValue {
		log.Logger.Fatal().Uint("index", *index).Msg("index out of range")
	}

	switch {
	case *validateBtc != "":
		valid := crypto.ValidateBtcAddress(*validateBtc, network)
		ui.PrintValidationResult(cs, *validateBtc, valid)
		if !valid {
			os.Exit(1)
		}

	case *validateStx != "":
		valid := crypto.ValidateStxAddress(*validateStx, network)
		ui.PrintValidationResult(cs, *validateStx, valid)
		if !valid {
			os.Exit(1)
		}

	case *newWallet:
		ui.PrintHeader(cs, "hdvault - Stacks & Bitcoin HD Wallet Toolkit")
		log.Logger.Debug().Msg("generating new wallet at index 0 on mainnet")

		w, err := wallet.New()
		if err != nil {
			log.Logger.Fatal().Err(err).Msg("wallet generation failed")
		}
		if err := cli.PrintWallet(cs, w, *asJSON); err != nil {
			log.Logger.Fatal().Err(err).Msg("render wallet")
		}
		if !*asJSON {
			ui.PrintFooter(cs, "Write the seed phrase down. It is the only backup of this wallet.")
		}

	case *restore != "":
		ui.PrintHeader(cs, "hdvault - Stacks & Bitcoin HD Wallet Toolkit")
		log.Logger.Debug().
			Uint("account", *account).
			Uint("index", *index).
			Str("network", network.String()).
			Msg("restoring wallet from seed phrase")

		w, err := wallet.FromSeedPhrase(wallet.FromSeedPhraseOpts{
			Mnemonic: *restore,
			Account:  uint32(*account),
			Index:    uint32(*index),
			Network:  network,
		})
		if err != nil {
			log.Logger.Fatal().Err(err).Msg("wallet restore failed")
		}
		if err := cli.PrintWallet(cs, w, *asJSON); err != nil {
			log.Logger.Fatal().Err(err).Msg("render wallet")
		}

	default:
		cli.DisplayHelp(cs)
	}
}
