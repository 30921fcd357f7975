package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tidewater-labs/hdwallet/internal/wallet"
	"github.com/tidewater-labs/hdwallet/pkg/hdkey"
	"github.com/tidewater-labs/hdwallet/pkg/hdpath"
	"github.com/tidewater-labs/hdwallet/pkg/mnemonic"
	"github.com/tidewater-labs/hdwallet/pkg/words"
)

// deriveNode parses and validates a phrase, stretches the seed and walks
// the path.
func deriveNode(phrase string, lang words.Language, passphrase, pathStr string) (*hdkey.ExtendedKey, hdpath.Path, error) {
	m, err := mnemonic.FromPhrase(phrase, lang)
	if err != nil {
		return nil, nil, err
	}
	path, err := hdpath.Parse(pathStr)
	if err != nil {
		return nil, nil, err
	}
	master, err := hdkey.NewMaster(m.Seed(passphrase).Bytes())
	if err != nil {
		return nil, nil, err
	}
	node, err := master.DerivePath(path)
	if err != nil {
		return nil, nil, err
	}
	return node, path, nil
}

// cmdWallet handles the keystore-backed wallet subcommands.
func cmdWallet(args []string, ksDir string, lang words.Language) {
	if len(args) == 0 {
		fatal("wallet requires a subcommand: create, list, accounts, derive")
	}

	ks, err := wallet.NewKeystore(ksDir)
	if err != nil {
		fatal("open keystore: %v", err)
	}

	switch args[0] {
	case "create":
		walletCreate(ks, args[1:], lang)
	case "list":
		names, err := ks.List()
		if err != nil {
			fatal("%v", err)
		}
		for _, name := range names {
			fp, err := ks.Fingerprint(name)
			if err != nil {
				fatal("%v", err)
			}
			fmt.Printf("%s\t%s\n", name, fp[:8])
		}
	case "accounts":
		if len(args) < 2 {
			fatal("usage: wallet accounts <name>")
		}
		accounts, err := ks.Accounts(args[1])
		if err != nil {
			fatal("%v", err)
		}
		for _, acct := range accounts {
			label := acct.Label
			if label == "" {
				label = "-"
			}
			fmt.Printf("%s\t%s\t%s\n", acct.Path, acct.Address, label)
		}
	case "derive":
		walletDerive(ks, args[1:])
	default:
		fatal("unknown wallet subcommand: %s", args[0])
	}
}

// walletCreate reads a phrase from stdin and writes an encrypted wallet.
func walletCreate(ks *wallet.Keystore, args []string, lang words.Language) {
	fs := flag.NewFlagSet("wallet create", flag.ExitOnError)
	prompt := fs.Bool("passphrase", false, "prompt for a BIP-39 passphrase")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fatal("usage: wallet create [--passphrase] <name>")
	}
	name := fs.Arg(0)

	fmt.Fprint(os.Stderr, "Mnemonic phrase: ")
	reader := bufio.NewReader(os.Stdin)
	phrase, err := reader.ReadString('\n')
	if err != nil {
		fatal("read phrase: %v", err)
	}
	phrase = strings.TrimSpace(phrase)

	passphrase := ""
	if *prompt {
		p, err := readPassword("BIP-39 passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		passphrase = string(p)
	}

	w, err := wallet.FromMnemonic(name, phrase, lang, passphrase)
	if err != nil {
		fatal("%v", err)
	}

	password, err := readPassword("Wallet password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	if string(password) != string(confirm) {
		fatal("passwords do not match")
	}

	m, err := mnemonic.FromPhrase(phrase, lang)
	if err != nil {
		fatal("%v", err)
	}
	seed := m.Seed(passphrase)
	if err := ks.Create(name, seed.Bytes(), password, w.Fingerprint(), wallet.DefaultParams()); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("wallet %q created (id %s)\n", name, w.Fingerprint().Short())
}

// walletDerive opens a wallet and records a derived account.
func walletDerive(ks *wallet.Keystore, args []string) {
	fs := flag.NewFlagSet("wallet derive", flag.ExitOnError)
	pathStr := fs.String("path", "", "derivation path (default: next external account)")
	label := fs.String("label", "", "account label")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fatal("usage: wallet derive <name> [--path m/...] [--label s]")
	}
	name := fs.Arg(0)

	password, err := readPassword("Wallet password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	seed, err := ks.Load(name, password)
	if err != nil {
		fatal("%v", err)
	}

	w, err := wallet.FromSeed(name, seed)
	if err != nil {
		fatal("%v", err)
	}

	path := *pathStr
	if path == "" {
		accounts, err := ks.Accounts(name)
		if err != nil {
			fatal("%v", err)
		}
		path = wallet.DefaultAccountPath(uint32(len(accounts))).String()
	}

	acct, err := w.DeriveAccount(path, *label)
	if err != nil {
		fatal("%v", err)
	}
	if err := ks.AddAccount(name, acct); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("%s\t%s\n", acct.Path, acct.Address)
}
