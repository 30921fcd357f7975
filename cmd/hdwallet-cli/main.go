// hdwallet-cli is a command-line front end for generating mnemonics,
// stretching seeds and deriving hierarchical deterministic keys.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/tidewater-labs/hdwallet/config"
	"github.com/tidewater-labs/hdwallet/internal/log"
	"github.com/tidewater-labs/hdwallet/pkg/mnemonic"
	"github.com/tidewater-labs/hdwallet/pkg/words"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Default()
	configPath := ""

	// Scan for global flags before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--datadir" && len(args) > 1:
			cfg.DataDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			cfg.DataDir = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--config" && len(args) > 1:
			configPath = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--config="):
			configPath = args[0][len("--config="):]
			args = args[1:]
		case args[0] == "--language" && len(args) > 1:
			cfg.Language = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--language="):
			cfg.Language = args[0][len("--language="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.Log.Level = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.Log.Level = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--log-json":
			cfg.Log.JSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}
	if values, err := config.LoadFile(configPath); err != nil {
		fatal("load config: %v", err)
	} else if err := config.ApplyFileConfig(cfg, values); err != nil {
		fatal("apply config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		fatal("config: %v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	lang := words.Language(cfg.Language)
	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "mnemonic":
		cmdMnemonic(cmdArgs, lang)
	case "seed":
		cmdSeed(cmdArgs, lang)
	case "derive":
		cmdDerive(cmdArgs, lang)
	case "wallet":
		cmdWallet(cmdArgs, cfg.KeystoreDir(), lang)
	case "languages":
		cmdLanguages()
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

// cmdMnemonic handles "mnemonic new" and "mnemonic check".
func cmdMnemonic(args []string, lang words.Language) {
	if len(args) == 0 {
		fatal("mnemonic requires a subcommand: new, check")
	}
	switch args[0] {
	case "new":
		fs := flag.NewFlagSet("mnemonic new", flag.ExitOnError)
		wordCount := fs.Int("words", 24, "word count: 12, 15, 18, 21 or 24")
		fs.Parse(args[1:])

		t, err := mnemonic.TypeFromWordCount(*wordCount)
		if err != nil {
			fatal("%v", err)
		}
		m, err := mnemonic.New(t, lang)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(m.Phrase())

	case "check":
		phrase := strings.Join(args[1:], " ")
		if phrase == "" {
			fatal("usage: mnemonic check <phrase...>")
		}
		if err := mnemonic.Validate(phrase, lang); err != nil {
			fatal("%v", err)
		}
		fmt.Println("valid")

	default:
		fatal("unknown mnemonic subcommand: %s", args[0])
	}
}

// cmdSeed prints the 64-byte seed for a phrase.
func cmdSeed(args []string, lang words.Language) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	prompt := fs.Bool("passphrase", false, "prompt for a BIP-39 passphrase")
	fs.Parse(args)

	phrase := strings.Join(fs.Args(), " ")
	if phrase == "" {
		fatal("usage: seed [--passphrase] <phrase...>")
	}

	m, err := mnemonic.FromPhrase(phrase, lang)
	if err != nil {
		fatal("%v", err)
	}

	passphrase := ""
	if *prompt {
		p, err := readPassword("Passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		passphrase = string(p)
	}

	fmt.Println(m.Seed(passphrase))
}

// cmdDerive prints the key material at a path below a phrase's master node.
func cmdDerive(args []string, lang words.Language) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	pathStr := fs.String("path", "m/44'/60'/0'/0/0", "derivation path")
	prompt := fs.Bool("passphrase", false, "prompt for a BIP-39 passphrase")
	fs.Parse(args)

	phrase := strings.Join(fs.Args(), " ")
	if phrase == "" {
		fatal("usage: derive [--path m/...] [--passphrase] <phrase...>")
	}

	passphrase := ""
	if *prompt {
		p, err := readPassword("Passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		passphrase = string(p)
	}

	node, path, err := deriveNode(phrase, lang, passphrase, *pathStr)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("path:    %s\n", path)
	fmt.Printf("private: %s\n", hex.EncodeToString(node.PrivateKey().Serialize()))
	fmt.Printf("public:  %s\n", hex.EncodeToString(node.PublicKey().SerializeCompressed()))
	fmt.Printf("address: %s\n", node.PublicKey().Address())
}

// cmdLanguages lists the registered word-table languages.
func cmdLanguages() {
	for _, lang := range words.Languages() {
		fmt.Println(lang)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hdwallet-cli [global flags] <command> [flags]

Global flags:
  --datadir <path>     Data directory (default: ~/.hdwallet)
  --config <path>      Config file (default: <datadir>/hdwallet.conf)
  --language <lang>    Word-table language (default: english)
  --log-level <lvl>    debug, info, warn or error (default: info)
  --log-json           JSON log output

Commands:
  mnemonic new [--words N]        Generate a mnemonic (12/15/18/21/24 words)
  mnemonic check <phrase...>      Validate a mnemonic
  seed [--passphrase] <phrase...> Print the 64-byte seed for a phrase
  derive [--path m/...] [--passphrase] <phrase...>
                                  Derive a key and address from a phrase
  wallet create <name>            Create an encrypted wallet from a phrase
  wallet list                     List wallets in the keystore
  wallet accounts <name>          List a wallet's derived accounts
  wallet derive <name> [--path m/...] [--label s]
                                  Derive and record an account
  languages                       List registered word-table languages
`)
}

// ── Password helper ─────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
