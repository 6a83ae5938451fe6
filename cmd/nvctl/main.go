// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

// nvctl is the scriptable companion to the interactive client. It performs a
// single vault operation per invocation, reads the master password from the
// NEOVAULT_PASSWORD environment variable or the terminal, and prints results
// to stdout.
//
// Usage:
//
//	nvctl [flags] <command> [args]
//
// Commands:
//
//	init                create an empty vault at the configured path
//	add <name>          add an entry (see -content, -file, -meta)
//	get <name>          print the entry content
//	rm <name>           remove an entry
//	list                print all entry names
//	search <query>      print names of matching entries
//	info                print vault metadata
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/neovault/neovault/internal/config"
	"github.com/neovault/neovault/internal/crypto"
	"github.com/neovault/neovault/internal/logger"
	"github.com/neovault/neovault/internal/store"
	"github.com/neovault/neovault/internal/vault"
	"github.com/neovault/neovault/models"
)

// passwordEnvVar avoids interactive prompts in scripts.
const passwordEnvVar = "NEOVAULT_PASSWORD"

func main() {
	// Command flags must be registered before config.GetConfig, which owns
	// the single flag.Parse call.
	var (
		content  = flag.String("content", "", "inline content for `add`")
		filePath = flag.String("file", "", "file path for `add`")
		meta     = flag.String("meta", "", "metadata for `add`, \"key=value, key2=value2\"")
		asJSON   = flag.Bool("json", false, "print entries as JSON")
		verbose  = flag.Bool("v", false, "log operations to stderr")
	)

	cfg, err := config.GetConfig()
	if err != nil {
		fatalf("config: %v", err)
	}

	log := logger.Nop()
	if *verbose {
		log = logger.NewLogger("nvctl")
		logger.SetGlobalLevel(cfg.Logging.Level)
	}

	keys := crypto.NewKeyDeriverWithIterations(cfg.Crypto.KDFIterations)
	v := vault.New(keys, crypto.NewCipher(), store.NewVaultFileStorage(log), log)

	command := flag.Arg(0)
	if command == "" {
		fatalf("missing command, see `nvctl -h`")
	}
	if cfg.Vault.Path == "" {
		fatalf("vault path is required (-vault flag or NEOVAULT_VAULT_PATH)")
	}

	if err = run(v, cfg, command, runOptions{
		content:  *content,
		filePath: *filePath,
		meta:     *meta,
		asJSON:   *asJSON,
	}); err != nil {
		fatalf("%s: %v", command, err)
	}
}

type runOptions struct {
	content  string
	filePath string
	meta     string
	asJSON   bool
}

func run(v *vault.Vault, cfg *config.StructuredConfig, command string, opts runOptions) error {
	switch command {
	case "init":
		return cmdInit(v, cfg)
	case "add":
		return cmdAdd(v, cfg, flag.Arg(1), opts)
	case "get":
		return cmdGet(v, cfg, flag.Arg(1), opts.asJSON)
	case "rm":
		return cmdRemove(v, cfg, flag.Arg(1))
	case "list":
		return cmdList(v, cfg)
	case "search":
		return cmdSearch(v, cfg, flag.Arg(1))
	case "info":
		return cmdInfo(v, cfg)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdInit(v *vault.Vault, cfg *config.StructuredConfig) error {
	if _, err := os.Stat(cfg.Vault.Path); err == nil {
		return fmt.Errorf("vault file %s already exists", cfg.Vault.Path)
	}

	password, err := readPassword("New master password: ")
	if err != nil {
		return err
	}
	if cfg.Vault.Description != "" {
		v.SetDescription(cfg.Vault.Description)
	}

	if err = v.Save(password, cfg.Vault.Path); err != nil {
		return err
	}
	fmt.Printf("created empty vault at %s\n", cfg.Vault.Path)
	return nil
}

func cmdAdd(v *vault.Vault, cfg *config.StructuredConfig, name string, opts runOptions) error {
	if name == "" {
		return errors.New("usage: nvctl add <name>")
	}

	var contentPtr, filePathPtr *string
	if opts.content != "" {
		contentPtr = &opts.content
	}
	if opts.filePath != "" {
		filePathPtr = &opts.filePath
	}

	entry, err := models.NewEntry(name, filePathPtr, contentPtr, parseMeta(opts.meta))
	if err != nil {
		return err
	}

	password, err := unlock(v, cfg)
	if err != nil {
		return err
	}
	if !v.Add(entry) {
		return fmt.Errorf("entry %q already exists", name)
	}
	return v.Save(password, cfg.Vault.Path)
}

func cmdGet(v *vault.Vault, cfg *config.StructuredConfig, name string, asJSON bool) error {
	if name == "" {
		return errors.New("usage: nvctl get <name>")
	}
	if _, err := unlock(v, cfg); err != nil {
		return err
	}

	entry := v.Get(name)
	if entry == nil {
		return fmt.Errorf("entry %q not found", name)
	}

	if asJSON {
		return printJSON(entry)
	}
	if entry.Content != nil {
		fmt.Println(*entry.Content)
		return nil
	}
	if entry.FilePath != nil {
		fmt.Println(*entry.FilePath)
		return nil
	}
	return nil
}

func cmdRemove(v *vault.Vault, cfg *config.StructuredConfig, name string) error {
	if name == "" {
		return errors.New("usage: nvctl rm <name>")
	}

	password, err := unlock(v, cfg)
	if err != nil {
		return err
	}
	if !v.Remove(name) {
		return fmt.Errorf("entry %q not found", name)
	}
	return v.Save(password, cfg.Vault.Path)
}

func cmdList(v *vault.Vault, cfg *config.StructuredConfig) error {
	if _, err := unlock(v, cfg); err != nil {
		return err
	}
	for _, name := range v.List() {
		fmt.Println(name)
	}
	return nil
}

func cmdSearch(v *vault.Vault, cfg *config.StructuredConfig, query string) error {
	if query == "" {
		return errors.New("usage: nvctl search <query>")
	}
	if _, err := unlock(v, cfg); err != nil {
		return err
	}
	for _, entry := range v.Search(query) {
		fmt.Println(entry.Name)
	}
	return nil
}

func cmdInfo(v *vault.Vault, cfg *config.StructuredConfig) error {
	if _, err := unlock(v, cfg); err != nil {
		return err
	}
	return printJSON(v.Info())
}

// unlock loads the vault from the configured path and returns the password
// used, so mutating commands can seal the vault again.
func unlock(v *vault.Vault, cfg *config.StructuredConfig) (string, error) {
	password, err := readPassword("Master password: ")
	if err != nil {
		return "", err
	}
	if err = v.Load(cfg.Vault.Path, password); err != nil {
		if errors.Is(err, crypto.ErrAuthenticationFailed) {
			return "", errors.New("wrong password, or the vault file was tampered with")
		}
		return "", err
	}
	return password, nil
}

func readPassword(prompt string) (string, error) {
	if password := os.Getenv(passwordEnvVar); password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(raw) == 0 {
		return "", errors.New("empty password")
	}
	return string(raw), nil
}

// parseMeta turns "key=value, key2=value2" into entry metadata. Pairs without
// an "=" are ignored.
func parseMeta(raw string) map[string]models.Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	metadata := make(map[string]models.Value)
	for _, pair := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			continue
		}
		metadata[key] = models.String(strings.TrimSpace(value))
	}
	if len(metadata) == 0 {
		return nil
	}
	return metadata
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
