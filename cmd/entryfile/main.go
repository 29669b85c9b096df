package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fdokit/entryfile/pkgs/entry"
)

// Exit code constants for scripting against the check subcommand.
const (
	ExitSuccess    = 0
	ExitUsageError = 1
	ExitIOError    = 2
	ExitParseError = 3
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitUsageError)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "entryfile",
		Short:         "Inspect FreeDesktop entry files (.desktop, index.theme, systemd units)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGetCmd(), newSectionsCmd(), newAttrsCmd(), newCheckCmd())
	return root
}

func newGetCmd() *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "get <file> <section> <key>",
		Short: "Print the value of one attribute",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ent, err := entry.ParseFile(args[0])
			if err != nil {
				return err
			}
			sec, ok := ent.Section(args[1])
			if !ok {
				return fmt.Errorf("no section %q in %s", args[1], args[0])
			}
			var value string
			if locale != "" {
				value, ok = sec.LocalizedAttr(args[2], locale)
			} else {
				value, ok = sec.Attr(args[2])
			}
			if !ok {
				return fmt.Errorf("no attribute %q in section %q", args[2], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "Resolve the key with locale fallback (e.g. en_US)")
	return cmd
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections <file>",
		Short: "List section names in source order, duplicates included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ent, err := entry.ParseFile(args[0])
			if err != nil {
				return err
			}
			for sec := range ent.Sections() {
				fmt.Fprintln(cmd.OutOrStdout(), sec.Name())
			}
			return nil
		},
	}
}

func newAttrsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attrs <file> <section>",
		Short: "List a section's attributes in source order, duplicates included",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ent, err := entry.ParseFile(args[0])
			if err != nil {
				return err
			}
			sec, ok := ent.Section(args[1])
			if !ok {
				return fmt.Errorf("no section %q in %s", args[1], args[0])
			}
			for attr := range sec.Attributes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", attr.Key, attr.Value)
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a file and report the first error, if any",
		Long: "Parse a file and report the first error, if any.\n\n" +
			"Exit codes: 0 on success, 2 when the file cannot be read, 3 on a parse error.",
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(ExitIOError)
			}
			ent, err := entry.Parse(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
				os.Exit(ExitParseError)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d sections)\n", args[0], ent.Len())
		},
	}
}
