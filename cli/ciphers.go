package cli

import (
	"fmt"

	"classical-ciphers-backend/crypto"

	"github.com/spf13/cobra"
)

func newCaesarCmd() *cobra.Command {
	var shift int
	var decrypt bool

	cmd := &cobra.Command{
		Use:   "caesar [text...]",
		Short: "Shift every letter by a fixed distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("caesar", "shift", shift, "decrypt", decrypt, "runes", len([]rune(text)))
			return printResult(cmd, crypto.Caesar(text, shift, !decrypt))
		},
	}
	cmd.Flags().IntVarP(&shift, "shift", "s", 0, "number of positions to shift")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	return cmd
}

func newVigenereCmd() *cobra.Command {
	var key string
	var decrypt bool

	cmd := &cobra.Command{
		Use:   "vigenere [text...]",
		Short: "Polyalphabetic substitution with a repeating letter key",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("vigenere", "decrypt", decrypt, "runes", len([]rune(text)))
			result, err := crypto.VigenereTransform(text, key, !decrypt)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "key word (letters only are used)")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	return cmd
}

func newColumnarCmd() *cobra.Command {
	var key string
	var decrypt bool

	cmd := &cobra.Command{
		Use:   "columnar [text...]",
		Short: "Columnar transposition with a numeric column key such as 3,1,4,2",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("columnar", "key", key, "decrypt", decrypt, "runes", len([]rune(text)))
			result, err := crypto.ColumnarTransform(text, key, !decrypt)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "comma-separated column order")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	return cmd
}

func newAtbashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "atbash [text...]",
		Short: "Mirror the alphabet (A<->Z); applying it twice restores the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			return printResult(cmd, crypto.Atbash(text))
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [name]",
		Short: "Describe the available ciphers, or only the named one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := crypto.Catalogue()
			if len(args) == 1 {
				info, err := crypto.Lookup(args[0])
				if err != nil {
					return err
				}
				list = []crypto.Info{info}
			}
			w := cmd.OutOrStdout()
			for _, info := range list {
				fmt.Fprintf(w, "%-9s %s\n", info.Name, info.Title)
				fmt.Fprintf(w, "          formula:  %s\n", info.Formula)
				fmt.Fprintf(w, "          key:      %s\n", info.Key)
				fmt.Fprintf(w, "          security: %s\n", info.Security)
				fmt.Fprintf(w, "          history:  %s\n", info.History)
			}
			return nil
		},
	}
}

func printResult(cmd *cobra.Command, result string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
