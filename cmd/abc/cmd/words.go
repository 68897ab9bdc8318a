package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/abc/internal/assets"
	"github.com/f3rmion/abc/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the special words and their sounds",
	Args:  cobra.NoArgs,
	RunE:  runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	set := words.Default()
	catalog := assets.NewCatalog(cfg.Assets.Dir, cfg.Assets.Ext)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Special words:")
	for _, w := range set.Words() {
		fmt.Fprintf(out, "  %-8s %s\n", w, catalog.AssetPath(w))
	}

	letters := make([]string, 0, len(set.SpecialAlphabet()))
	for _, l := range set.SpecialAlphabet() {
		letters = append(letters, l.String())
	}
	fmt.Fprintf(out, "\nSpecial letters: %s\n", strings.Join(letters, " "))

	return nil
}
