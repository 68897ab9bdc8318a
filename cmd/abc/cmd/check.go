package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/f3rmion/abc/internal/assets"
	"github.com/f3rmion/abc/internal/audio"
	"github.com/f3rmion/abc/internal/render"
	"github.com/f3rmion/abc/internal/words"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every sound and the font can be loaded",
	Long: `Check every file ABC needs before it starts:
  - one sound per letter A-Z
  - one sound per special word
  - the letter font

Each sound is decoded, so corrupt files are reported too.

Example:
  abc check --assets ./assets`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	catalog := assets.NewCatalog(cfg.Assets.Dir, cfg.Assets.Ext)

	var failed []error
	for _, name := range assets.Required(words.Default()) {
		path := catalog.AssetPath(name)
		buf, err := audio.Decode(path)
		if err != nil {
			fmt.Fprintf(out, "  FAIL  %-8s %v\n", name, err)
			failed = append(failed, err)
			continue
		}
		fmt.Fprintf(out, "  ok    %-8s %s (%s)\n", name, path, audio.Length(buf).Round(time.Millisecond))
	}

	font := fontPath(cfg)
	label := font
	if label == "" {
		label = "(built-in)"
	}
	if _, err := render.LoadFace(font, render.GlyphSize); err != nil {
		fmt.Fprintf(out, "  FAIL  %-8s %v\n", "font", err)
		failed = append(failed, err)
	} else {
		fmt.Fprintf(out, "  ok    %-8s %s\n", "font", label)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d asset(s) failed: %w", len(failed), errors.Join(failed...))
	}

	fmt.Fprintln(out, "\nAll assets present.")
	return nil
}
