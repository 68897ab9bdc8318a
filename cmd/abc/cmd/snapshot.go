package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/render"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <letter>",
	Short: "Render the display for a letter to a PNG file",
	Long: `Render the full 640x480 display, as it looks with the given letter
selected, and save it as a PNG image.

Example:
  abc snapshot a
  abc snapshot Q -o q.png`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().StringP("output", "o", "", "output file (default <letter>.png)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	runes := []rune(args[0])
	if len(runes) != 1 {
		return fmt.Errorf("expected a single letter, got %q", args[0])
	}
	letter, ok := abc.ParseLetter(runes[0])
	if !ok {
		return fmt.Errorf("not a letter: %q", args[0])
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	face, err := render.LoadFace(fontPath(cfg), render.GlyphSize)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = strings.ToLower(letter.String()) + ".png"
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer f.Close()

	if err := render.WritePNG(f, render.NewCanvas(face).Frame(letter)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
	return nil
}
