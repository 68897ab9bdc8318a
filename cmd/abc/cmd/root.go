// Package cmd contains all CLI commands for ABC.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/assets"
	"github.com/f3rmion/abc/internal/audio"
	"github.com/f3rmion/abc/internal/config"
	"github.com/f3rmion/abc/internal/playback"
	"github.com/f3rmion/abc/internal/render"
	"github.com/f3rmion/abc/internal/screen"
	"github.com/f3rmion/abc/internal/session"
	"github.com/f3rmion/abc/internal/tui"
	"github.com/f3rmion/abc/internal/words"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "abc",
	Short: "ABC - press a letter, see it and hear it",
	Long: `ABC is a full-screen letter display for young children.

Pressing a letter key shows it large in the middle of the screen and
plays its pronunciation. Typing one of the special words letter by
letter plays the whole word:

  YENULI  YELINSA  YESARA

Sounds are read from the assets directory as <letter>.ogg and
<word>.ogg. Every letter and word must have a sound file.

Controls:
  a-z   Show and play a letter
  Esc   Quit`,
	SilenceUsage: true,
	RunE:         runDisplay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/abc/config.yaml)")
	flags.String("assets", "", "directory holding the sound files")
	flags.String("ext", "", "sound file extension (.ogg, .wav or .mp3)")
	flags.String("font", "", "TrueType/OpenType font for the letters")
	flags.String("frontend", "", "display frontend: tui or tcell")
	flags.Bool("mute", false, "check sounds but do not play them")
	flags.Float64("volume", 0, "volume change, in doublings (0 keeps the file volume)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write logs to this file")

	for _, name := range []string{"assets", "ext", "font", "frontend", "mute", "volume", "log-level", "log-file"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in ENV variables and locates the config file.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_file", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_file", filepath.Join(dir, config.FileName))
	}

	viper.SetEnvPrefix("ABC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// getConfigFile returns the configuration file path.
func getConfigFile() string {
	return viper.GetString("config_file")
}

// loadSettings merges the config file, environment and flags.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(getConfigFile())
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && cfgFile == "":
		cfg = config.Default()
	default:
		return nil, err
	}

	if viper.IsSet("assets") {
		cfg.Assets.Dir = viper.GetString("assets")
	}
	if viper.IsSet("ext") {
		cfg.Assets.Ext = viper.GetString("ext")
	}
	if viper.IsSet("font") {
		cfg.Font = viper.GetString("font")
	}
	if viper.IsSet("frontend") {
		cfg.Frontend = viper.GetString("frontend")
	}
	if viper.IsSet("mute") {
		cfg.Mute = viper.GetBool("mute")
	}
	if viper.IsSet("volume") {
		cfg.Volume = viper.GetFloat64("volume")
	}
	if viper.IsSet("log-level") {
		cfg.Log.Level = viper.GetString("log-level")
	}
	if viper.IsSet("log-file") {
		cfg.Log.File = viper.GetString("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the slog logger. Without a log file, logs are discarded
// so they never draw over the display.
func newLogger(lc config.LogConfig) (*slog.Logger, func() error, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closer := func() error { return nil }
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

// fontPath picks the configured font, else the bundled font in the assets
// directory, else "" for the built-in font.
func fontPath(cfg *config.Config) string {
	if cfg.Font != "" {
		return cfg.Font
	}
	bundled := filepath.Join(cfg.Assets.Dir, abc.DefaultFont)
	if assets.CheckFile(bundled) == nil {
		return bundled
	}
	return ""
}

// frontend is a display the session can read keys from and draw on.
type frontend interface {
	session.EventSource
	session.Renderer
	Close() error
}

func openFrontend(name string, canvas *render.Canvas) (frontend, error) {
	switch name {
	case config.FrontendTcell:
		return screen.New(canvas)
	case config.FrontendTUI:
		d := tui.New(canvas)
		d.Start()
		return d, nil
	}
	return nil, fmt.Errorf("unknown frontend %q", name)
}

// runDisplay checks every asset, then runs the display until Esc.
func runDisplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	set := words.Default()
	catalog := assets.NewCatalog(cfg.Assets.Dir, cfg.Assets.Ext)
	if err := catalog.Verify(set); err != nil {
		return fmt.Errorf("checking assets: %w", err)
	}

	face, err := render.LoadFace(fontPath(cfg), render.GlyphSize)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	player, err := audio.Open(catalog, assets.Required(set), audio.Options{
		Volume: cfg.Volume,
		Silent: cfg.Mute,
	})
	if err != nil {
		return fmt.Errorf("loading sounds: %w", err)
	}
	defer player.Close()
	logger.Info("loaded cues", "count", player.Cues(), "dir", cfg.Assets.Dir, "muted", cfg.Mute)

	display, err := openFrontend(cfg.Frontend, render.NewCanvas(face))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dispatcher := playback.NewDispatcher(player, catalog, set, playback.WithLogger(logger))
	sess := session.New(display, display, dispatcher, session.WithLogger(logger))

	runErr := sess.Run(ctx)
	if err := display.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
