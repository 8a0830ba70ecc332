package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/termdeck/internal/adapters/secondary/config"
	"github.com/fredcamaral/termdeck/internal/adapters/secondary/diag"
	"github.com/fredcamaral/termdeck/internal/adapters/secondary/highlight"
	"github.com/fredcamaral/termdeck/internal/adapters/secondary/script"
	"github.com/fredcamaral/termdeck/internal/adapters/secondary/term"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
	"github.com/fredcamaral/termdeck/internal/domain/services"
)

var (
	// Play command flags
	transitionFlag string
	styleFlag      string
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play [script]",
	Short: "Play a presentation script in the terminal",
	Long: `Play a markdown presentation script as a full-screen terminal
presentation. Content is revealed on keypress; press q or esc on the
closing screen to leave.

Example:
  termdeck play talk.md
  termdeck play talk.md --transition "wipe *"`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&transitionFlag, "transition", "t", "", "Default transition (overrides config)")
	playCmd.Flags().StringVarP(&styleFlag, "style", "s", "monokai", "Syntax highlighting style")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	scriptPath := args[0]

	logFile, _ := cmd.Flags().GetString("log-file")

	// Load configuration: defaults, global file, local file, flags.
	configService := services.NewConfigService(config.NewTOMLLoader(), config.NewConfigMerger())
	cfg, err := configService.LoadConfig(ctx, filepath.Dir(scriptPath), map[string]interface{}{
		"transition": transitionFlag,
		"log-file":   logFile,
	})
	if err != nil {
		return err
	}

	// Load the script before touching the terminal so authoring errors
	// are reported on a sane terminal.
	formatter := highlight.NewChromaFormatter(styleFlag)
	loader := script.NewMarkdownLoader(cfg, formatter)

	timeline, err := loader.Load(ctx, scriptPath)
	if err != nil {
		return err
	}

	var diagnostics ports.Diagnostics = diag.Nop{}
	if cfg.Logging.File != "" {
		fileDiag, err := diag.NewFileDiagnostics(cfg.Logging.File)
		if err != nil {
			return err
		}
		defer func() { _ = fileDiag.Close() }()
		diagnostics = fileDiag
	}

	if !isTerminal() {
		return fmt.Errorf("playback requires a terminal on stdin/stdout")
	}

	surface := term.NewANSISurface(term.NewTTY(), os.Stdin)
	if err := surface.Open(); err != nil {
		return err
	}
	defer func() { _ = surface.Close() }()
	defer term.RestoreOnPanic(surface)

	player := services.NewPlayer(timeline, surface, cfg.Playback, diagnostics)
	return player.Play(ctx)
}
