package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/waypoint/internal/version"
	"github.com/arthur-debert/waypoint/pkg/clipboard"
	"github.com/arthur-debert/waypoint/pkg/config"
	"github.com/arthur-debert/waypoint/pkg/errors"
	"github.com/arthur-debert/waypoint/pkg/expander"
	"github.com/arthur-debert/waypoint/pkg/filesystem"
	"github.com/arthur-debert/waypoint/pkg/logging"
	"github.com/arthur-debert/waypoint/pkg/paths"
	"github.com/arthur-debert/waypoint/pkg/shortcuts"
	"github.com/arthur-debert/waypoint/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// deps are the collaborators the command talks to
type deps struct {
	fs           filesystem.FS
	configFiles  func() []string
	newSink      func(backend string, stdout, stderr io.Writer) (clipboard.Sink, error)
	setupLogging func(verbosity int, out io.Writer)
	styled       func(w io.Writer) bool
}

func defaultDeps() deps {
	return deps{
		fs:           filesystem.NewOS(),
		configFiles:  paths.ConfigSearchPaths,
		newSink:      clipboard.New,
		setupLogging: logging.SetupLoggerWithOutput,
		styled:       ui.IsStyledWriter,
	}
}

type options struct {
	verbosity int
	path      bool
	add       bool
	list      bool
	remove    bool
	format    string
	print     bool
	dryRun    bool
	store     string
	clipboard string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDeps())
}

func newRootCmd(d deps) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:     "waypoint [flags] [text...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			d.setupLogging(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, d)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if !opts.remove || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completeKeys(cmd, opts, d, toComplete)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := rootCmd.Flags()
	// Everything after the first word is text to expand, even if it starts with a dash
	flags.SetInterspersed(false)

	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.path, "path", false, MsgFlagPath)
	flags.BoolVar(&opts.add, "add", false, MsgFlagAdd)
	flags.BoolVar(&opts.list, "list", false, MsgFlagList)
	flags.BoolVar(&opts.remove, "rm", false, MsgFlagRemove)
	flags.StringVar(&opts.format, "format", "", MsgFlagFormat)
	flags.BoolVar(&opts.print, "print", false, MsgFlagPrint)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVar(&opts.store, "store", "", MsgFlagStore)
	flags.StringVar(&opts.clipboard, "clipboard", "", MsgFlagClipboard)

	rootCmd.MarkFlagsMutuallyExclusive("path", "add", "list", "rm")

	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(ui.Formats(), cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("clipboard", cobra.FixedCompletions(
		[]string{clipboard.BackendSystem, clipboard.BackendOSC52, clipboard.BackendStdout},
		cobra.ShellCompDirectiveNoFileComp,
	))

	return rootCmd
}

// loadSettings merges settings files, env and the flags that override them
func loadSettings(cmd *cobra.Command, opts options, d deps) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if opts.store != "" {
		overrides["store.path"] = opts.store
	}
	if opts.clipboard != "" {
		overrides["clipboard.backend"] = opts.clipboard
	}
	if cmd.Flags().Changed("format") {
		overrides["list.format"] = opts.format
	}
	if opts.print {
		overrides["expand.print"] = true
	}
	return config.Load(d.configFiles(), overrides)
}

func openStore(cfg *config.Config, d deps) (*shortcuts.Store, error) {
	storePath, err := paths.StorePath(cfg.Store.Path, cfg.Store.FileName)
	if err != nil {
		return nil, err
	}
	return shortcuts.New(d.fs, storePath, shortcuts.WithFileMode(cfg.Store.Mode)), nil
}

func run(cmd *cobra.Command, args []string, opts options, d deps) error {
	logger := logging.GetLogger("cli")
	logging.LogCommand(cmd.Name(), args)

	cfg, err := loadSettings(cmd, opts, d)
	if err != nil {
		return err
	}

	store, err := openStore(cfg, d)
	if err != nil {
		return err
	}

	m, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch {
	case opts.path:
		if err := noArgs("--path", args); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, store.Path())
		return err

	case opts.add:
		return runAdd(cmd, store, m, args, d)

	case opts.remove:
		if len(args) == 0 {
			return errors.MissingArgument("key")
		}
		if len(args) > 1 {
			return errors.Newf(errors.ErrInvalidInput, MsgErrTooManyArgs, "--rm", "exactly one key")
		}
		_, err := store.Remove(m, args[0])
		return err

	case opts.list:
		if err := noArgs("--list", args); err != nil {
			return err
		}
		format, err := ui.ParseFormat(cfg.List.Format)
		if err != nil {
			return errors.Wrap(err, errors.ErrConfigValid, MsgErrFormat).WithDetail("format", cfg.List.Format)
		}
		renderer := ui.NewListRenderer(out, format, d.styled(out))
		return renderer.Render(shortcuts.List(m))
	}

	if len(args) == 0 {
		return errors.MissingArgument(MsgErrNoInput)
	}

	input := expander.JoinArgs(args)
	expanded, err := expander.Expand(input, m)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("input", input).
		Strs("tokens", expander.Tokens(input)).
		Msg("Input expanded")

	if opts.dryRun {
		_, err := fmt.Fprintln(out, expanded)
		return err
	}

	sink, err := d.newSink(cfg.Clipboard.Backend, out, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := sink.Write(expanded); err != nil {
		return err
	}
	logger.Info().Str("backend", cfg.Clipboard.Backend).Int("length", len(expanded)).Msg("Expansion copied")

	// The stdout backend has already printed it
	if cfg.Expand.Print && cfg.Clipboard.Backend != clipboard.BackendStdout {
		_, err := fmt.Fprintln(out, expanded)
		return err
	}
	return nil
}

func runAdd(cmd *cobra.Command, store *shortcuts.Store, m shortcuts.Mapping, args []string, d deps) error {
	if len(args) == 0 {
		return errors.MissingArgument("key")
	}
	if len(args) == 1 {
		return errors.MissingArgument("value")
	}

	key, value := args[0], expander.JoinArgs(args[1:])
	existing, existed := m[key]

	if _, err := store.Add(m, key, value); err != nil {
		return err
	}
	if existed && existing != value {
		errOut := cmd.ErrOrStderr()
		_, _ = fmt.Fprintln(errOut, ui.RenderNotice(fmt.Sprintf(MsgAddSkipped, key, existing), d.styled(errOut)))
	}
	return nil
}

func noArgs(flag string, args []string) error {
	if len(args) > 0 {
		return errors.Newf(errors.ErrInvalidInput, MsgErrTooManyArgs, flag, "no arguments").
			WithDetail("args", strings.Join(args, " "))
	}
	return nil
}

// completeKeys offers stored shortcut keys without creating the store file
func completeKeys(cmd *cobra.Command, opts options, d deps, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := loadSettings(cmd, opts, d)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	storePath, err := paths.StorePath(cfg.Store.Path, cfg.Store.FileName)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	data, err := d.fs.ReadFile(storePath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var keys []string
	for _, e := range shortcuts.List(shortcuts.Parse(data)) {
		if strings.HasPrefix(e.Key, toComplete) {
			keys = append(keys, e.Key+"\t"+e.Value)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
