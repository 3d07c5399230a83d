package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/secure-e-diary/internal/adapter"
	"github.com/MKhiriev/secure-e-diary/internal/caesar"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/atotto/clipboard"
)

const usage = `Usage: e-diary [command] [flags]

Commands:
  save [-shift N] [-raw] <text | ->   shift text and store it, "-" reads stdin
  list                                print every entry id
  decrypt -id ID [-key N] [-copy]     decrypt one entry
  health                              show server status and entry count
  version                             show server version

Without a command the interactive browser starts.`

type App struct {
	adapter adapter.ServerAdapter
	browser Browser

	in   io.Reader
	out  io.Writer
	copy func(string) error

	logger *logger.Logger
}

type Option func(*App)

func WithBrowser(browser Browser) Option {
	return func(a *App) { a.browser = browser }
}

func WithInput(in io.Reader) Option {
	return func(a *App) { a.in = in }
}

func WithOutput(out io.Writer) Option {
	return func(a *App) { a.out = out }
}

// WithClipboard replaces the system clipboard used by decrypt -copy.
func WithClipboard(copyFn func(string) error) Option {
	return func(a *App) { a.copy = copyFn }
}

func NewApp(serverAdapter adapter.ServerAdapter, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		adapter: serverAdapter,
		in:      os.Stdin,
		out:     os.Stdout,
		copy:    clipboard.WriteAll,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if a.browser == nil {
			return ErrNoBrowser
		}
		return a.browser.Browse(ctx)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running client command")

	switch command {
	case "save":
		return a.save(ctx, rest)
	case "list":
		return a.list(ctx)
	case "decrypt":
		return a.decrypt(ctx, rest)
	case "health":
		return a.health(ctx)
	case "version":
		return a.version(ctx)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// PrintError renders err the way command output is rendered.
func (a *App) PrintError(err error) {
	fmt.Fprintln(a.out, errorStyle.Render("Error: "+err.Error()))
}

func (a *App) save(ctx context.Context, args []string) error {
	fs := a.newFlagSet("save")
	shift := fs.Int("shift", caesar.DefaultShift, "letter shift applied before sending")
	raw := fs.Bool("raw", false, "send the text as is")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := strings.Join(fs.Args(), " ")
	if text == "-" {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return fmt.Errorf("error reading entry from stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}
	if text == "" {
		return ErrMissingText
	}

	if !*raw {
		text = caesar.Encrypt(text, *shift)
	}

	id, err := a.adapter.SaveEntry(ctx, text)
	if err != nil {
		return fmt.Errorf("error saving entry: %w", err)
	}

	fmt.Fprintln(a.out, titleStyle.Render("Saved entry "+id))
	return nil
}

func (a *App) list(ctx context.Context) error {
	ids, err := a.adapter.ListEntryIDs(ctx)
	if err != nil {
		return fmt.Errorf("error listing entries: %w", err)
	}

	if len(ids) == 0 {
		fmt.Fprintln(a.out, mutedStyle.Render("No entries yet"))
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}
	return nil
}

func (a *App) decrypt(ctx context.Context, args []string) error {
	fs := a.newFlagSet("decrypt")
	id := fs.String("id", "", "entry id")
	key := fs.Int("key", caesar.DefaultShift, "decryption key")
	copyResult := fs.Bool("copy", false, "copy the decrypted text to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" && fs.NArg() > 0 {
		*id = fs.Arg(0)
	}
	if *id == "" {
		return ErrMissingID
	}

	text, err := a.adapter.DecryptEntry(ctx, *id, *key)
	if err != nil {
		if errors.Is(err, adapter.ErrForbidden) {
			return fmt.Errorf("key %d does not unlock entry %s: %w", *key, *id, err)
		}
		return fmt.Errorf("error decrypting entry: %w", err)
	}

	fmt.Fprintln(a.out, decryptedBox.Render(text))

	if *copyResult {
		if err = a.copy(text); err != nil {
			return fmt.Errorf("error copying to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, mutedStyle.Render("Copied to clipboard"))
	}
	return nil
}

func (a *App) health(ctx context.Context) error {
	health, err := a.adapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("error checking health: %w", err)
	}

	fmt.Fprintf(a.out, "%s %s\n", titleStyle.Render("Status:"), health.Status)
	fmt.Fprintf(a.out, "%s %d\n", titleStyle.Render("Entries:"), health.Entries)
	return nil
}

func (a *App) version(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("error getting version: %w", err)
	}

	fmt.Fprintln(a.out, version)
	return nil
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}
