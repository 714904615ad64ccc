// entry point

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/skx/makovm/audio"
	"github.com/skx/makovm/config"
	"github.com/skx/makovm/consolein"
	"github.com/skx/makovm/consoleout"
	"github.com/skx/makovm/display"
	"github.com/skx/makovm/mako"
	"github.com/skx/makovm/memory"
	"github.com/skx/makovm/version"
)

// options holds our command-line flags.
type options struct {
	config   string
	audio    string
	input    string
	output   string
	scale    int
	memory   int
	seed     uint64
	trace    bool
	headless bool
	frames   int
	png      string
	version  bool
	drivers  bool
}

// parseFlags parses our arguments, returning the options and the
// names of the flags which were actually given.
func parseFlags(args []string, stderr io.Writer) (*options, []string, map[string]bool, error) {
	opts := new(options)

	fs := flag.NewFlagSet("makovm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: makovm [flags] path/to/image.rom\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.config, "config", "", "The configuration file to load, instead of ./"+config.DefaultFile+".")
	fs.StringVar(&opts.audio, "audio", "", "The audio driver to use.")
	fs.StringVar(&opts.input, "input", "", "The console input driver to use.")
	fs.StringVar(&opts.output, "output", "", "The console output driver to use.")
	fs.IntVar(&opts.scale, "scale", 0, "The window scale factor.")
	fs.IntVar(&opts.memory, "memory", 0, "The minimum memory size, in words.")
	fs.Uint64Var(&opts.seed, "seed", 0, "Seed the random number generator, for repeatable runs.")
	fs.BoolVar(&opts.trace, "trace", false, "Log every instruction executed.")
	fs.BoolVar(&opts.headless, "headless", false, "Run without a window.")
	fs.IntVar(&opts.frames, "frames", 0, "In headless mode stop after this many frames, zero runs until the program halts.")
	fs.StringVar(&opts.png, "png", "", "In headless mode write the final frame to this PNG file.")
	fs.BoolVar(&opts.version, "version", false, "Show our version number and exit.")
	fs.BoolVar(&opts.drivers, "list-drivers", false, "Show the available drivers and exit.")

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return opts, fs.Args(), set, nil
}

// merge applies the flags which were given over the configuration.
func merge(cfg *config.Config, opts *options, set map[string]bool) {
	if set["audio"] {
		cfg.Audio.Driver = opts.audio
	}
	if set["input"] {
		cfg.Console.Input = opts.input
	}
	if set["output"] {
		cfg.Console.Output = opts.output
	}
	if set["scale"] {
		cfg.Display.Scale = opts.scale
	}
	if set["memory"] {
		cfg.Machine.Memory = opts.memory
	}
	if set["seed"] {
		cfg.Machine.Seed = opts.seed
	}
	if set["trace"] {
		cfg.Machine.Trace = opts.trace
	}
}

// listDrivers shows the drivers we can use.
func listDrivers(out io.Writer) {
	in, _ := consolein.New("stdin")
	con, _ := consoleout.New("null")

	fmt.Fprintf(out, "Console input drivers:  %s\n", strings.Join(in.GetDrivers(), " "))
	fmt.Fprintf(out, "Console output drivers: %s\n", strings.Join(con.GetDrivers(), " "))
	fmt.Fprintf(out, "Audio drivers:          %s\n", strings.Join(audio.GetDrivers(), " "))
}

// setDefaultEnv sets an environmental variable, unless it is already set.
func setDefaultEnv(name, value string) {
	if os.Getenv(name) == "" && value != "" {
		os.Setenv(name, value)
	}
}

// writePNG saves the current frame of the machine.
func writePNG(m *mako.Mako, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, m.Snapshot()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// runHeadless runs the given number of frames, or until the machine
// halts when frames is zero.
func runHeadless(m *mako.Mako, frames int, path string) error {
	var err error

	for i := 0; frames == 0 || i < frames; i++ {
		err = m.Run()
		if err != nil {
			break
		}
	}

	if path != "" {
		if perr := writePNG(m, path); perr != nil {
			return fmt.Errorf("failed to write %s: %w", path, perr)
		}
	}
	return err
}

// run is our real entry point, returning mako.ErrHalt if the
// program we ran halted.
func run(args []string, stdout io.Writer, stderr io.Writer) error {

	opts, rest, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.version {
		fmt.Fprint(stdout, version.GetVersionBanner())
		return nil
	}
	if opts.drivers {
		listDrivers(stdout)
		return nil
	}

	// Ensure we've been given the name of a file
	if len(rest) != 1 {
		return fmt.Errorf("usage: makovm [flags] path/to/image.rom")
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	merge(cfg, opts, set)

	if cfg.Audio.Driver == "" {
		cfg.Audio.Driver = "oto"
		if opts.headless {
			cfg.Audio.Driver = "null"
		}
	}

	// Our file-based drivers are configured by the environment
	setDefaultEnv("INPUT_FILE", cfg.Console.InputFile)
	setDefaultEnv("WAV_FILE", cfg.Audio.WavFile)

	// Setup our logging level - default to warnings or higher
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)

	// But show "everything" if $DEBUG is non-empty, or we're tracing
	if os.Getenv("DEBUG") != "" || cfg.Machine.Trace {
		lvl.Set(slog.LevelDebug)
	}

	//
	// Create our logging handler, using the level we've just setup
	//
	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: lvl,
	}))

	mem, err := memory.LoadFile(rest[0], cfg.Machine.Memory)
	if err != nil {
		return err
	}

	machineOpts := []mako.Option{
		mako.WithLogger(log),
		mako.WithInputDriver(cfg.Console.Input),
		mako.WithOutputDriver(cfg.Console.Output),
		mako.WithAudioDriver(cfg.Audio.Driver),
		mako.WithTrace(cfg.Machine.Trace),
	}
	if cfg.Machine.Seed != 0 {
		machineOpts = append(machineOpts, mako.WithSeed(cfg.Machine.Seed))
	}

	//
	// Create a new emulator.
	//
	m, err := mako.New(mem, machineOpts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			log.Warn("failed to shut down cleanly",
				slog.String("error", cerr.Error()))
		}
	}()

	log.Debug("loaded image",
		slog.String("path", rest[0]),
		slog.Int("words", mem.Len()))

	if opts.headless {
		return runHeadless(m, opts.frames, opts.png)
	}

	title := fmt.Sprintf("%s %s", cfg.Display.Title, version.GetVersionString())
	return display.New(m, cfg.Display.Scale, title).Run()
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, mako.ErrHalt) || errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
