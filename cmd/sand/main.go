package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"sand-ca/internal/config"
	"sand-ca/internal/core"
	"sand-ca/internal/rockfield"
	_ "sand-ca/internal/sims/sand"
	prng "sand-ca/pkg/core"
)

var log = logrus.New()

var errUsage = errors.New("usage")

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// options holds the command-line parameters.
type options struct {
	Config     string
	Sim        string
	Policy     string
	LogLevel   string
	Sequential bool
	Seed       int64
	Random     bool
	Lines      int
	Set        kvList
}

func newOptions() *options {
	return &options{Sim: "sand", Lines: rockfield.DefaultGenerateOptions().Lines}
}

// Bind attaches the options to the provided FlagSet.
func (o *options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Config, "config", o.Config, "YAML run file")
	fs.StringVar(&o.Sim, "sim", o.Sim, "simulation to run")
	fs.StringVar(&o.Policy, "policy", o.Policy, "policy to run: abyss, floor or both (default from run file)")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level (default from run file)")
	fs.BoolVar(&o.Sequential, "sequential", o.Sequential, "run policies one after another instead of in parallel")
	fs.Int64Var(&o.Seed, "random", o.Seed, "simulate a random cave generated from this seed instead of reading input")
	fs.IntVar(&o.Lines, "random-lines", o.Lines, "polylines in a random cave")
	fs.Var(&o.Set, "set", "simulation override in key=value form: source_x, source_y, policy (repeatable)")
}

// parseArgs fills options from args. Random records whether -random was
// given at all, so seed 0 is a valid request.
func parseArgs(fs *flag.FlagSet, args []string) (*options, error) {
	o := newOptions()
	o.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "random" {
			o.Random = true
		}
	})
	return o, nil
}

// plan is a validated run: which factory to use and one settings map per
// sim to build.
type plan struct {
	Run      config.Run
	Factory  core.Factory
	Settings []map[string]string
}

// resolve merges the run file with the flags. Every error it returns is a
// usage error.
func resolve(run config.Run, o *options) (plan, error) {
	if o.LogLevel != "" {
		run.LogLevel = o.LogLevel
	}
	switch o.Policy {
	case "":
	case "both":
		run.Policies = []string{core.OpenAbyss.String(), core.ClosedFloor.String()}
	default:
		run.Policies = []string{o.Policy}
	}
	if o.Sequential {
		run.Parallel = false
	}
	if err := run.Validate(); err != nil {
		return plan{}, err
	}
	factory, err := core.Lookup(o.Sim)
	if err != nil {
		return plan{}, err
	}

	base := run.Overrides()
	for _, kv := range o.Set {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return plan{}, fmt.Errorf("%w: -set %q is not key=value", core.ErrInvalidSetting, kv)
		}
		base[k] = v
	}

	p := plan{Run: run, Factory: factory}
	if _, ok := base["policy"]; ok {
		p.Settings = []map[string]string{base}
		return p, nil
	}
	policies, _ := run.ParsedPolicies()
	for _, pol := range policies {
		settings := make(map[string]string, len(base)+1)
		for k, v := range base {
			settings[k] = v
		}
		settings["policy"] = pol.String()
		p.Settings = append(p.Settings, settings)
	}
	return p, nil
}

// build constructs one sim per settings map. Settings the factory rejects
// come back wrapping core.ErrInvalidSetting.
func (p plan) build(t core.Terrain) ([]core.Sim, error) {
	out := make([]core.Sim, 0, len(p.Settings))
	for _, settings := range p.Settings {
		sim, err := p.Factory(t, settings)
		if err != nil {
			return nil, err
		}
		out = append(out, sim)
	}
	return out, nil
}

func main() {
	fs := flag.CommandLine
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] <input>\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	o, err := parseArgs(fs, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	run := config.Default()
	if o.Config != "" {
		dir, name := openDir(o.Config)
		loaded, err := config.Load(dir, name)
		if err != nil {
			log.WithError(err).Fatal("load run config")
		}
		run = loaded
	}
	p, err := resolve(run, o)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.SetLevel(p.Run.Level())

	start := time.Now()
	field, err := loadField(o, fs.Args())
	if errors.Is(err, errUsage) {
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Fatal("load rock field")
	}
	log.WithFields(logrus.Fields{
		"rocks":   field.Len(),
		"bottom":  field.Bottom(),
		"elapsed": time.Since(start),
	}).Info("rock field ready")

	sims, err := p.build(field)
	if errors.Is(err, core.ErrInvalidSetting) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Fatal("build simulation")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := simulate(ctx, sims, p.Run.Parallel); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
	for _, s := range sims {
		fmt.Printf("%s: %d\n", s.Name(), s.Settled())
	}
}

func loadField(o *options, args []string) (*rockfield.Field, error) {
	if o.Random {
		opts := rockfield.DefaultGenerateOptions()
		opts.Lines = o.Lines
		log.WithFields(logrus.Fields{"seed": o.Seed, "lines": o.Lines}).Info("generating random cave")
		return rockfield.Build(rockfield.Generate(prng.NewRNG(o.Seed), opts))
	}
	if len(args) != 1 {
		return nil, errUsage
	}
	dir, name := openDir(args[0])
	return rockfield.Load(dir, name)
}

// openDir roots an OS filesystem at the directory holding path.
func openDir(path string) (billy.Filesystem, string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return osfs.New(filepath.Dir(abs)), filepath.Base(abs)
}

func simulate(ctx context.Context, sims []core.Sim, parallel bool) error {
	start := time.Now()
	var err error
	if parallel {
		err = core.RunAll(ctx, sims...)
	} else {
		for _, s := range sims {
			if err = core.Run(ctx, s); err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}
	for _, s := range sims {
		log.WithFields(logrus.Fields{
			"sim":     s.Name(),
			"settled": s.Settled(),
		}).Debug("sim finished")
	}
	log.WithFields(logrus.Fields{
		"sims":     len(sims),
		"parallel": parallel,
		"elapsed":  time.Since(start),
	}).Info("simulation complete")
	return nil
}
