// Command gradviz trains the gradient descent demos and writes their
// frames as PNG files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/born-ml/gradviz/internal/config"
	"github.com/born-ml/gradviz/internal/logging"
)

const version = "v0.1.0-dev"

// app carries state shared by the subcommands of one invocation.
type app struct {
	v     *viper.Viper
	flags *pflag.FlagSet
	cfg   config.Config
	log   *zap.SugaredLogger
}

// flagKeys maps every command line flag to its config key.
var flagKeys = map[string]string{
	"epochs":    config.KeyEpochs,
	"lr":        config.KeyLR,
	"every":     config.KeyEvery,
	"interval":  config.KeyInterval,
	"out":       config.KeyOut,
	"seed":      config.KeySeed,
	"batch":     config.KeyBatch,
	"width":     config.KeyWidth,
	"height":    config.KeyHeight,
	"scale":     config.KeyScale,
	"stride":    config.KeyStride,
	"workers":   config.KeyWorkers,
	"no-axis":   config.KeyHideAxis,
	"log-level": config.KeyLogLevel,
	"log-file":  config.KeyLogFile,
}

func newApp() *app {
	a := &app{v: config.New(), flags: &pflag.FlagSet{}}

	f := a.flags
	f.Int("epochs", 500, "number of training steps")
	f.Float64("lr", 0, "learning rate (0 uses the demo default)")
	f.Int("every", 50, "write a frame every N epochs")
	f.Duration("interval", 0, "delay between steps")
	f.StringP("out", "o", "frames", "frame output directory")
	f.Int64("seed", 0, "random seed (0 is unseeded)")
	f.Int("batch", 0, "minibatch size (0 uses the demo default)")
	f.Int("width", 480, "frame width in logical pixels")
	f.Int("height", 360, "frame height in logical pixels")
	f.Float64("scale", 1, "device pixels per logical pixel")
	f.Int("stride", 4, "heatmap block size in logical pixels")
	f.Int("workers", 1, "heatmap sampling goroutines")
	f.Bool("no-axis", false, "hide the x=0 and y=0 grid lines")
	return a
}

// attachFlags moves the named flags from the shared set onto cmd.
func (a *app) attachFlags(cmd *cobra.Command, names ...string) {
	cmdFlags := cmd.Flags()
	for _, name := range names {
		flag := a.flags.Lookup(name)
		if flag == nil {
			panic(fmt.Errorf("could not find flag '%s' to attach to command '%s'", name, cmd.Name()))
		}
		cmdFlags.AddFlag(flag)
	}
}

// load resolves configuration for cmd and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	bound := make(map[string]string)
	for name, key := range flagKeys {
		if cmd.Flags().Lookup(name) != nil {
			bound[name] = key
		}
	}
	if err := config.BindFlags(a.v, cmd.Flags(), bound); err != nil {
		return err
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := config.ReadFile(a.v, path); err != nil {
		return err
	}

	a.cfg, err = config.Load(a.v)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	a.log, err = logging.New("gradviz", a.cfg.Log, cmd.ErrOrStderr())
	return err
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:           "gradviz",
		Short:         "Visualize gradient descent on toy datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default ./gradviz.yaml if present)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-file", "", "rotated log file prefix")

	root.AddCommand(runCmd(a), datasetCmd(a), versionCmd())
	return root
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gradviz:", err)
		os.Exit(1)
	}
}
