package main

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/codec"
	"github.com/katalvlaran/grayknuth/config"
	"github.com/katalvlaran/grayknuth/fileio"
	"github.com/katalvlaran/grayknuth/logging"
	"github.com/katalvlaran/grayknuth/metrics"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	fs       afero.Fs
	cfgPath  string
	logLevel string

	cfg   *config.Config
	log   *zap.Logger
	reg   *prometheus.Registry
	codec *codec.Codec
	store *fileio.Store
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:   "grayknuth",
		Short: "Balanced-weight binary encoder and decoder",
		Long: `grayknuth maps an n-bit string to an (n+L+1)-bit string with equal
numbers of ones and zeros (L = ceil(log2(2n+1))), and back.

Bit strings are given as an argument, read from stdin ("-" or no argument),
or read from a file with --in.

Examples:
  # Encode an argument
  grayknuth encode 0000000

  # Decode from stdin
  echo 111100001100 | grayknuth decode -

  # Encode a file into another file
  grayknuth encode --in data.txt --out data.enc

  # Encoded length for an 8-bit payload
  grayknuth length encoded 8`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newInspectCmd(a),
		newLengthCmd(a),
	)

	return root
}

// setup loads configuration and builds the logger, registry and codec.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	log, err := logging.NewWithSink(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.reg = prometheus.NewRegistry()
	a.codec = codec.New(
		codec.WithLogger(log.Named("codec")),
		codec.WithRecorder(metrics.NewRecorder(a.reg)),
	)
	a.store = fileio.NewStore(a.fs, a.codec)

	return nil
}

// run wraps a subcommand body: failures are logged at Warn and metrics are
// flushed whether or not the command succeeded.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			a.log.Warn("command failed", zap.String("command", cmd.Name()), zap.Error(err))
		}
		if a.cfg.Metrics.Enabled {
			if mErr := metrics.WriteTextfile(a.cfg.Metrics.Textfile, a.reg); mErr != nil {
				err = errors.Join(err, mErr)
			}
		}
		_ = a.log.Sync()

		return err
	}
}

// readInput resolves the bit string operand: --in file, positional
// argument, or stdin when the argument is absent or "-".
func (a *app) readInput(cmd *cobra.Command, args []string, inPath string) (bitstring.BitString, error) {
	switch {
	case inPath != "" && len(args) > 0:
		return bitstring.BitString{}, fmt.Errorf("both --in and an argument given")
	case inPath != "":
		return a.store.Read(inPath)
	case len(args) == 1 && args[0] != "-":
		return bitstring.Parse(args[0])
	default:
		return fileio.ReadBitString(cmd.InOrStdin())
	}
}

// writeOutput prints bs, or stores it at outPath when set.
func (a *app) writeOutput(cmd *cobra.Command, bs bitstring.BitString, outPath string) error {
	if outPath != "" {
		return a.store.Write(outPath, bs)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), bs)

	return err
}
