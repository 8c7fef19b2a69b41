package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-eqscope/internal/config"
	"github.com/cwbudde/algo-eqscope/internal/logging"
)

// cli carries state shared by all subcommands.
type cli struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "eqscope",
		Short:         "Filter response and spectrum display for a three-band EQ",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("dev", false, "human-readable development logging")
	pf.Float64("sample-rate", 48000, "sample rate in Hz")
	pf.Int("block-size", 512, "processing block size in samples")
	pf.Int("width", 600, "display width in pixels")
	pf.Int("height", 300, "display height in pixels")

	c.bind(pf, "log.level", "log-level")
	c.bind(pf, "log.development", "dev")
	c.bind(pf, "audio.sample_rate", "sample-rate")
	c.bind(pf, "audio.block_size", "block-size")
	c.bind(pf, "ui.width", "width")
	c.bind(pf, "ui.height", "height")

	root.AddCommand(
		newResponseCmd(c),
		newSnapshotCmd(c),
		newLiveCmd(c),
		newWindowsCmd(c),
		newConfigCmd(c),
	)

	return root
}

// bind ties flag to key. An unchanged flag does not override the file or
// environment.
func (c *cli) bind(fs *pflag.FlagSet, key, flag string) {
	if err := c.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(err)
	}
}

func (c *cli) load() error {
	cfg, err := config.Load(c.v, c.configFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger

	if used := c.v.ConfigFileUsed(); used != "" {
		c.logger.Debug("config loaded", zap.String("file", used))
	}

	return nil
}
