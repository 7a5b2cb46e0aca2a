package main

import (
	"context"
	"io"
	"os"

	"wcl_rankings/analysis"
	"wcl_rankings/config"
	"wcl_rankings/share"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opt      config.Options
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "wclrank",
		Short:         "Write the top Warcraft Logs rankings of an encounter as a Markdown table",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opt, logLevel, cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opt.EnvFile, "env-file", config.DefaultEnvFile, "env file with WCL_CLIENT_ID and WCL_CLIENT_SECRET")
	flags.StringVar(&opt.ConfigFile, "config", config.DefaultConfigFile, "optional JSON file overriding the encounter query")
	flags.StringVarP(&opt.OutputPath, "out", "o", "", "report path (default rankings.md)")
	flags.StringVar(&logLevel, "log-level", "info", "logrus level")

	return cmd
}

func run(ctx context.Context, opt config.Options, logLevel string, w io.Writer) error {
	if err := share.SetupLog(w, logLevel); err != nil {
		io.WriteString(w, err.Error()+"\n")
		return err
	}

	if err := share.InitSentry(version); err != nil {
		log.WithField("event", "sentry").Warn(err)
	}

	cfg, err := config.Load(opt)
	if err == nil {
		_, err = analysis.Do(ctx, analysis.FromConfig(cfg, share.NewHTTPClient()))
	}
	if err != nil {
		log.WithFields(log.Fields{
			"event": "run",
			"kind":  share.KindName(err),
		}).Error(err)
		log.Debugf("%+v", err)

		if !share.IsContextClosedError(err) {
			share.Capture(err)
		}
		return err
	}

	return nil
}
