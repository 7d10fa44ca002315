package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	timefmt "github.com/goliatone/go-timefmt"
)

// Settings are resolved from flags, TIMEFMT_* environment variables and an
// optional config file, in that order of precedence.
type Settings struct {
	Lang     string `mapstructure:"lang"`
	TZ       string `mapstructure:"tz"`
	Packs    string `mapstructure:"packs"`
	LogLevel string `mapstructure:"log-level"`
}

type app struct {
	v        *viper.Viper
	settings Settings
	logger   *logrus.Logger
	engine   *timefmt.Engine
}

// NewRootCmd builds the timefmt command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), logger: logrus.New()}
	a.logger.SetOutput(errOut)
	a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var configFile string

	root := &cobra.Command{
		Use:           "timefmt",
		Short:         "Render dates with token patterns and language packs.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configFile)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("lang", timefmt.DefaultLanguage, "language pack code")
	flags.String("tz", "", "IANA zone to render in (default: local zone)")
	flags.String("packs", "", "directory holding <code>.{json,yaml,yml,toml} language packs")
	flags.String("log-level", "warning", "log level (debug, info, warning, error)")

	bindFlags(a.v, flags)

	root.AddCommand(
		newRenderCmd(a),
		newFormattersCmd(a),
		newLangCmd(a),
	)

	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix("TIMEFMT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name == "config" {
			return
		}
		_ = v.BindPFlag(flag.Name, flag)
	})
}

func (a *app) setup(configFile string) error {
	if configFile != "" {
		a.v.SetConfigFile(configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	if err := a.v.Unmarshal(&a.settings); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}

	level, err := logrus.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	a.logger.SetLevel(level)

	engine, err := a.buildEngine()
	if err != nil {
		return err
	}
	a.engine = engine
	return nil
}

func (a *app) buildEngine() (*timefmt.Engine, error) {
	opts := []timefmt.Option{
		timefmt.WithLogger(a.logger),
	}

	if a.settings.TZ != "" {
		loc, err := time.LoadLocation(a.settings.TZ)
		if err != nil {
			return nil, fmt.Errorf("load zone %q: %w", a.settings.TZ, err)
		}
		opts = append(opts, timefmt.WithLocation(loc))
	}

	if a.settings.Packs != "" {
		opts = append(opts, timefmt.WithPackDir(a.settings.Packs))
	}

	engine, err := timefmt.New(opts...)
	if err != nil {
		return nil, err
	}

	if a.settings.Lang != "" {
		if got := engine.SetLanguage(a.settings.Lang); got != a.settings.Lang {
			a.logger.WithFields(logrus.Fields{
				"requested": a.settings.Lang,
				"active":    got,
			}).Warn("language pack not available")
		}
	}

	return engine, nil
}
