package internal

import (
	"errors"
	"log"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goplus/libdecl/decl"
	"github.com/goplus/libdecl/internal/companion"
	"github.com/goplus/libdecl/internal/env"
	"github.com/goplus/libdecl/internal/graph"
)

var (
	cfgFile string
	cfg     env.Config
)

var rootCmd = &cobra.Command{
	Use:   "libdecl",
	Short: "libdecl declares the link dependencies of build components",
	Long: `libdecl runs dependency declarators against a build environment and
prints the registrations they issue.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: <UserConfigDir>/libdecl/config.yaml)")
	flags.String("platform", "", "target platform (default: host platform)")
	flags.String("container", "", "enclosing release name")
	flags.StringP("env", "e", "", "YAML environment snapshot")
	flags.BoolP("verbose", "v", false, "log declaration steps")

	for _, name := range [...]string{"platform", "container", "env", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	// The orchestrator exports the release name as CONTAINERNAME.
	_ = viper.BindEnv("container", "LIBDECL_CONTAINER", "CONTAINERNAME")
}

func initConfig() {
	viper.SetEnvPrefix("LIBDECL")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if dir, err := env.ConfigDir(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("failed to read config: %v", err)
		}
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Printf("failed to decode config: %v", err)
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}

// newEnv returns the registry of known declarators and an environment built
// from the current configuration.
func newEnv() (*decl.Registry, *graph.Env, error) {
	reg := companion.Default()
	e, err := cfg.NewEnv(reg)
	if err != nil {
		return nil, nil, err
	}
	return reg, e, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
