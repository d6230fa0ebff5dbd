package main

import (
	"os"
	"path/filepath"
	"strings"

	"dishly/internal/config"
	"dishly/internal/device"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "dishly-device.db"
	}
	return filepath.Join(dir, "dishly", "device.db")
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DISHLY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "dishly",
		Short:         "Dishly client: device stores, menu uploads and map helpers",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.SetupLogging("development", v.GetString("log-level"))
			logrus.SetOutput(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.String("store", defaultStorePath(), "device store file (SQLite)")
	flags.String("api", "http://localhost:8000", "Dishly API base url")
	flags.String("log-level", "warn", "log level")
	_ = v.BindPFlags(flags)

	root.AddCommand(
		newDeviceCmd(v),
		newSavedCmd(v),
		newRecentCmd(v),
		newReviewCmd(v),
		newUploadCmd(v),
		newDistanceCmd(),
		newSeedCmd(v),
	)

	return root
}

// withStore opens the device store for the duration of fn.
func withStore(v *viper.Viper, fn func(*device.Store) error) error {
	path := v.GetString("store")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	kv, err := device.OpenSQLiteKV(path)
	if err != nil {
		return err
	}
	defer kv.Close()

	return fn(device.NewStore(kv))
}
