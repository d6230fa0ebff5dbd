package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dishly/internal/device"
	"dishly/internal/storage"
	"dishly/internal/upload"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newUploadCmd(v *viper.Viper) *cobra.Command {
	var restaurant string

	cmd := &cobra.Command{
		Use:   "upload --restaurant NAME FILE",
		Short: "Upload a menu image or PDF and run extraction",
		Long: `Stores FILE in the menus bucket without overwriting, then calls the
API's menu-scraper function with this device's identity.

Object storage is configured through DISHLY_R2_ENDPOINT, DISHLY_R2_REGION,
DISHLY_R2_ACCESS_KEY and DISHLY_R2_SECRET_KEY. DISHLY_TOKEN, when set, is
sent as the bearer token.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			store, err := storage.NewR2Client(ctx, storage.R2Config{
				Endpoint:  v.GetString("r2-endpoint"),
				Region:    v.GetString("r2-region"),
				AccessKey: v.GetString("r2-access-key"),
				SecretKey: v.GetString("r2-secret-key"),
			})
			if err != nil {
				return err
			}

			var deviceID string
			err = withStore(v, func(s *device.Store) error {
				deviceID, err = s.DeviceID()
				return err
			})
			if err != nil {
				return err
			}

			endpoint := strings.TrimRight(v.GetString("api"), "/") + "/functions/menu-scraper"
			invoker := upload.NewHTTPInvoker(endpoint).WithIdentity(deviceID, v.GetString("token"))

			result, err := upload.NewUploader(store, invoker).Submit(ctx, upload.Submission{
				Restaurant: restaurant,
				Filename:   filepath.Base(args[0]),
				Body:       f,
				UploadedBy: deviceID,
			})
			if err != nil {
				return fmt.Errorf("upload %s: %w", args[0], err)
			}

			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&restaurant, "restaurant", "", "restaurant name")
	_ = cmd.MarkFlagRequired("restaurant")

	for _, key := range []string{"r2-endpoint", "r2-region", "r2-access-key", "r2-secret-key", "token"} {
		cmd.Flags().String(key, "", "")
		_ = v.BindPFlag(key, cmd.Flags().Lookup(key))
	}

	return cmd
}
