package main

import (
	"encoding/json"
	"fmt"

	"dishly/internal/device"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newDeviceCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{Use: "device", Short: "Device identity"}

	cmd.AddCommand(&cobra.Command{
		Use:   "id",
		Short: "Print this device's id, creating it on first use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(v, func(s *device.Store) error {
				id, err := s.DeviceID()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	})

	return cmd
}

func newSavedCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{Use: "saved", Short: "Foods saved on this device"}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved food ids",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(v, func(s *device.Store) error {
					ids, err := s.SavedIDs()
					if err != nil {
						return err
					}
					return printJSON(cmd, ids)
				})
			},
		},
		&cobra.Command{
			Use:   "toggle FOOD_ID",
			Short: "Save or unsave a food",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(v, func(s *device.Store) error {
					saved, err := s.ToggleSaved(args[0])
					if err != nil {
						return err
					}
					if saved {
						fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
					}
					return nil
				})
			},
		},
	)

	return cmd
}

func newRecentCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{Use: "recent", Short: "Recently viewed foods"}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recently viewed food ids, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(v, func(s *device.Store) error {
					ids, err := s.RecentIDs()
					if err != nil {
						return err
					}
					return printJSON(cmd, ids)
				})
			},
		},
		&cobra.Command{
			Use:   "push FOOD_ID",
			Short: "Record a food as viewed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(v, func(s *device.Store) error {
					return s.PushRecent(args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget the recently viewed list",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(v, func(s *device.Store) error {
					return s.ClearRecent()
				})
			},
		},
	)

	return cmd
}

func newReviewCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{Use: "review", Short: "Reviews kept on this device"}

	var rating int
	var text string
	add := &cobra.Command{
		Use:   "add FOOD_ID",
		Short: "Write a local review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rating < 1 || rating > 5 {
				return fmt.Errorf("--rating must be between 1 and 5")
			}

			var body *string
			if text != "" {
				body = &text
			}

			return withStore(v, func(s *device.Store) error {
				r, err := s.AddLocalReview(args[0], rating, body)
				if err != nil {
					return err
				}
				return printJSON(cmd, r)
			})
		},
	}
	add.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5")
	add.Flags().StringVar(&text, "text", "", "review text")
	_ = add.MarkFlagRequired("rating")

	var foodID, userID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List local reviews for a food, or by a user (default: this device)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(v, func(s *device.Store) error {
				var (
					reviews []device.LocalReview
					err     error
				)
				if foodID != "" {
					reviews, err = s.LocalReviewsByFood(foodID)
				} else {
					reviews, err = s.LocalReviewsByUser(userID)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd, reviews)
			})
		},
	}
	list.Flags().StringVar(&foodID, "food", "", "food id")
	list.Flags().StringVar(&userID, "user", "", "user id")

	cmd.AddCommand(add, list)
	return cmd
}
