package main

import (
	"fmt"

	"dishly/internal/geo"

	"github.com/spf13/cobra"
)

func newDistanceCmd() *cobra.Command {
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "distance RESTAURANT [FROM_RESTAURANT]",
		Short: "Miles to a restaurant from --lat/--lng or from another restaurant",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := geo.ApproximateCoordinates(args[0])

			var from *geo.LatLng
			switch {
			case len(args) == 2:
				from = geo.ApproximateCoordinates(args[1])
			case cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng"):
				from = &geo.LatLng{Lat: lat, Lng: lng}
			default:
				return fmt.Errorf("give a second restaurant or both --lat and --lng")
			}

			if to == nil || from == nil {
				return fmt.Errorf("restaurant names must not be blank")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%.2f mi\n", geo.HaversineMiles(*from, *to))
			fmt.Fprintln(out, geo.DirectionsLink(args[0]))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "origin latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "origin longitude")
	return cmd
}
