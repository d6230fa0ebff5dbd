package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dishly/internal/db"
	"dishly/internal/extract"
	"dishly/internal/restaurant"
	"dishly/internal/textnorm"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
)

type restaurantCreator interface {
	Create(ctx context.Context, r *restaurant.Restaurant) error
}

// seeder loads a local restaurants file of the form
// [{name, address, city, state, menus: [{section, items: [{name, description, price}]}]}].
type seeder struct {
	restaurants restaurantCreator
	catalogue   extract.Repository
}

type seedCounts struct {
	Restaurants int
	Items       int
	Inserted    int
}

func optionalString(r gjson.Result) *string {
	if r.Type != gjson.String || r.String() == "" {
		return nil
	}
	s := r.String()
	return &s
}

func (s *seeder) seed(ctx context.Context, raw []byte) (seedCounts, error) {
	var counts seedCounts

	if !gjson.ValidBytes(raw) {
		return counts, errors.New("seed file is not valid JSON")
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return counts, errors.New("seed file must hold an array of restaurants")
	}

	for _, r := range doc.Array() {
		name := r.Get("name").String()
		if name == "" {
			continue
		}

		err := s.restaurants.Create(ctx, &restaurant.Restaurant{
			Name:    name,
			Address: optionalString(r.Get("address")),
			City:    optionalString(r.Get("city")),
			State:   optionalString(r.Get("state")),
		})
		if err != nil && !errors.Is(err, restaurant.ErrNameTaken) {
			logrus.WithError(err).WithField("restaurant", name).Warn("seed: restaurant skipped")
			continue
		}

		rest, err := s.catalogue.FindOrCreateRestaurant(ctx, name)
		if err != nil {
			logrus.WithError(err).WithField("restaurant", name).Warn("seed: restaurant skipped")
			continue
		}
		counts.Restaurants++

		for _, menu := range r.Get("menus").Array() {
			var tags []string
			if section := menu.Get("section").String(); section != "" {
				tags = []string{section}
			}

			for _, it := range menu.Get("items").Array() {
				itemName := it.Get("name").String()
				if itemName == "" {
					continue
				}

				var price *float64
				if p := it.Get("price"); p.Type == gjson.Number {
					v := p.Float()
					price = &v
				}

				inserted, err := s.catalogue.UpsertFoodItem(ctx, extract.FoodItemUpsert{
					Name:          itemName,
					CanonicalName: textnorm.CanonicalName(itemName),
					RestaurantID:  rest.ID,
					Description:   optionalString(it.Get("description")),
					Price:         price,
					Tags:          tags,
				})
				if err != nil {
					return counts, fmt.Errorf("seed %s / %s: %w", name, itemName, err)
				}

				counts.Items++
				if inserted {
					counts.Inserted++
				}
			}
		}
	}

	return counts, nil
}

func newSeedCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed FILE.json",
		Short: "Load restaurants and menu items from a local JSON file into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := v.GetString("database-url")
			if dsn == "" {
				return errors.New("--database-url (or DISHLY_DATABASE_URL) is required")
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := db.Migrate(dsn); err != nil {
				return err
			}
			pool, err := db.Connect(ctx, dsn)
			if err != nil {
				return err
			}
			defer pool.Close()

			s := &seeder{
				restaurants: restaurant.NewPostgresRepository(pool),
				catalogue:   extract.NewPostgresRepository(pool),
			}
			counts, err := s.seed(ctx, raw)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d restaurants, %d items (%d new)\n",
				counts.Restaurants, counts.Items, counts.Inserted)
			return nil
		},
	}

	cmd.Flags().String("database-url", "", "Postgres connection string")
	_ = v.BindPFlag("database-url", cmd.Flags().Lookup("database-url"))

	return cmd
}
