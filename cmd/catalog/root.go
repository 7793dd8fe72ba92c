package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"vastuguru-api/config"
	"vastuguru-api/internal/domain/catalog"
	"vastuguru-api/internal/domain/services"

	"github.com/spf13/cobra"
)

type options struct {
	tiersPath string
	locale    string
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Classify prices and build pricing catalogs offline",
		Long: `catalog applies the same tier thresholds and price formatting as the API
to local data, which is handy when checking a new tier file before deploying it.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.tiersPath, "tiers", "", "YAML tier config (defaults when empty)")
	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", catalog.DefaultLocale, "locale used to format prices")

	rootCmd.AddCommand(newClassifyCommand(opts))
	rootCmd.AddCommand(newBuildCommand(opts))
	return rootCmd
}

func (o *options) builder() (*catalog.Builder, error) {
	tiers, err := config.LoadTierConfig(o.tiersPath)
	if err != nil {
		return nil, err
	}
	f, err := catalog.NewPriceFormatter(o.locale)
	if err != nil {
		return nil, err
	}
	return catalog.NewBuilder(tiers.Thresholds, f)
}

func newClassifyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <price>",
		Short: "Print the tier and formatted price for a whole-rupee amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a whole number", catalog.ErrInvalidPrice, args[0])
			}
			b, err := opts.builder()
			if err != nil {
				return err
			}
			tier, err := b.Classify(price)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tier, b.FormatPrice(price))
			return nil
		},
	}
}

// serviceInput accepts the GET /services record shape. Price is a pointer
// so a missing price is reported instead of read as zero.
type serviceInput struct {
	ID          string   `json:"_id"`
	Price       *int64   `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

func newBuildCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build [services.json]",
		Short: "Build the ordered plan list from a JSON array of services (stdin when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			svcs, err := decodeServices(r)
			if err != nil {
				return err
			}
			b, err := opts.builder()
			if err != nil {
				return err
			}
			plans, err := b.Build(svcs)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(plans)
		},
	}
}

func decodeServices(r io.Reader) ([]services.Service, error) {
	var in []serviceInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "price" {
			return nil, fmt.Errorf("decode services: %w: price is %s", catalog.ErrInvalidPrice, typeErr.Value)
		}
		return nil, fmt.Errorf("decode services: %w", err)
	}

	out := make([]services.Service, 0, len(in))
	for i, s := range in {
		if s.Price == nil {
			return nil, fmt.Errorf("service %d (%s): %w: missing price", i, s.ID, catalog.ErrInvalidPrice)
		}
		out = append(out, services.Service{
			ID:          s.ID,
			Price:       *s.Price,
			Description: s.Description,
			Features:    s.Features,
		})
	}
	return out, nil
}
