package main

import (
	"github.com/katalvlaran/sival/driver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDeriveCmd(a *app) *cobra.Command {
	var (
		role   string
		strict bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "derive <identifier>",
		Short: "Complete a driver record and print the SI parameter set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.env.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var opts []driver.Option
			if strict {
				opts = append(opts, driver.WithStrictUnits(), driver.WithStrictNumerics())
			}

			var d *driver.Driver
			if role == "" {
				d, err = driver.CreateAny(data, opts...)
			} else {
				var r driver.Role
				if r, err = driver.ParseRole(role); err != nil {
					return err
				}
				d, err = driver.Create(r, data, opts...)
			}
			if err != nil {
				return err
			}
			a.log.Debug("driver derived", zap.String("identifier", args[0]), zap.Int("derived", len(d.Derived())))

			return emit(cmd.OutOrStdout(), format, d.Summary())
		},
	}
	cmd.Flags().StringVarP(&role, "role", "r", "", "expected role key (subwoofer, woofer, midrange, tweeter, fullrange)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unknown units and numeric guards")
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}
