package main

import (
	"fmt"

	"github.com/katalvlaran/sival/compare"
	"github.com/katalvlaran/sival/driver"
	"github.com/katalvlaran/sival/enclosure"
	"github.com/katalvlaran/sival/response"
	"github.com/spf13/cobra"
)

// compareOutput is what the compare subcommand prints.
type compareOutput struct {
	Kind   string         `json:"kind" yaml:"kind"`
	A      string         `json:"a" yaml:"a"`
	B      string         `json:"b" yaml:"b"`
	Result compare.Result `json:"result" yaml:"result"`
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		kind    string
		volume  float64
		window  int
		penalty float64
		path    bool
		format  string
	)
	cmd := &cobra.Command{
		Use:   "compare <identifier-a> <identifier-b>",
		Short: "Compare the closed-box curves of two drivers with dynamic time warping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := response.ParseKind(kind)
			if err != nil {
				return err
			}
			if volume <= 0 {
				return fmt.Errorf("--volume must be positive, got %v", volume)
			}
			grid, err := a.cfg.Sweep.Grid()
			if err != nil {
				return err
			}

			curves := make([][]response.Point, 2)
			for i, id := range args {
				data, err := a.env.Resolve(cmd.Context(), id)
				if err != nil {
					return err
				}
				d, err := driver.CreateAny(data)
				if err != nil {
					return fmt.Errorf("%s: %w", id, err)
				}
				box := enclosure.NewSealed(volume)
				var r response.Response = response.NewSealedImpedance(d, box, response.WithMedium(a.env))
				if k == response.Spl {
					r = response.NewSealedSPL(d, box, response.WithMedium(a.env))
				}
				if curves[i], err = response.Sweep(cmd.Context(), r, grid); err != nil {
					return err
				}
			}

			opts := compare.Options{Window: window, SlopePenalty: penalty, ReturnPath: path}
			res, err := compare.Curves(curves[0], curves[1], &opts)
			if err != nil {
				return err
			}

			return emit(cmd.OutOrStdout(), format, compareOutput{Kind: k.String(), A: args[0], B: args[1], Result: res})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&kind, "kind", "k", "impedance", "curve to compare: impedance or spl")
	f.Float64Var(&volume, "volume", 20, "net box volume in litres")
	f.IntVar(&window, "window", -1, "maximum alignment offset in grid steps; -1 for none")
	f.Float64Var(&penalty, "slope-penalty", 0, "cost added to every stretching step")
	f.BoolVar(&path, "path", false, "include the alignment path")
	f.StringVarP(&format, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}
