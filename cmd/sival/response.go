package main

import (
	"fmt"

	"github.com/katalvlaran/sival/driver"
	"github.com/katalvlaran/sival/enclosure"
	"github.com/katalvlaran/sival/response"
	"github.com/katalvlaran/sival/setup"
	"github.com/spf13/cobra"
)

// responseCommand describes one response subcommand.
type responseCommand struct {
	use   string
	short string
	kind  response.Kind
}

var (
	impedanceCommand = responseCommand{use: "impedance", short: "Closed-box electrical impedance magnitude", kind: response.Impedance}
	splCommand       = responseCommand{use: "spl", short: "Closed-box sound pressure level", kind: response.Spl}
)

// responseOutput is what response subcommands print.
type responseOutput struct {
	Kind   string           `json:"kind" yaml:"kind"`
	Unit   string           `json:"unit" yaml:"unit"`
	Setup  setup.Snapshot   `json:"setup" yaml:"setup"`
	Points []response.Point `json:"points" yaml:"points"`
}

func newResponseCmd(a *app, rc responseCommand) *cobra.Command {
	var (
		role   string
		volume float64
		ql     float64
		count  int
		freqs  []float64
		points int
		format string
	)
	cmd := &cobra.Command{
		Use:   rc.use + " <identifier>",
		Short: rc.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := driver.ParseRole(role)
			if err != nil {
				return err
			}
			if volume <= 0 {
				return fmt.Errorf("--volume must be positive, got %v", volume)
			}

			box := enclosure.NewSealed(volume).WithQL(ql)
			s, err := setup.NewWithEnclosure(a.env, box, setup.WithLogger(a.log))
			if err != nil {
				return err
			}
			if _, err := s.AddDriver(cmd.Context(), r, args[0], count); err != nil {
				return err
			}
			resp, err := s.NewResponse(rc.kind, r)
			if err != nil {
				return err
			}
			s.AddResponse(resp)

			grid := freqs
			if len(grid) == 0 {
				sc := a.cfg.Sweep
				if points > 0 {
					sc.Points = points
				}
				if grid, err = sc.Grid(); err != nil {
					return err
				}
			}
			var sweepOpts []response.SweepOption
			if a.cfg.Sweep.Workers > 0 {
				sweepOpts = append(sweepOpts, response.WithWorkers(a.cfg.Sweep.Workers))
			}
			pts, err := response.Sweep(cmd.Context(), resp, grid, sweepOpts...)
			if err != nil {
				return err
			}

			return emit(cmd.OutOrStdout(), format, responseOutput{
				Kind:   rc.kind.String(),
				Unit:   rc.kind.Unit(),
				Setup:  s.Snapshot(),
				Points: pts,
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&role, "role", "r", "woofer", "driver role key")
	f.Float64Var(&volume, "volume", 20, "net box volume in litres")
	f.Float64Var(&ql, "ql", enclosure.DefaultSealedQL, "box loss factor; <= 0 for lossless")
	f.IntVarP(&count, "count", "n", 1, "number of identical drivers")
	f.Float64SliceVarP(&freqs, "freq", "f", nil, "evaluate only these frequencies (Hz)")
	f.IntVar(&points, "points", 0, "grid size, overriding the configured sweep")
	f.StringVarP(&format, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}
