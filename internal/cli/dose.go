package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perihelion-works/unbind/internal/config"
	"github.com/perihelion-works/unbind/internal/dose"
	"github.com/perihelion-works/unbind/internal/legacyargs"
)

var doseCmd = &cobra.Command{
	Use:           "unbinddose [E] [eta] [d] [A] [M] [f] [theta_deg] [atmos_trans]",
	Short:         "Radiation dose at a distance from a planetary energy release",
	Long:          "Unbinddose estimates the absorbed radiation dose at a distance from an\nenergy-release event, with upper (overhead) and lower (glancing) bounds.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDose,
}

func init() {
	doseCmd.Flags().Bool("verbose", false, "trace resolved parameters")
	doseCmd.Flags().Float64("energy", 0, "total energy released in J (default 2.49e32)")
	doseCmd.Flags().Float64("eta", 0, "fraction emitted as radiation (default 3e-3)")
	doseCmd.Flags().Float64("distance", 0, "distance in m (default 3.844e8)")
	doseCmd.Flags().Float64("absorbed", 0, "fraction absorbed by tissue (default 0.7)")
	doseCmd.Flags().Float64("mass", 0, "body mass in kg (default 70)")
	doseCmd.Flags().Float64("exposure", 0, "fraction of body exposed (default 1.0)")
	doseCmd.Flags().Float64("theta", 0, "incidence angle in degrees (default 75)")
	doseCmd.Flags().Float64("trans", 0, "atmospheric transmission factor (default 1.0)")
}

// ExecuteDose runs the unbinddose command, exiting 1 on any error. The
// dose calculator itself models no failures; errors can only come from
// the flag parser.
func ExecuteDose() {
	if err := doseCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runDose(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose || cfg.Verbose)

	p := doseParams(cmd, args)
	logger.Debug().
		Float64("energy_j", p.EnergyJ).
		Float64("eta", p.Eta).
		Float64("distance_m", p.DistanceM).
		Float64("theta_deg", p.ThetaDeg).
		Float64("atmos_trans", p.AtmosTrans).
		Msg("parameters resolved")

	printer.Dose(dose.Compute(p), cfg.LethalDoseGy)
	return nil
}

// doseParams resolves defaults, positional arguments, and flag overrides
// in that order. Positionals keep atof semantics and extras beyond the
// eighth are ignored; nothing here can fail.
func doseParams(cmd *cobra.Command, args []string) dose.Params {
	p := dose.Defaults()

	fields := []*float64{
		&p.EnergyJ, &p.Eta, &p.DistanceM, &p.Absorbed,
		&p.BodyMassKg, &p.Exposure, &p.ThetaDeg, &p.AtmosTrans,
	}
	for i, a := range args {
		if i >= len(fields) {
			break
		}
		*fields[i] = legacyargs.Atof(a)
	}

	flagFields := []struct {
		name string
		dst  *float64
	}{
		{"energy", &p.EnergyJ},
		{"eta", &p.Eta},
		{"distance", &p.DistanceM},
		{"absorbed", &p.Absorbed},
		{"mass", &p.BodyMassKg},
		{"exposure", &p.Exposure},
		{"theta", &p.ThetaDeg},
		{"trans", &p.AtmosTrans},
	}
	for _, ff := range flagFields {
		if cmd.Flags().Changed(ff.name) {
			*ff.dst, _ = cmd.Flags().GetFloat64(ff.name)
		}
	}
	return p
}
