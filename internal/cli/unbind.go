// Package cli assembles the cobra command trees for the unbind and
// unbinddose executables: flag surfaces, legacy positional compatibility,
// config resolution, and exit-code mapping.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/perihelion-works/unbind/internal/body"
	"github.com/perihelion-works/unbind/internal/config"
	"github.com/perihelion-works/unbind/internal/kinematics"
	"github.com/perihelion-works/unbind/internal/legacyargs"
	"github.com/perihelion-works/unbind/internal/report"
)

var printer = report.New()

// errReported marks errors already rendered by the printer so Execute
// does not print them a second time.
var errReported = errors.New("reported")

var unbindCmd = &cobra.Command{
	Use:           "unbind",
	Short:         "Impactor size, speed, and mass against a body's binding energy",
	Long:          "Unbind solves the impactor required to deliver a planetary body's gravitational\nbinding energy, with relativistic kinetic energy and atmospheric retention.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUnbindRoot,
}

var massCmd = &cobra.Command{
	Use:     "m <mass_kg> [epsilon] [name] [body] [material]",
	Aliases: []string{"M", "mass"},
	Short:   "Required speed for a given impactor mass",
	Args:    requirePrimary,
	RunE:    runMode(kinematics.ModeMass),
}

var diameterCmd = &cobra.Command{
	Use:     "d <diameter_km> [density] [epsilon] [name] [body] [material]",
	Aliases: []string{"D", "diameter"},
	Short:   "Required speed for a given impactor diameter",
	Args:    requirePrimary,
	RunE:    runMode(kinematics.ModeDiameter),
}

var speedCmd = &cobra.Command{
	Use:     "v <speed_km_s> [density] [epsilon] [name] [body] [material]",
	Aliases: []string{"V", "speed"},
	Short:   "Required impactor mass and size for a given speed",
	Args:    requirePrimary,
	RunE:    runMode(kinematics.ModeSpeed),
}

func init() {
	cobra.OnInitialize(initEnv)

	unbindCmd.PersistentFlags().Bool("verbose", false, "trace classification and solver passes")
	unbindCmd.PersistentFlags().Float64("density", 0, "bulk density in kg/m^3 (default 3000)")
	unbindCmd.PersistentFlags().Float64("epsilon", 0, "coupling efficiency (default 1.0)")
	unbindCmd.PersistentFlags().String("name", "", "object identifier for the report")
	unbindCmd.PersistentFlags().String("body", "", "target body (earth, mars, ..., vacuum)")
	unbindCmd.PersistentFlags().String("material", "", "impactor material (stony, iron, cometary)")

	unbindCmd.AddCommand(massCmd, diameterCmd, speedCmd)
}

// initEnv wires UNBIND_* environment variables into viper. No config file
// is read; the calculators are single-shot.
func initEnv() {
	viper.SetEnvPrefix("UNBIND")
	viper.AutomaticEnv()
}

// ExecuteUnbind runs the unbind command tree, exiting 1 on any error.
func ExecuteUnbind() {
	if err := unbindCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runUnbindRoot(cmd *cobra.Command, args []string) error {
	_ = cmd.Usage()
	return fmt.Errorf("mode required: m, d, or v")
}

// requirePrimary rejects invocations missing the mode's primary value
// with a usage line rather than cobra's generic arg-count message.
func requirePrimary(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: %s", cmd.UseLine())
	}
	return nil
}

func runMode(mode kinematics.Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		fl := readScenarioFlags(cmd)
		logger := newLogger(fl.verbose || cfg.Verbose)

		sc := buildScenario(mode, args, fl, cfg)
		logger.Debug().
			Str("body", sc.Body.String()).
			Str("material", sc.Material.String()).
			Str("object", sc.ObjectName).
			Float64("value", sc.Value).
			Float64("density", sc.Density).
			Float64("epsilon", sc.Epsilon).
			Msg("scenario resolved")
		sc.Trace = func(pass int, diameterKm, retention, massKg float64) {
			logger.Debug().
				Int("pass", pass).
				Float64("diameter_km", diameterKm).
				Float64("retention", retention).
				Float64("mass_kg", massKg).
				Msg("refinement pass")
		}

		res, err := kinematics.Solve(sc)
		if err != nil {
			printer.Error(err.Error())
			return fmt.Errorf("%w: %w", errReported, err)
		}

		printer.Unbind(res)
		return nil
	}
}

// scenarioFlags carries the explicit flag surface; Set fields distinguish
// a flag the user supplied from its zero value so flags always win over
// positionally classified tokens.
type scenarioFlags struct {
	verbose bool

	name, bodyName, materialName string
	density, epsilon             float64

	nameSet, bodySet, materialSet, densitySet, epsilonSet bool
}

func readScenarioFlags(cmd *cobra.Command) scenarioFlags {
	f := cmd.Flags()
	var fl scenarioFlags
	fl.verbose, _ = f.GetBool("verbose")
	fl.name, _ = f.GetString("name")
	fl.nameSet = f.Changed("name")
	fl.bodyName, _ = f.GetString("body")
	fl.bodySet = f.Changed("body")
	fl.materialName, _ = f.GetString("material")
	fl.materialSet = f.Changed("material")
	fl.density, _ = f.GetFloat64("density")
	fl.densitySet = f.Changed("density")
	fl.epsilon, _ = f.GetFloat64("epsilon")
	fl.epsilonSet = f.Changed("epsilon")
	return fl
}

// buildScenario resolves the primary value, legacy positional tokens,
// config defaults, and explicit flags into one scenario. Precedence is
// flags over positionals over config defaults. Numeric parsing keeps
// atof semantics throughout: garbage yields 0 and is rejected later as a
// non-positive input, never as a parse error.
func buildScenario(mode kinematics.Mode, args []string, fl scenarioFlags, cfg config.Config) kinematics.Scenario {
	cls := legacyargs.Classify(args[1:])

	sc := kinematics.Scenario{
		Mode:       mode,
		Value:      legacyargs.Atof(args[0]),
		Density:    cfg.DefaultDensity,
		Epsilon:    cfg.DefaultEpsilon,
		ObjectName: cls.ObjectName,
	}

	// Remaining numerics map positionally: [epsilon] in mass mode,
	// [density] [epsilon] otherwise.
	slot := 0
	if mode != kinematics.ModeMass {
		if len(cls.Numeric) > 0 {
			sc.Density = legacyargs.Atof(cls.Numeric[0])
		}
		slot = 1
	}
	if len(cls.Numeric) > slot {
		sc.Epsilon = legacyargs.Atof(cls.Numeric[slot])
	}

	bodyName := cfg.DefaultBody
	if cls.BodyName != "" {
		bodyName = cls.BodyName
	}
	if fl.bodySet {
		bodyName = fl.bodyName
	}
	materialName := cfg.DefaultMaterial
	if cls.MaterialName != "" {
		materialName = cls.MaterialName
	}
	if fl.materialSet {
		materialName = fl.materialName
	}

	if fl.nameSet {
		sc.ObjectName = fl.name
	}
	if fl.densitySet {
		sc.Density = fl.density
	}
	if fl.epsilonSet {
		sc.Epsilon = fl.epsilon
	}

	sc.BodyName = bodyName
	sc.MaterialName = materialName
	sc.Body = body.ParseBody(bodyName)
	sc.Material = body.ParseMaterial(materialName)
	return sc
}
