// ABOUTME: Shared design input flags for calculate, compare, and check
// ABOUTME: Resolves flags on top of defaults or a design file into DesignInputs

package cmd

import (
	"github.com/spf13/pflag"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/cli/internal/designfile"
)

// designFlags binds one design's inputs to a flag set. A non-empty prefix
// (e.g. "to-") registers the what-if variant of every flag.
type designFlags struct {
	prefix string

	file       string
	prop       float64
	weight     float64
	thrust     float64
	rotors     int
	voltage    float64
	capacity   float64
	kv         float64
	electrical bool
}

// register adds the design flags to fs. withFile adds --file for loading a base design.
func (f *designFlags) register(fs *pflag.FlagSet, prefix string, withFile bool) {
	f.prefix = prefix
	desc := func(s string) string {
		if prefix != "" {
			return "Proposed " + s
		}
		return s
	}

	if withFile {
		fs.StringVar(&f.file, prefix+"file", "", desc("design file (JSON or YAML) to start from"))
	}
	fs.Float64Var(&f.prop, prefix+"prop", models.DefaultPropellerDiameterInches, desc("propeller diameter in inches"))
	fs.Float64Var(&f.weight, prefix+"weight", models.DefaultDroneWeightGrams, desc("all-up drone weight in grams"))
	fs.Float64Var(&f.thrust, prefix+"thrust", models.DefaultThrustPerMotorGrams, desc("thrust per motor in grams"))
	fs.IntVar(&f.rotors, prefix+"rotors", models.DefaultRotorCount, desc("rotor count (4, 6, or 8)"))
	fs.Float64Var(&f.voltage, prefix+"voltage", models.DefaultBatteryVoltage, desc("battery voltage in volts"))
	fs.Float64Var(&f.capacity, prefix+"capacity", models.DefaultBatteryCapacityMilliampHours, desc("battery capacity in mAh"))
	fs.Float64Var(&f.kv, prefix+"kv", models.DefaultMotorKV, desc("motor KV rating"))
	fs.BoolVar(&f.electrical, prefix+"electrical", false, desc("include electrical estimates using default or given ratings"))
}

// resolve builds the design from base, a design file if given, and every flag
// the user set explicitly. Electrical inputs are included when --electrical or
// any electrical flag is set, or when the base already carries them.
func (f *designFlags) resolve(fs *pflag.FlagSet, base models.DesignInputs) (models.DesignInputs, error) {
	in := base.Clone()
	if f.file != "" {
		loaded, err := designfile.Load(f.file)
		if err != nil {
			return models.DesignInputs{}, err
		}
		in = loaded
	}

	changed := func(name string) bool {
		return fs.Changed(f.prefix + name)
	}

	if changed("prop") {
		in.PropellerDiameterInches = f.prop
	}
	if changed("weight") {
		in.DroneWeightGrams = f.weight
	}
	if changed("thrust") {
		in.ThrustPerMotorGrams = f.thrust
	}
	if changed("rotors") {
		in.RotorCount = f.rotors
	}

	wantElectrical := f.electrical || changed("voltage") || changed("capacity") || changed("kv")
	if wantElectrical && in.Electrical == nil {
		in.Electrical = models.DefaultElectrical()
	}
	if in.Electrical != nil {
		if changed("voltage") {
			in.Electrical.BatteryVoltage = f.voltage
		}
		if changed("capacity") {
			in.Electrical.BatteryCapacityMilliampHours = f.capacity
		}
		if changed("kv") {
			in.Electrical.MotorKV = f.kv
		}
	}

	in.ApplyDefaults()
	return in, nil
}

// basicDefaults is the default design without the electrical block
func basicDefaults() models.DesignInputs {
	in := models.DefaultInputs()
	in.Electrical = nil
	return in
}
