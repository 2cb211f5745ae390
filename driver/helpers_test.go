package driver_test

import "github.com/katalvlaran/sival/driver"

// newRecord returns a complete record with no derivable parameters:
// Fs=40 Hz, Mms=15 g, Re=6 Ω, Bl=7.5 T·m, Qms=3.5, Sd=0.02 m².
func newRecord() *driver.Record {
	return &driver.Record{
		GeneralInfo: &driver.GeneralInfo{
			UUID:         driver.Text("4f7d3c1e-9a52-4b8e-8f11-2c6a0d9e5b73"),
			Brand:        driver.Text("Acme"),
			Manufacturer: driver.Text("Acme Audio GmbH"),
			ProvidedBy:   driver.Text("datasheet"),
			Comment:      driver.Text(""),
			Model:        driver.Text("AW-200"),
			Indexed:      driver.Flag(true),
			SpeakerType:  "Woofer",
		},
		ElectricalParameters: &driver.ElectricalParameters{
			Impedance:     driver.Q(8, "Ohm"),
			Re:            driver.Q(6, "Ohm"),
			Le:            driver.Q(0.0005, "H"),
			Znom:          driver.Q(8, "Ohm"),
			Pe:            driver.Q(60, "W"),
			Pmax:          driver.Q(120, "W"),
			Bl:            driver.Q(7.5, "Tm"),
			MotorConstant: driver.Q(3.06, "N/sqrt(W)"),
			FluxDensity:   driver.Q(1.1, "T"),
		},
		ThieleSmall: &driver.ThieleSmallParameters{
			Fs:  driver.Q(40, "Hz"),
			Qms: driver.Q(3.5, ""),
			Mms: driver.Q(0.015, "kg"),
			Mmd: driver.Q(13.2, "g"),
			Rms: driver.Q(1.08, "kg/s"),
			Sd:  driver.Q(0.02, "m2"),
		},
		PhysicalDimensions: &driver.PhysicalDimensions{
			NominalDiameter:      driver.Text("8 in"),
			VCDiameter:           driver.Q(38, "mm"),
			WindingHeight:        driver.Q(14, "mm"),
			AirGapHeight:         driver.Q(6, "mm"),
			EffectiveDiameter:    driver.Q(16, "cm"),
			BaffleCutoutDiameter: driver.Q(18.4, "cm"),
			VolumeOccupied:       driver.Q(1.2, "L"),
			NetWeight:            driver.Q(2.4, "kg"),
			Material:             driver.Text("paper"),
		},
	}
}
