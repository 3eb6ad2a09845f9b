// SPDX-License-Identifier: MIT

package units

// Built-in units. Scales are exact where the definition is exact (inch, foot,
// yard, mile, binary prefixes) and rounded to the usual published digits
// elsewhere (pound, ounce).
var (
	Meter      = NewUnit("m", "meter", Length, 1)
	Kilometer  = NewUnit("km", "kilometer", Length, 1000)
	Centimeter = NewUnit("cm", "centimeter", Length, 0.01)
	Millimeter = NewUnit("mm", "millimeter", Length, 0.001)
	Inch       = NewUnit("in", "inch", Length, 0.0254)
	Foot       = NewUnit("ft", "foot", Length, 0.3048)
	Yard       = NewUnit("yd", "yard", Length, 0.9144)
	Mile       = NewUnit("mi", "mile", Length, 1609.344)

	Kilogram  = NewUnit("kg", "kilogram", Mass, 1)
	Gram      = NewUnit("g", "gram", Mass, 0.001)
	Milligram = NewUnit("mg", "milligram", Mass, 0.000001)
	Pound     = NewUnit("lb", "pound", Mass, 0.453592)
	Ounce     = NewUnit("oz", "ounce", Mass, 0.0283495)
	Tonne     = NewUnit("t", "tonne", Mass, 1000)

	Second      = NewUnit("s", "second", Time, 1)
	Millisecond = NewUnit("ms", "millisecond", Time, 0.001)
	Microsecond = NewUnit("μs", "microsecond", Time, 0.000001)
	Minute      = NewUnit("min", "minute", Time, 60)
	Hour        = NewUnit("h", "hour", Time, 3600)
	Day         = NewUnit("d", "day", Time, 86400)

	Kelvin     = NewUnit("K", "kelvin", Temperature, 1)
	Celsius    = WithOffset("°C", "celsius", Temperature, 1, 273.15)
	Fahrenheit = WithOffset("°F", "fahrenheit", Temperature, 5.0/9.0, 459.67)

	Byte     = NewUnit("B", "byte", Data, 1)
	Kilobyte = NewUnit("KB", "kilobyte", Data, 1e3)
	Megabyte = NewUnit("MB", "megabyte", Data, 1e6)
	Gigabyte = NewUnit("GB", "gigabyte", Data, 1e9)
	Terabyte = NewUnit("TB", "terabyte", Data, 1e12)
	Kibibyte = NewUnit("KiB", "kibibyte", Data, 1024)
	Mebibyte = NewUnit("MiB", "mebibyte", Data, 1048576)
	Gibibyte = NewUnit("GiB", "gibibyte", Data, 1073741824)
)

// Built-in registries, one per category, in display order.
var (
	LengthUnits      = mustRegistry(Meter, Kilometer, Centimeter, Millimeter, Inch, Foot, Yard, Mile)
	MassUnits        = mustRegistry(Kilogram, Gram, Milligram, Pound, Ounce, Tonne)
	TimeUnits        = mustRegistry(Second, Millisecond, Microsecond, Minute, Hour, Day)
	TemperatureUnits = mustRegistry(Kelvin, Celsius, Fahrenheit)
	DataUnits        = mustRegistry(Byte, Kilobyte, Megabyte, Gigabyte, Terabyte, Kibibyte, Mebibyte, Gibibyte)
)

// Builtin returns every built-in unit in one registry: length, mass, time,
// temperature, then data.
func Builtin() *Registry {
	all := make([]Unit, 0, 32)
	for _, r := range []*Registry{LengthUnits, MassUnits, TimeUnits, TemperatureUnits, DataUnits} {
		all = append(all, r.units...)
	}

	return mustRegistry(all...)
}
