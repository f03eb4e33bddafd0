package engine

import "strings"

// MeasureClass is the physical quantity category of a unit. Conversion is
// only ever attempted between units of the same class; volume→mass would
// need an ingredient density, which this engine deliberately does not model.
type MeasureClass string

const (
	ClassMass        MeasureClass = "mass"
	ClassVolume      MeasureClass = "volume"
	ClassTemperature MeasureClass = "temperature"
	ClassCount       MeasureClass = "count"
)

// UnitSystem identifies the measurement system a unit belongs to.
type UnitSystem string

const (
	SystemMetric   UnitSystem = "metric"
	SystemImperial UnitSystem = "imperial"
	// SystemNeutral covers count-like units that belong to no system.
	SystemNeutral UnitSystem = "neutral"
)

// CanonicalUnit is the single normalized identifier a family of unit
// synonyms maps to.
type CanonicalUnit string

const (
	// Mass
	UnitMilligram CanonicalUnit = "milligram"
	UnitGram      CanonicalUnit = "gram"
	UnitKilogram  CanonicalUnit = "kilogram"
	UnitOunce     CanonicalUnit = "ounce"
	UnitPound     CanonicalUnit = "pound"

	// Volume
	UnitMilliliter CanonicalUnit = "milliliter"
	UnitDeciliter  CanonicalUnit = "deciliter"
	UnitLiter      CanonicalUnit = "liter"
	UnitTeaspoon   CanonicalUnit = "teaspoon"
	UnitTablespoon CanonicalUnit = "tablespoon"
	UnitFluidOunce CanonicalUnit = "fluid_ounce"
	UnitCup        CanonicalUnit = "cup"
	UnitPint       CanonicalUnit = "pint"
	UnitQuart      CanonicalUnit = "quart"
	UnitGallon     CanonicalUnit = "gallon"

	// Temperature
	UnitCelsius    CanonicalUnit = "celsius"
	UnitFahrenheit CanonicalUnit = "fahrenheit"

	// Count
	UnitPiece   CanonicalUnit = "piece"
	UnitClove   CanonicalUnit = "clove"
	UnitCan     CanonicalUnit = "can"
	UnitSlice   CanonicalUnit = "slice"
	UnitBunch   CanonicalUnit = "bunch"
	UnitStick   CanonicalUnit = "stick"
	UnitPackage CanonicalUnit = "package"
	UnitPinch   CanonicalUnit = "pinch"
)

type unitDef struct {
	Class  MeasureClass
	System UnitSystem
	// factor converts one of this unit to the class base (grams for mass,
	// milliliters for volume). Unused for temperature and count.
	factor float64
}

// Culinary approximations, not laboratory constants: 1 cup ≈ 236.588 ml,
// 1 kg = 2.20462 lb.
var unitDefs = map[CanonicalUnit]unitDef{
	UnitMilligram: {ClassMass, SystemMetric, 0.001},
	UnitGram:      {ClassMass, SystemMetric, 1},
	UnitKilogram:  {ClassMass, SystemMetric, 1000},
	UnitOunce:     {ClassMass, SystemImperial, 28.3495},
	UnitPound:     {ClassMass, SystemImperial, 453.592},

	UnitMilliliter: {ClassVolume, SystemMetric, 1},
	UnitDeciliter:  {ClassVolume, SystemMetric, 100},
	UnitLiter:      {ClassVolume, SystemMetric, 1000},
	UnitTeaspoon:   {ClassVolume, SystemImperial, 4.92892},
	UnitTablespoon: {ClassVolume, SystemImperial, 14.7868},
	UnitFluidOunce: {ClassVolume, SystemImperial, 29.5735},
	UnitCup:        {ClassVolume, SystemImperial, 236.588},
	UnitPint:       {ClassVolume, SystemImperial, 473.176},
	UnitQuart:      {ClassVolume, SystemImperial, 946.353},
	UnitGallon:     {ClassVolume, SystemImperial, 3785.41},

	UnitCelsius:    {ClassTemperature, SystemMetric, 0},
	UnitFahrenheit: {ClassTemperature, SystemImperial, 0},

	UnitPiece:   {ClassCount, SystemNeutral, 0},
	UnitClove:   {ClassCount, SystemNeutral, 0},
	UnitCan:     {ClassCount, SystemNeutral, 0},
	UnitSlice:   {ClassCount, SystemNeutral, 0},
	UnitBunch:   {ClassCount, SystemNeutral, 0},
	UnitStick:   {ClassCount, SystemNeutral, 0},
	UnitPackage: {ClassCount, SystemNeutral, 0},
	UnitPinch:   {ClassCount, SystemNeutral, 0},
}

// unitSynonyms maps every observed spelling, plural and abbreviation
// (lower-cased, trimmed) to its canonical unit. Unknown strings stay unknown.
var unitSynonyms = map[string]CanonicalUnit{
	"mg": UnitMilligram, "milligram": UnitMilligram, "milligrams": UnitMilligram,
	"g": UnitGram, "gr": UnitGram, "gram": UnitGram, "grams": UnitGram,
	"kg": UnitKilogram, "kilo": UnitKilogram, "kilos": UnitKilogram,
	"kilogram": UnitKilogram, "kilograms": UnitKilogram,
	"oz": UnitOunce, "ounce": UnitOunce, "ounces": UnitOunce,
	"lb": UnitPound, "lbs": UnitPound, "pound": UnitPound, "pounds": UnitPound,

	"ml": UnitMilliliter, "milliliter": UnitMilliliter, "milliliters": UnitMilliliter,
	"millilitre": UnitMilliliter, "millilitres": UnitMilliliter, "cc": UnitMilliliter,
	"dl": UnitDeciliter, "deciliter": UnitDeciliter, "deciliters": UnitDeciliter,
	"l": UnitLiter, "liter": UnitLiter, "liters": UnitLiter,
	"litre": UnitLiter, "litres": UnitLiter,
	"tsp": UnitTeaspoon, "tsps": UnitTeaspoon, "teaspoon": UnitTeaspoon, "teaspoons": UnitTeaspoon,
	"tbsp": UnitTablespoon, "tbsps": UnitTablespoon, "tbs": UnitTablespoon,
	"tablespoon": UnitTablespoon, "tablespoons": UnitTablespoon,
	"fl oz": UnitFluidOunce, "floz": UnitFluidOunce, "fl. oz": UnitFluidOunce,
	"fluid ounce": UnitFluidOunce, "fluid ounces": UnitFluidOunce,
	"cup": UnitCup, "cups": UnitCup, "c": UnitCup,
	"pt": UnitPint, "pint": UnitPint, "pints": UnitPint,
	"qt": UnitQuart, "quart": UnitQuart, "quarts": UnitQuart,
	"gal": UnitGallon, "gallon": UnitGallon, "gallons": UnitGallon,

	"celsius": UnitCelsius, "°c": UnitCelsius, "degrees c": UnitCelsius,
	"fahrenheit": UnitFahrenheit, "°f": UnitFahrenheit, "degrees f": UnitFahrenheit,

	"piece": UnitPiece, "pieces": UnitPiece, "pc": UnitPiece, "pcs": UnitPiece,
	"clove": UnitClove, "cloves": UnitClove,
	"can": UnitCan, "cans": UnitCan, "tin": UnitCan, "tins": UnitCan,
	"slice": UnitSlice, "slices": UnitSlice,
	"bunch": UnitBunch, "bunches": UnitBunch,
	"stick": UnitStick, "sticks": UnitStick,
	"package": UnitPackage, "packages": UnitPackage, "pkg": UnitPackage, "pack": UnitPackage,
	"pinch": UnitPinch, "pinches": UnitPinch, "dash": UnitPinch,
}

// ToCanonical resolves a raw unit string to its canonical unit.
func ToCanonical(raw string) (CanonicalUnit, bool) {
	u, ok := unitSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return u, ok
}

// Class returns the measure class of a canonical unit; ok is false for
// units absent from the table.
func (u CanonicalUnit) Class() (MeasureClass, bool) {
	def, ok := unitDefs[u]
	return def.Class, ok
}

// Compatible reports whether two canonical units share a measure class.
func Compatible(a, b CanonicalUnit) bool {
	da, okA := unitDefs[a]
	db, okB := unitDefs[b]
	return okA && okB && da.Class == db.Class
}

// Convert converts a value between two canonical units. It fails for
// unknown units, cross-class pairs, and distinct count units (a clove is
// not a fixed number of cans; count units only convert to themselves).
func Convert(value float64, from, to CanonicalUnit) (float64, bool) {
	df, okF := unitDefs[from]
	dt, okT := unitDefs[to]
	if !okF || !okT || df.Class != dt.Class {
		return 0, false
	}
	if from == to {
		return value, true
	}
	switch df.Class {
	case ClassTemperature:
		if from == UnitCelsius {
			return value*9/5 + 32, true
		}
		return (value - 32) * 5 / 9, true
	case ClassCount:
		return 0, false
	default:
		return value * df.factor / dt.factor, true
	}
}

// preferredUnits names the system-preferred display unit per measure class.
var preferredUnits = map[UnitSystem]map[MeasureClass]CanonicalUnit{
	SystemMetric: {
		ClassMass:        UnitGram,
		ClassVolume:      UnitMilliliter,
		ClassTemperature: UnitCelsius,
	},
	SystemImperial: {
		ClassMass:        UnitOunce,
		ClassVolume:      UnitCup,
		ClassTemperature: UnitFahrenheit,
	},
}

// ConvertToSystem converts a value into the target system's preferred unit
// for its measure class. Units already in the target system, count units
// and unknown units pass through unchanged.
func ConvertToSystem(value float64, unit CanonicalUnit, target UnitSystem) (float64, CanonicalUnit) {
	def, ok := unitDefs[unit]
	if !ok || def.System == target || def.System == SystemNeutral {
		return value, unit
	}
	want, ok := preferredUnits[target][def.Class]
	if !ok {
		return value, unit
	}
	converted, ok := Convert(value, unit, want)
	if !ok {
		return value, unit
	}
	return converted, want
}
