package chem

import "fmt"

// Isotope is a specific nuclide: an element plus a mass number.
type Isotope struct {
	Element    Element
	MassNumber uint16
}

// Deuterium and Tritium have dedicated single-letter spellings in formulas.
var (
	Deuterium = Isotope{Hydrogen, 2}
	Tritium   = Isotope{Hydrogen, 3}
)

// Exact isotopic masses in daltons, keyed by mass number, for the elements
// that commonly appear isotopically labeled in compound databases. Pairs
// absent from this table are rejected by NewIsotope.
var isotopeMasses = map[Element]map[uint16]float64{
	Hydrogen:   {1: 1.007825, 2: 2.014102, 3: 3.016049},
	Helium:     {3: 3.016029, 4: 4.002602},
	Lithium:    {6: 6.015123, 7: 7.016003},
	Beryllium:  {9: 9.012183},
	Boron:      {10: 10.012937, 11: 11.009305},
	Carbon:     {12: 12.000000, 13: 13.003355, 14: 14.003242},
	Nitrogen:   {14: 14.003074, 15: 15.000109},
	Oxygen:     {16: 15.994915, 17: 16.999132, 18: 17.999160},
	Fluorine:   {18: 18.000938, 19: 18.998403},
	Neon:       {20: 19.992440, 21: 20.993847, 22: 21.991385},
	Sodium:     {22: 21.994437, 23: 22.989769},
	Magnesium:  {24: 23.985042, 25: 24.985837, 26: 25.982593},
	Aluminium:  {26: 25.986892, 27: 26.981538},
	Silicon:    {28: 27.976927, 29: 28.976495, 30: 29.973770},
	Phosphorus: {31: 30.973762, 32: 31.973908, 33: 32.971726},
	Sulfur:     {32: 31.972071, 33: 32.971459, 34: 33.967867, 35: 34.969032, 36: 35.967081},
	Chlorine:   {35: 34.968853, 36: 35.968307, 37: 36.965903},
	Argon:      {36: 35.967545, 38: 37.962732, 40: 39.962383},
	Potassium:  {39: 38.963706, 40: 39.963998, 41: 40.961825},
	Calcium:    {40: 39.962591, 42: 41.958618, 43: 42.958766, 44: 43.955482, 46: 45.953688, 48: 47.952523},
	Chromium:   {50: 49.946042, 52: 51.940506, 53: 52.940648, 54: 53.938879},
	Manganese:  {55: 54.938044},
	Iron:       {54: 53.939609, 56: 55.934936, 57: 56.935393, 58: 57.933274},
	Cobalt:     {59: 58.933194, 60: 59.933816},
	Nickel:     {58: 57.935342, 60: 59.930786, 61: 60.931056, 62: 61.928345, 64: 63.927967},
	Copper:     {63: 62.929597, 65: 64.927790},
	Zinc:       {64: 63.929142, 66: 65.926034, 67: 66.927128, 68: 67.924845, 70: 69.925319},
	Gallium:    {69: 68.925574, 71: 70.924703},
	Arsenic:    {75: 74.921595},
	Selenium:   {74: 73.922476, 76: 75.919214, 77: 76.919914, 78: 77.917309, 80: 79.916522, 82: 81.916700},
	Bromine:    {79: 78.918338, 81: 80.916290},
	Krypton:    {78: 77.920365, 80: 79.916378, 82: 81.913483, 83: 82.914127, 84: 83.911498, 86: 85.910611},
	Rubidium:   {85: 84.911790, 87: 86.909181},
	Strontium:  {84: 83.913419, 86: 85.909261, 87: 86.908878, 88: 87.905613},
	Molybdenum: {92: 91.906808, 94: 93.905085, 95: 94.905839, 96: 95.904676, 97: 96.906018, 98: 97.905405, 100: 99.907472},
	Silver:     {107: 106.905092, 109: 108.904756},
	Cadmium:    {106: 105.906460, 110: 109.903007, 111: 110.904183, 112: 111.902763, 113: 112.904408, 114: 113.903365, 116: 115.904763},
	Tin:        {112: 111.904824, 116: 115.901743, 117: 116.902954, 118: 117.901607, 119: 118.903311, 120: 119.902202, 122: 121.903444, 124: 123.905277},
	Iodine:     {123: 122.905589, 125: 124.904630, 127: 126.904472, 129: 128.904984, 131: 130.906126},
	Xenon:      {128: 127.903531, 129: 128.904781, 130: 129.903509, 131: 130.905084, 132: 131.904155, 134: 133.905395, 136: 135.907214},
	Caesium:    {133: 132.905452, 134: 133.906719, 137: 136.907089},
	Barium:     {134: 133.904508, 135: 134.905689, 136: 135.904576, 137: 136.905827, 138: 137.905247},
	Tungsten:   {180: 179.946711, 182: 181.948204, 183: 182.950223, 184: 183.950931, 186: 185.954364},
	Platinum:   {192: 191.961039, 194: 193.962681, 195: 194.964792, 196: 195.964952, 198: 197.967893},
	Gold:       {197: 196.966570},
	Mercury:    {196: 195.965833, 198: 197.966769, 199: 198.968281, 200: 199.968327, 201: 200.970303, 202: 201.970643, 204: 203.973494},
	Thallium:   {203: 202.972345, 205: 204.974428},
	Lead:       {204: 203.973044, 206: 205.974466, 207: 206.975897, 208: 207.976653},
	Radium:     {226: 226.025410},
	Thorium:    {230: 230.033134, 232: 232.038056},
	Uranium:    {233: 233.039636, 234: 234.040952, 235: 235.043930, 238: 238.050788},
	Plutonium:  {238: 238.049560, 239: 239.052164, 240: 240.053814, 244: 244.064205},
}

// NewIsotope resolves an (element, mass number) pair to a known nuclide.
func NewIsotope(e Element, massNumber uint16) (Isotope, error) {
	if !e.IsValid() {
		return Isotope{}, fmt.Errorf("invalid element %d", uint8(e))
	}
	if _, ok := isotopeMasses[e][massNumber]; !ok {
		return Isotope{}, fmt.Errorf("unknown isotope %d%s", massNumber, e.Symbol())
	}
	return Isotope{Element: e, MassNumber: massNumber}, nil
}

// IsotopeFromShorthand resolves the single-letter hydrogen isotope symbols
// D and T.
func IsotopeFromShorthand(letter byte) (Isotope, bool) {
	switch letter {
	case 'D':
		return Deuterium, true
	case 'T':
		return Tritium, true
	}
	return Isotope{}, false
}

// Mass returns the exact nuclide mass in daltons.
func (i Isotope) Mass() float64 {
	return isotopeMasses[i.Element][i.MassNumber]
}

// Shorthand returns the single-letter spelling ("D", "T") if one exists.
func (i Isotope) Shorthand() (string, bool) {
	switch i {
	case Deuterium:
		return "D", true
	case Tritium:
		return "T", true
	}
	return "", false
}

func (i Isotope) String() string {
	if s, ok := i.Shorthand(); ok {
		return s
	}
	return fmt.Sprintf("%d%s", i.MassNumber, i.Element.Symbol())
}
