// Package chem provides the periodic-table data backing formula parsing:
// element symbols, standard atomic weights, isotopes with exact masses,
// named complex groups and greek descriptor letters.
package chem

import "fmt"

// Element identifies a chemical element by atomic number.
type Element uint8

const (
	Hydrogen Element = iota + 1
	Helium
	Lithium
	Beryllium
	Boron
	Carbon
	Nitrogen
	Oxygen
	Fluorine
	Neon
	Sodium
	Magnesium
	Aluminium
	Silicon
	Phosphorus
	Sulfur
	Chlorine
	Argon
	Potassium
	Calcium
	Scandium
	Titanium
	Vanadium
	Chromium
	Manganese
	Iron
	Cobalt
	Nickel
	Copper
	Zinc
	Gallium
	Germanium
	Arsenic
	Selenium
	Bromine
	Krypton
	Rubidium
	Strontium
	Yttrium
	Zirconium
	Niobium
	Molybdenum
	Technetium
	Ruthenium
	Rhodium
	Palladium
	Silver
	Cadmium
	Indium
	Tin
	Antimony
	Tellurium
	Iodine
	Xenon
	Caesium
	Barium
	Lanthanum
	Cerium
	Praseodymium
	Neodymium
	Promethium
	Samarium
	Europium
	Gadolinium
	Terbium
	Dysprosium
	Holmium
	Erbium
	Thulium
	Ytterbium
	Lutetium
	Hafnium
	Tantalum
	Tungsten
	Rhenium
	Osmium
	Iridium
	Platinum
	Gold
	Mercury
	Thallium
	Lead
	Bismuth
	Polonium
	Astatine
	Radon
	Francium
	Radium
	Actinium
	Thorium
	Protactinium
	Uranium
	Neptunium
	Plutonium
	Americium
	Curium
	Berkelium
	Californium
	Einsteinium
	Fermium
	Mendelevium
	Nobelium
	Lawrencium
	Rutherfordium
	Dubnium
	Seaborgium
	Bohrium
	Hassium
	Meitnerium
	Darmstadtium
	Roentgenium
	Copernicium
	Nihonium
	Flerovium
	Moscovium
	Livermorium
	Tennessine
	Oganesson
)

const maxElement = Oganesson

type elementData struct {
	symbol string
	name   string
	weight float64
}

// Standard atomic weights follow the abridged CIAAW values; elements with no
// stable isotope carry the mass number of their longest-lived isotope.
var elements = [maxElement + 1]elementData{
	Hydrogen:      {"H", "hydrogen", 1.008},
	Helium:        {"He", "helium", 4.0026},
	Lithium:       {"Li", "lithium", 6.94},
	Beryllium:     {"Be", "beryllium", 9.0122},
	Boron:         {"B", "boron", 10.81},
	Carbon:        {"C", "carbon", 12.011},
	Nitrogen:      {"N", "nitrogen", 14.007},
	Oxygen:        {"O", "oxygen", 15.999},
	Fluorine:      {"F", "fluorine", 18.998},
	Neon:          {"Ne", "neon", 20.180},
	Sodium:        {"Na", "sodium", 22.990},
	Magnesium:     {"Mg", "magnesium", 24.305},
	Aluminium:     {"Al", "aluminium", 26.982},
	Silicon:       {"Si", "silicon", 28.085},
	Phosphorus:    {"P", "phosphorus", 30.974},
	Sulfur:        {"S", "sulfur", 32.06},
	Chlorine:      {"Cl", "chlorine", 35.45},
	Argon:         {"Ar", "argon", 39.948},
	Potassium:     {"K", "potassium", 39.098},
	Calcium:       {"Ca", "calcium", 40.078},
	Scandium:      {"Sc", "scandium", 44.956},
	Titanium:      {"Ti", "titanium", 47.867},
	Vanadium:      {"V", "vanadium", 50.942},
	Chromium:      {"Cr", "chromium", 51.996},
	Manganese:     {"Mn", "manganese", 54.938},
	Iron:          {"Fe", "iron", 55.845},
	Cobalt:        {"Co", "cobalt", 58.933},
	Nickel:        {"Ni", "nickel", 58.693},
	Copper:        {"Cu", "copper", 63.546},
	Zinc:          {"Zn", "zinc", 65.38},
	Gallium:       {"Ga", "gallium", 69.723},
	Germanium:     {"Ge", "germanium", 72.630},
	Arsenic:       {"As", "arsenic", 74.922},
	Selenium:      {"Se", "selenium", 78.971},
	Bromine:       {"Br", "bromine", 79.904},
	Krypton:       {"Kr", "krypton", 83.798},
	Rubidium:      {"Rb", "rubidium", 85.468},
	Strontium:     {"Sr", "strontium", 87.62},
	Yttrium:       {"Y", "yttrium", 88.906},
	Zirconium:     {"Zr", "zirconium", 91.224},
	Niobium:       {"Nb", "niobium", 92.906},
	Molybdenum:    {"Mo", "molybdenum", 95.95},
	Technetium:    {"Tc", "technetium", 97.907},
	Ruthenium:     {"Ru", "ruthenium", 101.07},
	Rhodium:       {"Rh", "rhodium", 102.91},
	Palladium:     {"Pd", "palladium", 106.42},
	Silver:        {"Ag", "silver", 107.87},
	Cadmium:       {"Cd", "cadmium", 112.41},
	Indium:        {"In", "indium", 114.82},
	Tin:           {"Sn", "tin", 118.71},
	Antimony:      {"Sb", "antimony", 121.76},
	Tellurium:     {"Te", "tellurium", 127.60},
	Iodine:        {"I", "iodine", 126.90},
	Xenon:         {"Xe", "xenon", 131.29},
	Caesium:       {"Cs", "caesium", 132.91},
	Barium:        {"Ba", "barium", 137.33},
	Lanthanum:     {"La", "lanthanum", 138.91},
	Cerium:        {"Ce", "cerium", 140.12},
	Praseodymium:  {"Pr", "praseodymium", 140.91},
	Neodymium:     {"Nd", "neodymium", 144.24},
	Promethium:    {"Pm", "promethium", 144.913},
	Samarium:      {"Sm", "samarium", 150.36},
	Europium:      {"Eu", "europium", 151.96},
	Gadolinium:    {"Gd", "gadolinium", 157.25},
	Terbium:       {"Tb", "terbium", 158.93},
	Dysprosium:    {"Dy", "dysprosium", 162.50},
	Holmium:       {"Ho", "holmium", 164.93},
	Erbium:        {"Er", "erbium", 167.26},
	Thulium:       {"Tm", "thulium", 168.93},
	Ytterbium:     {"Yb", "ytterbium", 173.05},
	Lutetium:      {"Lu", "lutetium", 174.97},
	Hafnium:       {"Hf", "hafnium", 178.49},
	Tantalum:      {"Ta", "tantalum", 180.95},
	Tungsten:      {"W", "tungsten", 183.84},
	Rhenium:       {"Re", "rhenium", 186.21},
	Osmium:        {"Os", "osmium", 190.23},
	Iridium:       {"Ir", "iridium", 192.22},
	Platinum:      {"Pt", "platinum", 195.08},
	Gold:          {"Au", "gold", 196.97},
	Mercury:       {"Hg", "mercury", 200.59},
	Thallium:      {"Tl", "thallium", 204.38},
	Lead:          {"Pb", "lead", 207.2},
	Bismuth:       {"Bi", "bismuth", 208.98},
	Polonium:      {"Po", "polonium", 208.982},
	Astatine:      {"At", "astatine", 209.987},
	Radon:         {"Rn", "radon", 222.018},
	Francium:      {"Fr", "francium", 223.020},
	Radium:        {"Ra", "radium", 226.025},
	Actinium:      {"Ac", "actinium", 227.028},
	Thorium:       {"Th", "thorium", 232.04},
	Protactinium:  {"Pa", "protactinium", 231.04},
	Uranium:       {"U", "uranium", 238.03},
	Neptunium:     {"Np", "neptunium", 237.048},
	Plutonium:     {"Pu", "plutonium", 244.064},
	Americium:     {"Am", "americium", 243.061},
	Curium:        {"Cm", "curium", 247.070},
	Berkelium:     {"Bk", "berkelium", 247.070},
	Californium:   {"Cf", "californium", 251.080},
	Einsteinium:   {"Es", "einsteinium", 252.083},
	Fermium:       {"Fm", "fermium", 257.095},
	Mendelevium:   {"Md", "mendelevium", 258.098},
	Nobelium:      {"No", "nobelium", 259.101},
	Lawrencium:    {"Lr", "lawrencium", 262.110},
	Rutherfordium: {"Rf", "rutherfordium", 267.122},
	Dubnium:       {"Db", "dubnium", 268.126},
	Seaborgium:    {"Sg", "seaborgium", 269.129},
	Bohrium:       {"Bh", "bohrium", 270.133},
	Hassium:       {"Hs", "hassium", 269.134},
	Meitnerium:    {"Mt", "meitnerium", 278.156},
	Darmstadtium:  {"Ds", "darmstadtium", 281.165},
	Roentgenium:   {"Rg", "roentgenium", 282.169},
	Copernicium:   {"Cn", "copernicium", 285.177},
	Nihonium:      {"Nh", "nihonium", 286.182},
	Flerovium:     {"Fl", "flerovium", 289.190},
	Moscovium:     {"Mc", "moscovium", 290.196},
	Livermorium:   {"Lv", "livermorium", 293.204},
	Tennessine:    {"Ts", "tennessine", 294.211},
	Oganesson:     {"Og", "oganesson", 294.214},
}

var symbolIndex = func() map[string]Element {
	m := make(map[string]Element, int(maxElement))
	for z := Hydrogen; z <= maxElement; z++ {
		m[elements[z].symbol] = z
	}
	return m
}()

// ElementFromSymbol resolves a one- or two-letter symbol to an element.
func ElementFromSymbol(symbol string) (Element, bool) {
	e, ok := symbolIndex[symbol]
	return e, ok
}

// IsValid reports whether e denotes a known element.
func (e Element) IsValid() bool {
	return e >= Hydrogen && e <= maxElement
}

// Symbol returns the element's standard symbol, e.g. "Na" for sodium.
func (e Element) Symbol() string {
	if !e.IsValid() {
		return fmt.Sprintf("Element(%d)", uint8(e))
	}
	return elements[e].symbol
}

// Name returns the element's lowercase English name.
func (e Element) Name() string {
	if !e.IsValid() {
		return fmt.Sprintf("element(%d)", uint8(e))
	}
	return elements[e].name
}

// AtomicNumber returns the number of protons.
func (e Element) AtomicNumber() int { return int(e) }

// AtomicWeight returns the standard (isotope-mix-averaged) relative atomic
// mass in daltons.
func (e Element) AtomicWeight() float64 {
	if !e.IsValid() {
		return 0
	}
	return elements[e].weight
}

// IsNobleGas reports whether the element belongs to group 18.
func (e Element) IsNobleGas() bool {
	switch e {
	case Helium, Neon, Argon, Krypton, Xenon, Radon, Oganesson:
		return true
	}
	return false
}

func (e Element) String() string { return e.Symbol() }
