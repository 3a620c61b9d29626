package formula

// Dialect selects one of the supported formula grammars. The set is closed:
// the grammars differ only in whether a leading greek descriptor is legal,
// whether residual (Markush R-group) atoms are legal, and whether the
// finished formula must be in Hill order.
type Dialect uint8

const (
	// Chemical is the general notation used by compound databases.
	Chemical Dialect = iota
	// InChI is the strict formula layer of an InChI identifier: Hill
	// ordered, no greek descriptor, no residuals.
	InChI
	// Mineral is the general notation plus the greek polymorph prefix
	// convention (α-Fe2O3).
	Mineral
	// Markush is the general notation extended with the residual marker R
	// for unspecified substituents.
	Markush
)

func (d Dialect) String() string {
	switch d {
	case InChI:
		return "inchi"
	case Mineral:
		return "mineral"
	case Markush:
		return "markush"
	default:
		return "chemical"
	}
}

// DialectFromName resolves a dialect by its String name.
func DialectFromName(name string) (Dialect, bool) {
	switch name {
	case "chemical":
		return Chemical, true
	case "inchi":
		return InChI, true
	case "mineral":
		return Mineral, true
	case "markush":
		return Markush, true
	}
	return 0, false
}

func (d Dialect) allowsGreek() bool    { return d != InChI }
func (d Dialect) allowsResidual() bool { return d == Markush }
func (d Dialect) requiresHill() bool   { return d == InChI }
