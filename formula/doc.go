// Package formula parses textual chemical-formula notations into a typed
// tree and renders the tree back into canonical text.
//
// # Pipeline
//
// Input flows through four pull-based layers, each with one token of
// lookahead:
//
//	characters ──▶ subtokens ──▶ tokens ──▶ tree
//	(classify)     (digit runs,  (charge/    (dialect
//	               digraphs)     isotope/    state
//	                             count)      machine)
//
// The character classifier folds OCR look-alike glyphs (dash variants,
// bullet variants, fullwidth forms) onto canonical code points while
// keeping the baseline, subscript and superscript digit spaces distinct.
// The subtoken reader groups digit runs and resolves element and
// complex-group symbols. The token disambiguator decides by lookahead
// whether a superscript magnitude is a charge (sign follows), an isotope
// mass number (element follows) or a bare count. The parser builds the
// tree, one state machine per dialect.
//
// # Dialects
//
// Four closed grammars share the token layer: Chemical (general database
// notation), InChI (Hill-ordered, strict), Mineral (greek polymorph
// prefixes such as α-Fe2O3) and Markush (residual R atoms for unspecified
// substituents).
//
// # Tree invariants
//
// Construction normalizes as it builds: chained repeats and charges merge
// by summing magnitudes, a charge sum of zero cancels away, a singleton
// sequence collapses to its child, and brackets around a bare leaf are
// elided. Rendering a parsed formula and parsing it again yields a
// structurally equal formula, though not necessarily the original string,
// since rendering always emits canonical sub- and superscript glyphs.
//
// # Example
//
//	f, err := formula.ParseChemical("CuSO4.5H2O")
//	if err != nil {
//		// every failure is a typed *ParseError
//	}
//	fmt.Println(f)       // CuSO₄.5H₂O
//	m, _ := f.MolarMass() // 249.68...
//
// All operations are pure and synchronous; a parser instance is used once
// per input and never shared.
package formula
