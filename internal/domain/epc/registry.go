package epc

import "sort"

// Registry maps ISO 20022 purpose codes to their display names. It is
// read-only after construction and handed to the assembler explicitly,
// so tests can substitute a smaller one.
type Registry map[string]string

// DefaultRegistry returns the purpose codes accepted by the EPC form.
func DefaultRegistry() Registry {
	return Registry{
		"ACCT": "Account Management",
		"BONU": "Bonus Payment",
		"CHAR": "Charity Payment",
		"COLL": "Collection Payment",
		"COMC": "Commercial Payment",
		"CPYR": "Copyright",
		"DIVD": "Dividend",
		"EDUC": "Education",
		"GOVT": "Government Payment",
		"INSU": "Insurance Premium",
		"INTC": "Intra Company Payment",
		"INVS": "Investment & Securities",
		"IVPT": "Invoice Payment",
		"LOAN": "Loan",
		"PENS": "Pension Payment",
		"RENT": "Rent",
		"SALA": "Salary Payment",
		"SSBE": "Social Security Benefit",
		"SUPP": "Supplier Payment",
		"TAXS": "Tax Payment",
		"TRAD": "Commercial",
		"UTIL": "Utilities",
	}
}

func (r Registry) Contains(code string) bool {
	_, ok := r[code]
	return ok
}

// Codes returns the registry keys in sorted order.
func (r Registry) Codes() []string {
	codes := make([]string, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
