package classify

// Category is one contract type with its ordered keyword list. Multi-word
// keywords carry extra scoring weight.
type Category struct {
	Label    string
	Keywords []string
}

const (
	LabelJudgment  = "Court Judgment / Order"
	LabelGeneral   = "General Legal Document"
	LabelShortText = "Short Text / Unknown"
)

// DefaultTaxonomy returns the built-in contract-type taxonomy. Order matters:
// score ties resolve to the first declared category.
func DefaultTaxonomy() []Category {
	return []Category{
		{Label: "Employment Contract", Keywords: []string{
			"employee", "employer", "salary", "joining", "resignation",
			"notice period", "termination", "probation",
		}},
		{Label: "Lease Agreement", Keywords: []string{
			"lease", "tenant", "landlord", "rent", "premises",
			"term of years", "security deposit",
		}},
		{Label: "Non-Disclosure Agreement", Keywords: []string{
			"non-disclosure", "confidential", "confidentiality", "nda",
			"proprietary information",
		}},
		{Label: "Loan Agreement", Keywords: []string{
			"loan", "borrower", "lender", "interest", "repayment",
			"installment", "security",
		}},
		{Label: "Sales Agreement", Keywords: []string{
			"seller", "buyer", "goods", "purchase", "delivery", "invoice",
			"sales agreement",
		}},
		{Label: "Partnership Agreement", Keywords: []string{
			"partnership", "partner", "capital contribution", "profit share",
			"partners",
		}},
		{Label: "Service Agreement", Keywords: []string{
			"services", "service provider", "scope of work", "deliverables",
			"service agreement", "statement of work",
		}},
		{Label: "Franchise Agreement", Keywords: []string{
			"franchise", "franchisor", "franchisee", "royalty",
		}},
	}
}

// DefaultJudgmentSignals returns the built-in judicial-signal keywords that
// short-circuit classification. Deliberately excludes bare "court" and
// "order", which appear in ordinary jurisdiction clauses.
func DefaultJudgmentSignals() []string {
	return []string{
		"hon'ble", "hon’ble",
		"judgment", "judgement",
		"petitioner", "respondent", "appellant",
		"civil appeal", "writ petition",
		"supreme court", "high court",
		"scc", "coram",
	}
}
