package entity

// Side tags which pane of the comparison view a candidate occupies.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

func (s Side) Valid() bool {
	switch s {
	case SideLeft, SideRight, SideTop, SideBottom:
		return true
	}

	return false
}

// ComparisonResult maps metric name to a judgment framed from the first
// compared quote's perspective, e.g. "price" -> "20.0% cheaper". Ephemeral,
// never persisted.
type ComparisonResult map[string]string

const (
	MetricPrice    = "price"
	MetricDuration = "duration"
)

// controller model for the opening round of a comparison
type StartComparisonOutputModel struct {
	FirstTradie        UserOutputModel  `json:"firstTradie"`
	FirstQuote         QuoteOutputModel `json:"firstQuote"`
	SecondTradie       UserOutputModel  `json:"secondTradie"`
	SecondQuote        QuoteOutputModel `json:"secondQuote"`
	FirstStats         ComparisonResult `json:"firstStats"`
	SecondStats        ComparisonResult `json:"secondStats"`
	RemainingTradieIds []string         `json:"remainingTradieIds"`
	RemainingQuoteIds  []string         `json:"remainingQuoteIds"`
}

// controller model for each subsequent round
type NextCandidateOutputModel struct {
	Exhausted      bool             `json:"exhausted"`
	Side           string           `json:"side,omitempty"`
	Tradie         UserOutputModel  `json:"tradie,omitempty"`
	Quote          QuoteOutputModel `json:"quote,omitempty"`
	CandidateStats ComparisonResult `json:"candidateStats,omitempty"`
	SurvivorStats  ComparisonResult `json:"survivorStats,omitempty"`
}
