package domain_models

type Sentiment struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// NonNegative clamps each count at zero. Model output is not trusted to be sane.
func (s Sentiment) NonNegative() Sentiment {
	return Sentiment{Positive: max(s.Positive, 0), Neutral: max(s.Neutral, 0), Negative: max(s.Negative, 0)}
}

func (s Sentiment) Total() int {
	return s.Positive + s.Neutral + s.Negative
}

// AnalysisSummary is what the gateway extracts from a batch of responses.
type AnalysisSummary struct {
	Sentiment       Sentiment `json:"sentiment"`
	Trends          []string  `json:"trends"`
	Recommendations []string  `json:"recommendations"`
}
