package schema

// ProducerInterval is the gap between two consecutive wins of one producer.
type ProducerInterval struct {
	Producer     string `json:"producer"`
	Interval     int    `json:"interval"`
	PreviousWin  int    `json:"previousWin"`
	FollowingWin int    `json:"followingWin"`
}

// IntervalReport holds every interval tied at the smallest and the largest gap.
// Both lists are empty or both are populated.
type IntervalReport struct {
	Min []ProducerInterval `json:"min"`
	Max []ProducerInterval `json:"max"`
}

// EmptyIntervalReport returns a report whose lists encode as [] rather than null.
func EmptyIntervalReport() IntervalReport {
	return IntervalReport{
		Min: []ProducerInterval{},
		Max: []ProducerInterval{},
	}
}

// IsEmpty reports whether no producer had two or more wins.
func (r IntervalReport) IsEmpty() bool {
	return len(r.Min) == 0 && len(r.Max) == 0
}
