package auction

// RoundRecord captures everything observable about one auction round.
type RoundRecord struct {
	Round          int
	PlayerIndex    int
	Arm            int
	Bid            float64
	CompetitiveBid float64
	Reward         float64
}

// Collector receives one record per round. The simulator defaults to a
// no-op collector; pass a Recorder to keep the rounds.
type Collector interface {
	AddRound(record RoundRecord)
}

type Recorder struct {
	records []RoundRecord
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AddRound(record RoundRecord) {
	r.records = append(r.records, record)
}

func (r *Recorder) Records() []RoundRecord {
	return r.records
}

type dummyCollector struct{}

func (dummyCollector) AddRound(RoundRecord) {}
