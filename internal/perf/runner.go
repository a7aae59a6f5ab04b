package perf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/brianvoe/gofakeit/v6"
)

// Result is the outcome of one scenario.
type Result struct {
	Name    string
	Ops     int
	Elapsed time.Duration // sum of the timed operations only
}

// NsPerOp returns the mean latency of an operation in nanoseconds.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

// Runner executes the scenarios selected by its Config.
type Runner struct {
	cfg  Config
	set  *metrics.Set
	data *dataset
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Runner{
		cfg: cfg,
		set: metrics.NewSet(),
	}, nil
}

// Run executes every scenario that is not skipped, in a fixed order.
// It stops at the first scenario whose checks fail.
func (r *Runner) Run() ([]Result, error) {
	if r.data == nil {
		r.data = generate(r.cfg)
	}

	var results []Result

	for _, s := range scenarios {
		name := s.name()

		if r.cfg.skips(name) {
			continue
		}

		var (
			hist    = r.set.GetOrCreateHistogram(metricName("dsperf_op_duration_seconds", s))
			counter = r.set.GetOrCreateCounter(metricName("dsperf_ops_total", s))
			res     = Result{Name: name}
		)

		tm := func(op func()) {
			start := time.Now()
			op()
			d := time.Since(start)

			hist.Update(d.Seconds())
			counter.Inc()

			res.Elapsed += d
			res.Ops++
		}

		if err := s.run(r.cfg, r.data, tm); err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}

		results = append(results, res)
	}

	return results, nil
}

// WriteMetrics writes the recorded latencies in Prometheus text format.
func (r *Runner) WriteMetrics(w io.Writer) {
	r.set.WritePrometheus(w)
}

func metricName(base string, s scenario) string {
	return fmt.Sprintf(`%s{structure=%q,op=%q}`, base, s.structure, s.op)
}

// generate builds cfg.Ops words and numbers from the seeded faker.
func generate(cfg Config) *dataset {
	var (
		fake = gofakeit.New(cfg.Seed)
		data = &dataset{
			words: make([]string, cfg.Ops),
			nums:  make([]int, cfg.Ops),
		}
	)

	for i := 0; i < cfg.Ops; i++ {
		data.words[i] = strings.ToLower(fake.Word()) + "-" + fake.Word()
		data.nums[i] = fake.Number(-1_000_000, 1_000_000)
	}

	return data
}
