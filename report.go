// Package gemmcheck sweep results, JSON reports, and the failure collector
package gemmcheck

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"
)

// ErrorStat is a float32 error statistic that survives JSON round-trips
// even when NaN: an output element the kernel never wrote reduces to a NaN
// median, which encoding/json cannot represent as a number. Non-finite
// values are encoded as the strings "NaN", "+Inf", and "-Inf".
type ErrorStat float32

// MarshalJSON implements json.Marshaler.
func (e ErrorStat) MarshalJSON() ([]byte, error) {
	f := float64(e)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler. Strings are accepted only for
// the three non-finite sentinels; finite values must be JSON numbers.
func (e *ErrorStat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			*e = ErrorStat(math.NaN())
		case "+Inf":
			*e = ErrorStat(math.Inf(1))
		case "-Inf":
			*e = ErrorStat(math.Inf(-1))
		default:
			return fmt.Errorf("invalid error statistic %q", s)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*e = ErrorStat(f)
	return nil
}

// PointResult is the verdict for one tile shape.
type PointResult struct {
	Mr             int       `json:"mr"`
	Nr             int       `json:"nr"`
	Kc             int       `json:"kc"`
	MaxMedianError ErrorStat `json:"max_median_error"`
	Pass           bool      `json:"pass"`
}

// SweepReport aggregates every point of one ranged sweep along with the
// configuration that produced it, including the effective seed so a failing
// run can be replayed.
type SweepReport struct {
	Kernel     string        `json:"kernel,omitempty"`
	MrBound    int           `json:"mr_bound"`
	NrBound    int           `json:"nr_bound"`
	Kc         int           `json:"kc"`
	SIMDWidth  int           `json:"simd_width"`
	Iterations int           `json:"iterations"`
	ErrorLimit float32       `json:"error_limit"`
	Seed       uint64        `json:"seed"`
	Started    time.Time     `json:"started"`
	Points     []PointResult `json:"points"`
}

// Failed returns the points whose verdict was a failure.
func (r *SweepReport) Failed() []PointResult {
	var failed []PointResult
	for _, p := range r.Points {
		if !p.Pass {
			failed = append(failed, p)
		}
	}
	return failed
}

// Save writes the report as indented JSON.
func (r *SweepReport) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Collector is a Reporter that retains failure messages instead of failing
// a test, for drivers running the harness outside go test.
type Collector struct {
	messages []string
}

// Errorf records one formatted failure message.
func (c *Collector) Errorf(format string, args ...interface{}) {
	c.messages = append(c.messages, fmt.Sprintf(format, args...))
}

// Failures returns the recorded failure messages in order.
func (c *Collector) Failures() []string {
	return c.messages
}

// Failed reports whether any failure was recorded.
func (c *Collector) Failed() bool {
	return len(c.messages) > 0
}
