package utils

import (
	"time"

	"github.com/pkg/errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats for performance monitoring. The collectors live in a private
// registry, nothing is exposed over the network.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	Registry       *prometheus.Registry
	generations    prometheus.Counter
	population     prometheus.Gauge
	stepDuration   prometheus.Histogram
	stagnantFrames prometheus.Counter
}

// NewStats returns stats with every collector registered on a fresh registry
func NewStats() *Stats {
	s := &Stats{
		StartTime: time.Now(),
		Registry:  prometheus.NewRegistry(),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gol_generations_total",
			Help: "Number of generations computed",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gol_population",
			Help: "Living cells in the current generation",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gol_step_duration_seconds",
			Help:    "Time spent computing one generation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		stagnantFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gol_stagnant_generations_total",
			Help: "Generations that repeated a board seen in the recent history",
		}),
	}
	s.Registry.MustRegister(s.generations, s.population, s.stepDuration, s.stagnantFrames)
	return s
}

// Update records a computed generation
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.generations.Inc()
	s.population.Set(float64(population))
	s.stepDuration.Observe(duration.Seconds())
}

// MarkStagnant counts a generation that repeated a recent board
func (s *Stats) MarkStagnant() {
	s.stagnantFrames.Inc()
}

// Summary is a snapshot of the registered collectors
type Summary struct {
	Generations         int
	Population          int
	StepCount           uint64
	StepSeconds         float64
	StagnantGenerations int
}

// Summary gathers the registry and reads back the collector values
func (s *Stats) Summary() (Summary, error) {
	var summary Summary

	families, err := s.Registry.Gather()
	if err != nil {
		return summary, errors.Wrap(err, "[Summary] failed to gather metrics")
	}

	for _, mf := range families {
		metrics := mf.GetMetric()
		if len(metrics) == 0 {
			continue
		}
		m := metrics[0]
		switch mf.GetName() {
		case "gol_generations_total":
			summary.Generations = int(m.GetCounter().GetValue())
		case "gol_population":
			summary.Population = int(m.GetGauge().GetValue())
		case "gol_step_duration_seconds":
			summary.StepCount = m.GetHistogram().GetSampleCount()
			summary.StepSeconds = m.GetHistogram().GetSampleSum()
		case "gol_stagnant_generations_total":
			summary.StagnantGenerations = int(m.GetCounter().GetValue())
		}
	}
	return summary, nil
}
