package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shopfloorlab/linebench"
)

// Scenario declares a line and a sweep range in YAML:
//
//	name: penny fab one
//	bottleneck_rate: 0.5
//	natural_process_time: 8
//	max_wip: 12
type Scenario struct {
	Name               string  `yaml:"name"`
	BottleneckRate     float64 `yaml:"bottleneck_rate"`
	NaturalProcessTime float64 `yaml:"natural_process_time"`
	MaxWIP             int     `yaml:"max_wip"`
}

func loadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.MaxWIP < 1 {
		return Scenario{}, fmt.Errorf("scenario max_wip must be at least 1, got %d", sc.MaxWIP)
	}
	return sc, nil
}

// line builds the Line and sweep range the scenario declares. Parameter
// validation stays with the library constructor.
func (s Scenario) line() (linebench.Line, int, error) {
	line, err := linebench.NewLine(s.BottleneckRate, s.NaturalProcessTime, s.Name)
	if err != nil {
		return linebench.Line{}, 0, err
	}
	return line, s.MaxWIP, nil
}
