// Package workload loads process lists from YAML or CSV files.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"cpu-scheduler-simulator/internal/core"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// File mirrors the YAML workload layout.
type File struct {
	Processes []Entry `yaml:"processes"`
}

type Entry struct {
	Name        string `yaml:"name"`
	BurstTime   int    `yaml:"burst_time"`
	ArrivalTime int    `yaml:"arrival_time"`
}

// Load reads a workload file, choosing the decoder by extension.
func Load(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".csv":
		return LoadCSV(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadYAML decodes `processes: [{name, burst_time, arrival_time}]`.
func LoadYAML(r io.Reader) ([]core.Process, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding yaml workload: %w", err)
	}
	processes := make([]core.Process, 0, len(file.Processes))
	for i, entry := range file.Processes {
		p := core.NewProcess(entry.Name, entry.BurstTime, entry.ArrivalTime)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("process %d: %w", i, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// LoadCSV decodes `name,burst,arrival` rows. The header row is optional.
func LoadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}
	first := 0
	if len(rows) > 0 && isHeader(rows[0]) {
		first = 1
	}

	processes := make([]core.Process, 0, len(rows)-first)
	for i := first; i < len(rows); i++ {
		row := rows[i]
		burst, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: burst: %w", i, err)
		}
		arrival, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: arrival: %w", i, err)
		}
		p := core.NewProcess(row[0], burst, arrival)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func isHeader(row []string) bool {
	burst := strings.TrimSpace(row[1])
	return strings.EqualFold(burst, "burst") || strings.EqualFold(burst, "burst_time")
}
