package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/magiconair/properties"

	"github.com/aria-lang/pairscore/internal/alignment"
)

// MalformedParameterError is returned when a recognized parameter is not
// assigned a finite number, or when a line is not an assignment at all.
type MalformedParameterError struct {
	// Line is set for lines without '='.
	Line  int
	Name  string
	Value string
}

func (e *MalformedParameterError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("line %d: expected \"name = number\", got %q", e.Line, e.Value)
	}
	return fmt.Sprintf("parameter %q has to be assigned a number, got %q", e.Name, e.Value)
}

// ParamFile is the content of a parameter file.
type ParamFile struct {
	// Overrides holds the recognized assignments.
	Overrides map[alignment.Param]float64
	// Ignored lists assigned names that are not scoring parameters.
	Ignored []string
}

// Apply merges the file's overrides into params.
func (f *ParamFile) Apply(params alignment.Params) alignment.Params {
	if f == nil {
		return params
	}
	return params.Merge(f.Overrides)
}

// ParseParams reads "name = number" assignments. Lines starting with '#'
// are comments, and a '#' after a value starts an inline comment. Only gap,
// identity, transition and transversion are recognized; other names are
// reported in Ignored. Values are taken literally, "${name}" references
// are not expanded.
func ParseParams(r io.Reader) (*ParamFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}
	if err := checkAssignments(data); err != nil {
		return nil, err
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parameter file has the wrong format: %w", err)
	}

	file := &ParamFile{Overrides: make(map[alignment.Param]float64)}

	keys := props.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		param, ok := alignment.ParseParam(key)
		if !ok {
			file.Ignored = append(file.Ignored, key)
			continue
		}

		raw, _ := props.Get(key)
		value, err := parseValue(raw)
		if err != nil {
			return nil, &MalformedParameterError{Name: key, Value: raw}
		}
		file.Overrides[param] = value
	}

	return file, nil
}

// checkAssignments rejects lines that are neither blank, a comment nor
// contain '=' before an inline comment.
func checkAssignments(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		assignment, _, _ := strings.Cut(line, "#")
		if !strings.Contains(assignment, "=") {
			return &MalformedParameterError{Line: lineNum, Value: line}
		}
	}
	return scanner.Err()
}

func parseValue(raw string) (float64, error) {
	if before, _, found := strings.Cut(raw, "#"); found {
		raw = before
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("value must be finite")
	}
	return value, nil
}

// LoadParams reads a parameter file from disk.
func LoadParams(path string) (*ParamFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening parameter file: %w", err)
	}
	defer f.Close()

	file, err := ParseParams(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// ResolveParams returns the default parameters merged with the file at
// path. An empty path yields the defaults.
func ResolveParams(path string) (alignment.Params, *ParamFile, error) {
	params := alignment.DefaultParams()
	if path == "" {
		return params, nil, nil
	}

	file, err := LoadParams(path)
	if err != nil {
		return params, nil, err
	}
	return file.Apply(params), file, nil
}
