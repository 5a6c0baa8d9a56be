package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/constraint"
)

// rawConstraint is one constraints entry as written in a problem
// file: date constraints carry a date, meeting constraints a right
// meeting index.
type rawConstraint struct {
	Left  int        `mapstructure:"left"`
	Op    string     `mapstructure:"op"`
	Right *int       `mapstructure:"right"`
	Date  *time.Time `mapstructure:"date"`
}

type rawProblem struct {
	Meetings    int             `mapstructure:"meetings"`
	RangeStart  time.Time       `mapstructure:"range_start"`
	RangeEnd    time.Time       `mapstructure:"range_end"`
	Constraints []rawConstraint `mapstructure:"constraints"`
}

// Problem is a fully decoded scheduling problem, ready to hand to the
// solver.
type Problem struct {
	Meetings    int
	RangeStart  time.Time
	RangeEnd    time.Time
	Constraints []csp.Constraint
}

// ReadProblem loads a problem from a JSON or YAML file, chosen by
// extension.
func ReadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading problem file (%s): %w", path, err)
	}

	var doc map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported problem file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing problem file (%s): %w", path, err)
	}

	problem, err := decodeProblem(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid problem file (%s): %w", path, err)
	}
	return problem, nil
}

func decodeProblem(doc map[string]any) (*Problem, error) {
	var raw rawProblem
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(csp.DateFormat),
		Result:     &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, err
	}

	if raw.Meetings < 0 {
		return nil, fmt.Errorf("meetings (%d) is negative", raw.Meetings)
	}
	if raw.RangeStart.IsZero() || raw.RangeEnd.IsZero() {
		return nil, fmt.Errorf("range_start and range_end are required")
	}

	problem := &Problem{
		Meetings:   raw.Meetings,
		RangeStart: csp.Day(raw.RangeStart),
		RangeEnd:   csp.Day(raw.RangeEnd),
	}
	for i, rc := range raw.Constraints {
		c, err := decodeConstraint(rc)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		problem.Constraints = append(problem.Constraints, c)
	}
	return problem, nil
}

func decodeConstraint(raw rawConstraint) (csp.Constraint, error) {
	op, err := csp.ParseOperator(raw.Op)
	if err != nil {
		return nil, err
	}
	switch {
	case raw.Date != nil && raw.Right != nil:
		return nil, fmt.Errorf("sets both a right meeting and a date")
	case raw.Date != nil:
		return constraint.Unary(raw.Left, op, *raw.Date), nil
	case raw.Right != nil:
		return constraint.Binary(raw.Left, op, *raw.Right), nil
	}
	return nil, fmt.Errorf("needs either a right meeting or a date")
}
