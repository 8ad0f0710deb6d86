// Package pipeline applies a configured chain of string transforms to every
// logical line of a source and collects the results.
package pipeline

import (
	"fmt"

	"github.com/textkit-dev/textkit/pkg/config"
	"github.com/textkit-dev/textkit/pkg/strutil"
)

// Step is a single compiled transform.
type Step struct {
	// Name is the configured op name.
	Name string

	// Apply performs the transform.
	Apply func(string) string
}

// CompileSteps turns step configs into executable steps.
func CompileSteps(specs []config.StepConfig) ([]Step, error) {
	steps := make([]Step, 0, len(specs))
	for i, spec := range specs {
		step, err := compileStep(spec)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func compileStep(spec config.StepConfig) (Step, error) {
	var fn func(string) string

	switch spec.Op {
	case "upper":
		fn = strutil.Upper
	case "lower":
		fn = strutil.Lower
	case "trim":
		fn = strutil.Trim
	case "trim_left":
		fn = strutil.TrimLeft
	case "trim_right":
		fn = strutil.TrimRight
	case "condense":
		fn = strutil.Condense
	case "standardize":
		fn = strutil.Standardize
	case "remove_surrounds":
		fn = strutil.RemoveSurrounds
	case "replace":
		target, with := spec.Target, spec.With
		fn = func(s string) string { return strutil.ReplaceFirst(s, target, with) }
	case "replace_last":
		target, with := spec.Target, spec.With
		fn = func(s string) string { return strutil.ReplaceLast(s, target, with) }
	case "replace_all":
		target, with := spec.Target, spec.With
		fn = func(s string) string { return strutil.ReplaceAll(s, target, with) }
	case "erase":
		target := spec.Target
		fn = func(s string) string { return strutil.EraseFirst(s, target) }
	case "erase_last":
		target := spec.Target
		fn = func(s string) string { return strutil.EraseLast(s, target) }
	case "erase_all":
		target := spec.Target
		fn = func(s string) string { return strutil.EraseAll(s, target) }
	default:
		return Step{}, fmt.Errorf("unknown op %q", spec.Op)
	}

	return Step{Name: spec.Op, Apply: fn}, nil
}
