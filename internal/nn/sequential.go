package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input. Backward runs the
// chain in reverse.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 16, rng),
//	    nn.NewTanh(),
//	    nn.NewLinear(16, 1, rng),
//	    nn.NewSigmoid(),
//	)
//
//	output := model.Forward(input)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(input *mat.Dense) *mat.Dense {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Eval applies all modules in sequence without caching.
func (s *Sequential) Eval(input *mat.Dense) *mat.Dense {
	output := input
	for _, module := range s.modules {
		output = module.Eval(output)
	}
	return output
}

// Backward propagates the gradient through the modules in reverse order.
func (s *Sequential) Backward(gradOutput *mat.Dense) *mat.Dense {
	grad := gradOutput
	for i := len(s.modules) - 1; i >= 0; i-- {
		grad = s.modules[i].Backward(grad)
	}
	return grad
}

// Parameters returns all parameters from all modules in order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Clone returns a deep copy of the container and all of its modules.
func (s *Sequential) Clone() Module {
	modules := make([]Module, len(s.modules))
	for i, m := range s.modules {
		modules[i] = m.Clone()
	}
	return NewSequential(modules...)
}

// Modules returns the contained modules.
func (s *Sequential) Modules() []Module {
	return s.modules
}

// Len returns the number of modules.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// StateDict returns copies of every Linear layer's parameters, keyed as
// "{module_index}.{param_name}".
func (s *Sequential) StateDict() map[string]*mat.Dense {
	stateDict := make(map[string]*mat.Dense)
	for i, m := range s.modules {
		l, ok := m.(*Linear)
		if !ok {
			continue
		}
		for name, v := range l.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = v
		}
	}
	return stateDict
}

// LoadStateDict restores parameters saved by StateDict.
func (s *Sequential) LoadStateDict(stateDict map[string]*mat.Dense) error {
	for i, m := range s.modules {
		l, ok := m.(*Linear)
		if !ok {
			continue
		}
		sub := map[string]*mat.Dense{}
		for _, name := range []string{"weight", "bias"} {
			if v, ok := stateDict[fmt.Sprintf("%d.%s", i, name)]; ok {
				sub[name] = v
			}
		}
		if err := l.LoadStateDict(sub); err != nil {
			return fmt.Errorf("module %d: %w", i, err)
		}
	}
	return nil
}
