package autodiff

import (
	"fmt"

	"github.com/born-ml/mlp/internal/tensor"
)

// GradientTape holds the operations reachable from one output, in execution
// (topological) order, and computes gradients by walking them in reverse.
//
// Usage:
//
//	tape := NewGradientTape(loss)
//	tape.Backward(tensor.Ones(loss.Shape()))
type GradientTape struct {
	root   *Variable
	nodes  []*Variable // Non-leaf variables, inputs before outputs
	leaves []*Variable // Leaves that require a gradient
}

// NewGradientTape orders the graph that produced root.
func NewGradientTape(root *Variable) *GradientTape {
	t := &GradientTape{root: root}
	visited := make(map[*Variable]bool)
	t.visit(root, visited)
	return t
}

func (t *GradientTape) visit(v *Variable, visited map[*Variable]bool) {
	if visited[v] || !v.requiresGrad {
		return
	}
	visited[v] = true
	if v.IsLeaf() {
		t.leaves = append(t.leaves, v)
		return
	}
	for _, in := range v.inputs {
		t.visit(in, visited)
	}
	t.nodes = append(t.nodes, v)
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.nodes)
}

// Backward propagates outputGrad from the root to every leaf.
//
// Algorithm:
//  1. Seed the root with outputGrad
//  2. Walk operations in reverse order
//  3. For each operation, compute input gradients using the chain rule
//  4. Sum gradients when the same variable feeds several operations
//  5. Add the final leaf gradients to each leaf's accumulated gradient
func (t *GradientTape) Backward(outputGrad *tensor.Tensor) {
	grads := map[*Variable]*tensor.Tensor{t.root: outputGrad}

	for i := len(t.nodes) - 1; i >= 0; i-- {
		node := t.nodes[i]
		grad, ok := grads[node]
		if !ok {
			continue
		}
		inputGrads := node.op.Backward(grad)
		if len(inputGrads) != len(node.inputs) {
			panic(fmt.Sprintf("autodiff: %s returned %d gradients for %d inputs",
				node.op.Name(), len(inputGrads), len(node.inputs)))
		}
		for j, in := range node.inputs {
			if !in.requiresGrad || inputGrads[j] == nil {
				continue
			}
			if existing, ok := grads[in]; ok {
				grads[in] = tensor.Add(existing, inputGrads[j])
			} else {
				grads[in] = inputGrads[j]
			}
		}
	}

	for _, leaf := range t.leaves {
		if grad, ok := grads[leaf]; ok {
			leaf.accumulateGrad(grad)
		}
	}
}
