// searchspace.go — SearchSpace construction: validation, Kahn's-algorithm
// topological sort of the parameter dependency graph, and the derived
// sorted_conditions list the repair engine relies on.
//
// Complexity: O(n_params + n_conditions) time and memory.
package core

import "fmt"

// SearchSpace is an immutable description of a set of parameters and the
// activation conditions between them. It is built once by NewSearchSpace and
// never mutated afterward; every field is safe to read concurrently without
// locking.
type SearchSpace struct {
	// Params is the original, caller-supplied parameter list, indexed by
	// its position (a parameter's "index" elsewhere in this module always
	// means its position in this slice).
	Params []Parameter

	// Conditions is the original, caller-supplied condition list, in
	// caller order.
	Conditions []Condition

	// SortedParams is a topological order over parameter indices: every
	// dependent appears after all of its parents.
	SortedParams []int

	// SortedConditions is Conditions regrouped so that all conditions of a
	// given dependent parameter are contiguous, and the groups themselves
	// appear in SortedParams order. The repair engine depends on this
	// layout to process parents before dependents within a single pass.
	SortedConditions []Condition

	// byParam indexes Conditions (original, not sorted) by ParamIndex, for
	// convenience in validation and tests.
	byParam map[int][]Condition
}

// NewSearchSpace validates params and conds and builds a SearchSpace.
// Validation order (first failure wins):
//  1. each Parameter's own attributes (ErrInvalidParameter)
//  2. each Condition's indices in range and ParamIndex != ParentIndex (ErrParamIndexOutOfRange, ErrSelfCondition)
//  3. each Condition's RHS kind matches its parent's kind, and AnyOf is non-empty (ErrConditionKindMismatch, ErrEmptyAnyOf)
//  4. acyclicity of the parent->dependent graph via Kahn's algorithm (ErrCyclicDependency)
func NewSearchSpace(params []Parameter, conds []Condition) (*SearchSpace, error) {
	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	n := len(params)
	for _, c := range conds {
		if c.ParamIndex < 0 || c.ParamIndex >= n || c.ParentIndex < 0 || c.ParentIndex >= n {
			return nil, fmt.Errorf("%w: param=%d parent=%d (n=%d)", ErrParamIndexOutOfRange, c.ParamIndex, c.ParentIndex, n)
		}
		if c.ParamIndex == c.ParentIndex {
			return nil, fmt.Errorf("%w: param=%d", ErrSelfCondition, c.ParamIndex)
		}
		parentKind := params[c.ParentIndex].Kind
		if c.Kind == CondAnyOf && len(c.RHS) == 0 {
			return nil, fmt.Errorf("%w: param=%d", ErrEmptyAnyOf, c.ParamIndex)
		}
		for _, v := range c.RHS {
			if !kindMatches(parentKind, v.Kind) {
				return nil, fmt.Errorf("%w: param=%d parent kind=%s value kind=%d", ErrConditionKindMismatch, c.ParamIndex, parentKind, v.Kind)
			}
		}
	}

	byParam := make(map[int][]Condition, n)
	for _, c := range conds {
		byParam[c.ParamIndex] = append(byParam[c.ParamIndex], c)
	}

	sortedParams, err := kahnSort(n, conds)
	if err != nil {
		return nil, err
	}

	sortedConditions := make([]Condition, 0, len(conds))
	for _, p := range sortedParams {
		sortedConditions = append(sortedConditions, byParam[p]...)
	}

	return &SearchSpace{
		Params:           append([]Parameter(nil), params...),
		Conditions:       append([]Condition(nil), conds...),
		SortedParams:     sortedParams,
		SortedConditions: sortedConditions,
		byParam:          byParam,
	}, nil
}

// kindMatches reports whether a Value.Kind is the correct union member for a
// parent of the given ParamKind.
func kindMatches(parentKind ParamKind, vk ValueKind) bool {
	switch parentKind {
	case Real:
		return vk == KindReal
	case Int:
		return vk == KindInt
	case Categorical:
		return vk == KindCat
	case Bool:
		return vk == KindBool
	default:
		return false
	}
}

// kahnSort computes a topological order of [0,n) given edges
// ParentIndex -> ParamIndex (parent before dependent), using Kahn's
// algorithm with a FIFO ready queue seeded in index order, so that ties
// (multiple simultaneously-ready nodes) resolve deterministically by
// ascending original index.
func kahnSort(n int, conds []Condition) ([]int, error) {
	inDegree := make([]int, n)
	children := make([][]int, n)
	for _, c := range conds {
		children[c.ParentIndex] = append(children[c.ParentIndex], c.ParamIndex)
		inDegree[c.ParamIndex]++
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for _, child := range children[node] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if len(order) != n {
		return nil, ErrCyclicDependency
	}
	return order, nil
}

// FindParamIndex returns the index of the parameter with the given name, or
// ErrUnknownParameter if no parameter has that name.
func (ss *SearchSpace) FindParamIndex(name string) (int, error) {
	for i, p := range ss.Params {
		if p.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// NParams returns the number of parameters in the space.
func (ss *SearchSpace) NParams() int { return len(ss.Params) }
