package domain

// Conflicts simulates applying ops in order and reports, per operation,
// whether its target would already be taken. existing holds every entry of
// the directory, including those a filter left out of the plan. An
// operation found conflicting is treated as not applied.
func Conflicts(ops []RenameOp, existing []string) []bool {
	taken := make(map[string]bool, len(existing)+len(ops))
	for _, name := range existing {
		taken[name] = true
	}
	for _, op := range ops {
		taken[op.From] = true
	}

	conflicts := make([]bool, len(ops))
	for i, op := range ops {
		if op.Noop() {
			continue
		}
		if taken[op.To] {
			conflicts[i] = true
			continue
		}
		delete(taken, op.From)
		taken[op.To] = true
	}
	return conflicts
}
