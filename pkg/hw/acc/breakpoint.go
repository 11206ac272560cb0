package acc

// Breakpoint is a named address at which automatic execution pauses.
// Uniqueness of both fields is enforced by the owning table.
type Breakpoint struct {
	Address Word
	Name    string
}

// BreakpointTable is an ordered, capacity-bounded collection of
// breakpoints. Order is insertion order; deletion compacts the table by
// shifting later entries one slot left, preserving the relative order of
// the survivors. The MaxInstructions cap is a domain rule (one
// breakpoint per distinct instruction address), enforced explicitly on
// insert.
type BreakpointTable struct {
	entries []Breakpoint
}

// Count returns the number of live breakpoints.
func (t *BreakpointTable) Count() int {
	return len(t.entries)
}

// At returns the breakpoint at the given table index.
func (t *BreakpointTable) At(idx int) Breakpoint {
	return t.entries[idx]
}

// All returns the live breakpoints in table order. The returned slice is
// a copy; mutating it does not affect the table.
func (t *BreakpointTable) All() []Breakpoint {
	return append([]Breakpoint(nil), t.entries...)
}

// Insert appends a breakpoint at the end of the table. It fails if the
// table is at capacity, if a live breakpoint already has that address, or
// if a live breakpoint already has that name. The address is masked to
// the architecture width before any check.
func (t *BreakpointTable) Insert(address Word, name string) error {
	address &= WordMask

	if len(t.entries) == MaxInstructions {
		return makeError(ErrBreakpointsFull, "%d entries", len(t.entries))
	}
	if _, found := t.FindByAddress(address); found {
		return makeError(ErrDuplicateBreakpoint, "address %d", address)
	}
	if _, found := t.FindByName(name); found {
		return makeError(ErrDuplicateName, "'%s'", name)
	}

	t.entries = append(t.entries, Breakpoint{Address: address, Name: name})
	return nil
}

// FindByAddress returns the table index of the breakpoint at the given
// address. First match in table order; the uniqueness invariant makes
// "first" unambiguous.
func (t *BreakpointTable) FindByAddress(address Word) (int, bool) {
	address &= WordMask

	for idx := range t.entries {
		if t.entries[idx].Address == address {
			return idx, true
		}
	}
	return -1, false
}

// FindByName returns the table index of the breakpoint with the given name.
func (t *BreakpointTable) FindByName(name string) (int, bool) {
	for idx := range t.entries {
		if t.entries[idx].Name == name {
			return idx, true
		}
	}
	return -1, false
}

// DeleteByAddress removes the breakpoint at the given address, closing
// the gap. Fails with ErrNoSuchBreakpoint if there is no match.
func (t *BreakpointTable) DeleteByAddress(address Word) error {
	idx, found := t.FindByAddress(address)
	if !found {
		return makeError(ErrNoSuchBreakpoint, "address %d", address&WordMask)
	}

	t.deleteAt(idx)
	return nil
}

// DeleteByName removes the breakpoint with the given name, closing the gap.
func (t *BreakpointTable) DeleteByName(name string) error {
	idx, found := t.FindByName(name)
	if !found {
		return makeError(ErrNoSuchBreakpoint, "'%s'", name)
	}

	t.deleteAt(idx)
	return nil
}

func (t *BreakpointTable) deleteAt(idx int) {
	copy(t.entries[idx:], t.entries[idx+1:])
	t.entries = t.entries[:len(t.entries)-1]
}

// Clear removes all breakpoints.
func (t *BreakpointTable) Clear() {
	t.entries = t.entries[:0]
}
