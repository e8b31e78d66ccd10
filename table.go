package uniq

// Entry is a distinct input line and the number of times it occurs in the
// whole input.
type Entry struct {
	Line  string
	Count int
}

// Table counts occurrences of lines, remembering the order in which each
// distinct line was first seen. The zero value is not ready to use; call
// NewTable or Tally.
type Table struct {
	index   map[string]int
	entries []Entry
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: map[string]int{}}
}

// Tally builds a table from lines in a single forward pass.
func Tally(lines []string) *Table {
	t := NewTable()
	for _, line := range lines {
		t.Add(line)
	}
	return t
}

// Add records one occurrence of line. Lines are compared byte for byte.
func (t *Table) Add(line string) {
	if i, ok := t.index[line]; ok {
		t.entries[i].Count++
		return
	}
	t.index[line] = len(t.entries)
	t.entries = append(t.entries, Entry{Line: line, Count: 1})
}

// Count returns the number of times line has been added, or zero.
func (t *Table) Count(line string) int {
	i, ok := t.index[line]
	if !ok {
		return 0
	}
	return t.entries[i].Count
}

// Len returns the number of distinct lines in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table's entries in first-seen order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Select returns, in first-seen order, the entries that opts keeps.
func (t *Table) Select(opts Options) []Entry {
	var kept []Entry
	for _, e := range t.entries {
		if opts.Keep(e.Count) {
			kept = append(kept, e)
		}
	}
	return kept
}
