package state

// History records submitted input lines and walks them with a cursor the way
// shell readline history does. The cursor sits one past the newest entry
// while the user edits a fresh line.
type History struct {
	entries []string
	cursor  int
	draft   string
	limit   int
}

// NewHistory returns a history keeping at most limit entries; limit <= 0
// keeps everything.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add appends line unless it is empty or repeats the newest entry, and
// resets the cursor.
func (h *History) Add(line string) {
	if line != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != line) {
		h.entries = append(h.entries, line)
		if h.limit > 0 && len(h.entries) > h.limit {
			h.entries = h.entries[len(h.entries)-h.limit:]
		}
	}
	h.cursor = len(h.entries)
	h.draft = ""
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Previous moves to the older entry. current is the text being edited and is
// restored when the cursor walks back past the newest entry.
func (h *History) Previous(current string) (string, bool) {
	if h.cursor <= 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves to the newer entry, ending at the saved draft.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.cursor], true
}
