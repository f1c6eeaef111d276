package classify

import (
	"sort"
	"strconv"
	"strings"

	"github.com/funvibe/refinedtype/internal/value"
)

// Row is one line of a FrequencyTable.
type Row struct {
	Label Label
	Count int
}

// FrequencyTable lists refined labels with their occurrence counts, sorted
// ascending by label. Labels are unique and every count is at least 1.
type FrequencyTable []Row

// CountByRefinedType groups vs by refined label. For empty input it returns
// ok == false and no table: there is no such thing as a table with zero
// rows, so the flag is the absent marker.
func CountByRefinedType(vs []value.Value) (table FrequencyTable, ok bool) {
	if len(vs) == 0 {
		return nil, false
	}

	counts := make(map[Label]int)
	for _, l := range ClassifyAll(vs) {
		counts[l]++
	}

	table = make(FrequencyTable, 0, len(counts))
	for l, c := range counts {
		table = append(table, Row{Label: l, Count: c})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Label < table[j].Label })
	return table, true
}

// ToValue renders the table as an array of [label, count] pairs.
func (t FrequencyTable) ToValue() *value.Array {
	rows := make([]value.Value, len(t))
	for i, r := range t {
		rows[i] = value.NewArray(value.NewString(string(r.Label)), value.NewNumber(float64(r.Count)))
	}
	return value.NewArray(rows...)
}

// String renders the table as {label=count ...}.
func (t FrequencyTable) String() string {
	parts := make([]string, len(t))
	for i, r := range t {
		parts[i] = string(r.Label) + "=" + strconv.Itoa(r.Count)
	}
	return "{" + strings.Join(parts, " ") + "}"
}
