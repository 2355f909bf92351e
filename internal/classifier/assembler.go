package classifier

import (
	"slices"
	"strings"

	"github.com/linnaea/pathclass/internal/pathways"
)

// Assemble merges processed rows with trusted pass-through rows, orders them
// by (AssignedClass, AssignedSubclass) using a stable, locale-naive string
// comparison, and serializes the table. Records comparing equal on both keys
// keep their relative input order.
func Assemble(
	others []pathways.ClassifiedRecord,
	trusted []pathways.ClassifiedRecord,
) ([]pathways.ClassifiedRecord, string) {
	merged := make([]pathways.ClassifiedRecord, 0, len(others)+len(trusted))
	merged = append(merged, others...)
	merged = append(merged, trusted...)

	slices.SortStableFunc(merged, func(a, b pathways.ClassifiedRecord) int {
		if c := strings.Compare(a.AssignedClass, b.AssignedClass); c != 0 {
			return c
		}
		return strings.Compare(a.AssignedSubclass, b.AssignedSubclass)
	})

	return merged, pathways.SerializeTSV(merged)
}
