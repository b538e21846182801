package decl

import (
	"strconv"

	"github.com/matzehuels/anchorage/pkg/anchor"
)

// Signature returns the partition key of d: the axis key of its anchor, its
// relation category and its numeric priority, e.g. "x_eq_1000".
func Signature(d *Declaration) string {
	return anchor.AxisKey(d.Attr) + "_" + d.Constant.Relation.Category() + "_" +
		strconv.FormatFloat(d.Priority.Value(), 'f', -1, 64)
}
