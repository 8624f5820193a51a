// Package zipcode holds the fixed whitelist of St. Louis metro area zip
// codes that events may be located in.
package zipcode

// Metro zips on both sides of the river: St. Louis city/county plus the
// Illinois Metro East. Membership is an exact string match, no
// normalization.
var stlMetroZips = map[string]struct{}{}

var stlMetroZipList = []string{
	// St. Louis city
	"63101", "63102", "63103", "63104", "63105", "63106", "63107",
	"63108", "63109", "63110", "63111", "63112", "63113", "63114",
	"63115", "63116", "63117", "63118", "63119", "63120", "63121",
	"63122", "63123", "63124", "63125", "63126", "63127", "63128",
	"63129", "63130", "63131", "63132", "63133", "63134", "63135",
	"63136", "63137", "63138", "63139", "63140", "63141", "63143",
	"63144", "63146", "63147",
	// St. Louis county and St. Charles
	"63011", "63017", "63021", "63025", "63026", "63031", "63033",
	"63034", "63038", "63040", "63042", "63043", "63044", "63049",
	"63074", "63088", "63301", "63303", "63304", "63366", "63367",
	"63368", "63376",
	// Metro East (Illinois)
	"62201", "62203", "62204", "62205", "62206", "62207", "62208",
	"62220", "62221", "62223", "62225", "62226", "62232", "62234",
	"62040", "62002", "62025", "62026", "62034", "62035", "62060",
	"62062", "62095", "62269", "62294",
}

func init() {
	for _, z := range stlMetroZipList {
		stlMetroZips[z] = struct{}{}
	}
}

// IsValid reports whether zip is one of the permitted metro zip codes.
func IsValid(zip string) bool {
	_, ok := stlMetroZips[zip]
	return ok
}

// All returns the permitted zip codes in declaration order.
func All() []string {
	out := make([]string, len(stlMetroZipList))
	copy(out, stlMetroZipList)
	return out
}
