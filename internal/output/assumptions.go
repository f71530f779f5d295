package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when a report carries none of its own.
var DefaultAssumptions = []string{
	"Fixed loan rate, compounded monthly",
	"Extra payments are applied at the end of every loan year",
	"Investment returns compound monthly; savings are invested after each month's growth",
	"No taxes on investment gains or property sales",
}
