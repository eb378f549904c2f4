package record

// ComputeKPIs totals the impact fields of a view. Absent values count as zero.
// Callers pass the currently filtered view, never the whole store.
func ComputeKPIs(records []Record) KPIs {
	var k KPIs
	for _, r := range records {
		k.TotalHoursSaved += r.Hours()
		k.TotalUsersHelped += r.Users()
		k.TotalBugsFixed += r.Bugs()
		if r.Category == CategoryAutomation {
			k.TotalAutomations++
		}
	}
	return k
}
