package record

import "strings"

const fallbackTech = "automation"

// SynthesizeBullet derives a one-line achievement summary from editor state:
//
//	Automated {project} using {tech}, saving ~{H} hours/month, eliminating {S} manual steps, helping {U} users
//
// Clauses whose inputs are blank are left out. Without any numeric clause the
// improvement of the first "error" impact row is used instead. The result is
// the project name when nothing else applies, and "" for an empty form.
func SynthesizeBullet(form FormValues, impact []ImpactRow) string {
	var parts []string
	if form.ProjectName != "" {
		parts = append(parts, "Automated "+form.ProjectName+" using "+leadTech(form))
	}

	var metrics []string
	if form.HoursSavedPerMonth != "" {
		metrics = append(metrics, "saving ~"+form.HoursSavedPerMonth+" hours/month")
	}
	if form.ManualStepsEliminated != "" {
		metrics = append(metrics, "eliminating "+form.ManualStepsEliminated+" manual steps")
	}
	if form.UsersImpacted != "" {
		metrics = append(metrics, "helping "+form.UsersImpacted+" users")
	}
	if len(metrics) == 0 {
		if row, ok := firstErrorRow(impact); ok && row.Improvement != "" {
			metrics = append(metrics, row.Improvement)
		}
	}
	if len(metrics) > 0 {
		parts = append(parts, strings.Join(metrics, ", "))
	}

	if bullet := strings.Join(parts, ", "); bullet != "" {
		return bullet
	}
	return form.ProjectName
}

func leadTech(form FormValues) string {
	if langs := SplitList(form.Languages); len(langs) > 0 {
		return langs[0]
	}
	if fws := SplitList(form.Frameworks); len(fws) > 0 {
		return fws[0]
	}
	return fallbackTech
}

func firstErrorRow(rows []ImpactRow) (ImpactRow, bool) {
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Metric), "error") {
			return row, true
		}
	}
	return ImpactRow{}, false
}
