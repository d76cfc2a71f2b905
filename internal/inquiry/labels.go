package inquiry

import (
	"sort"
	"time"
)

// Canonical interest keys and their display labels, in render order.
var interestLabels = []struct{ key, label string }{
	{"studentMobility", "Student Mobility"},
	{"facultyMobility", "Faculty Mobility"},
	{"jointResearch", "Joint Research & Innovation"},
	{"academicPrograms", "Joint Academic Programs"},
	{"specializedCollab", "Specialized Collaborations"},
}

var engagementLabels = map[string]string{
	"masterclass": "Online Masterclass",
	"virtual":     "Virtual Teaching",
	"coil":        "COIL Program",
	"visiting":    "Visiting Faculty",
	"adjunct":     "Adjunct Faculty",
}

// selectedInterests maps the interest flags to display labels. Known keys
// render in canonical order; unknown keys that are set render after them in
// sorted order, passed through raw.
func selectedInterests(flags map[string]bool) []string {
	var out []string
	known := make(map[string]struct{}, len(interestLabels))
	for _, entry := range interestLabels {
		known[entry.key] = struct{}{}
		if flags[entry.key] {
			out = append(out, entry.label)
		}
	}
	var extra []string
	for key, set := range flags {
		if _, ok := known[key]; !ok && set {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// selectedEngagements maps engagement keys to display labels preserving the
// submitted order; unknown keys pass through raw.
func selectedEngagements(keys []string) []string {
	var out []string
	for _, key := range keys {
		if label, ok := engagementLabels[key]; ok {
			out = append(out, label)
		} else {
			out = append(out, key)
		}
	}
	return out
}

var kolkata = loadKolkata()

func loadKolkata() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// IST has no DST, so a fixed offset is an exact fallback.
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// displayTimestamp formats the submission instant the way the office reads
// it: full date plus short time, Indian Standard Time.
func displayTimestamp(t time.Time) string {
	return t.In(kolkata).Format("Monday, 2 January 2006 at 3:04 pm IST")
}
