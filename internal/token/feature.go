package token

import "strings"

// Absent marks a feature column the analyzer did not fill.
const Absent = "*"

// FeatureRecord is the nine-column feature row of one morpheme:
// 品詞,細分類1..3,活用型,活用形,原形,読み,発音.
type FeatureRecord struct {
	POS      string
	Sub1     string
	Sub2     string
	Sub3     string
	InflType string
	InflForm string
	Base     string
	Reading  string
	Pron     string
}

// ParseFeatures builds a record from a raw analyzer feature slice.
// Missing or empty columns come out as Absent; extra columns are
// dropped.
func ParseFeatures(fields []string) FeatureRecord {
	get := func(i int) string {
		if i < len(fields) && fields[i] != "" {
			return fields[i]
		}
		return Absent
	}
	return FeatureRecord{
		POS:      get(0),
		Sub1:     get(1),
		Sub2:     get(2),
		Sub3:     get(3),
		InflType: get(4),
		InflForm: get(5),
		Base:     get(6),
		Reading:  get(7),
		Pron:     get(8),
	}
}

// CSV returns the canonical comma-joined nine-column form.
func (r FeatureRecord) CSV() string {
	return strings.Join([]string{
		r.POS, r.Sub1, r.Sub2, r.Sub3,
		r.InflType, r.InflForm,
		r.Base, r.Reading, r.Pron,
	}, ",")
}

// Key returns the particle category key: POS plus first sub-category.
// Two particles with equal keys count as the same particle kind.
func (r FeatureRecord) Key() string {
	return r.POS + "," + r.Sub1
}

// tag is the POS path without inflection columns, used for marker
// containment checks during classification.
func (r FeatureRecord) tag() string {
	return strings.Join([]string{r.POS, r.Sub1, r.Sub2, r.Sub3}, ",")
}
