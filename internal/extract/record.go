package extract

// Unknown is the sentinel for fields the dialogue carries no information
// about. Fields are never left empty.
const Unknown = "Unknown"

// Allowed values for the Sex field, besides Unknown.
const (
	SexMale   = "Masculino"
	SexFemale = "Femenino"
)

// FieldCount is the fixed width of the intake schema.
const FieldCount = 11

// Record is the fixed eleven-field medical-intake schema extracted from a
// consultation transcript.
type Record struct {
	Name            string
	Sex             string
	Age             string
	ChiefComplaint  string
	CurrentProblem  string
	PersonalHistory string
	FamilyHistory   string
	Vaccination     string
	Diagnosis       string
	Observations    string
	Treatment       string
}

// Columns returns the schema column names in their fixed order.
func Columns() []string {
	return []string{
		"Name",
		"Sex",
		"Age",
		"ChiefComplaint",
		"CurrentProblem",
		"PersonalHistory",
		"FamilyHistory",
		"Vaccination",
		"Diagnosis",
		"Observations",
		"Treatment",
	}
}

// Values returns the field values in schema order.
func (r *Record) Values() []string {
	return []string{
		r.Name,
		r.Sex,
		r.Age,
		r.ChiefComplaint,
		r.CurrentProblem,
		r.PersonalHistory,
		r.FamilyHistory,
		r.Vaccination,
		r.Diagnosis,
		r.Observations,
		r.Treatment,
	}
}
