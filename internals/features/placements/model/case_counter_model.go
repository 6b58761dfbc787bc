package model

// PlacementCaseCounter is the per-year sequence behind case numbers.
// One row per calendar year, incremented under a row lock inside the
// approval transaction so two approvals can never read the same value.
type PlacementCaseCounter struct {
	CaseCounterYear    int `gorm:"column:case_counter_year;primaryKey;autoIncrement:false" json:"case_counter_year"`
	CaseCounterLastSeq int `gorm:"column:case_counter_last_seq;not null;default:0" json:"case_counter_last_seq"`
}

func (PlacementCaseCounter) TableName() string {
	return "placement_case_counters"
}
