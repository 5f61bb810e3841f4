package caregiver

// Caregiver is one row of the roster table (the migrated "Cuidadores" sheet
// column). Read-only reference data; the name is the identity, trimmed and
// case-sensitive.
type Caregiver struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;type:text;not null"`
}

func (Caregiver) TableName() string {
	return "cuidadores"
}
