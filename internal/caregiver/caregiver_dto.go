package caregiver

type CaregiverResponse struct {
	Name        string `json:"name"`
	IsActive    bool   `json:"is_active"`
	LastClockIn string `json:"last_clock_in,omitempty"`
}
