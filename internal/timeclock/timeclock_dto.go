package timeclock

type ClockInRequest struct {
	PersonName string `json:"person_name" binding:"required"`
	Timestamp  string `json:"timestamp" binding:"required"`
}

type ClockOutRequest struct {
	PersonName string `json:"person_name" binding:"required"`
	Timestamp  string `json:"timestamp" binding:"required"`
}

type HistoricalEntryRequest struct {
	PersonName string `json:"person_name" binding:"required"`
	ClockIn    string `json:"clock_in" binding:"required"`
	ClockOut   string `json:"clock_out" binding:"required"`
}

type TimeEntryResponse struct {
	ID         string   `json:"id"`
	PersonName string   `json:"person_name"`
	ClockIn    string   `json:"clock_in"`
	ClockOut   string   `json:"clock_out,omitempty"`
	TotalHours *float64 `json:"total_hours,omitempty"`
	Date       string   `json:"date,omitempty"`
	LongShift  bool     `json:"long_shift,omitempty"`
}
