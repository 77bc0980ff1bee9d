package request

type WorkingHoursRule struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Timezone  string `json:"timezone" binding:"required"`
}

type ReplaceWorkingHoursRequest struct {
	Rules []WorkingHoursRule `json:"rules" binding:"required"`
}
