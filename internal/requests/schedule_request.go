package requests

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

// Level is one multilevel feedback queue level. Level 0 has the highest priority.
type Level struct {
	TimeQuantum int `json:"time_quantum"`
	Allotment   int `json:"allotment"`
}

type ScheduleRequests struct {
	Algorithm   string  `json:"algorithm"`
	TimeQuantum int     `json:"time_quantum"`
	Levels      []Level `json:"levels"`
	Jobs        []Job   `json:"jobs"`
}
