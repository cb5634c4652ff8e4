package responses

// IdleProcessId marks trace segments where no process was ready.
const IdleProcessId = "IDLE"

// ExecutionSegment is the half-open interval [Start, End) during which ProcessId held the CPU.
type ExecutionSegment struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Level     int    `json:"level"`
}

func (s ExecutionSegment) Duration() int {
	return s.End - s.Start
}

func (s ExecutionSegment) Idle() bool {
	return s.ProcessId == IdleProcessId
}

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	FinalLevel     int    `json:"final_level"`
}
type ScheduleResponse struct {
	Algorithm             string             `json:"algorithm"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	ContextSwitches       int                `json:"context_switches"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Trace                 []ExecutionSegment `json:"trace"`
}
