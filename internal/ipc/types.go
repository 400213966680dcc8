package ipc

// ServiceName is the RPC service label shared by server and client.
const ServiceName = "Chirp"

// StartRequest triggers daemon worker startup.
type StartRequest struct{}

// StartResponse indicates whether the daemon was started.
type StartResponse struct {
	Started bool   `json:"started"`
	Message string `json:"message"`
}

// StopRequest stops the daemon worker after draining the queue.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse reports the daemon lifecycle state and dispatch counters.
type StatusResponse struct {
	State               string   `json:"state"`
	Running             bool     `json:"running"`
	QueueDepth          int      `json:"queue_depth"`
	Dispatched          int64    `json:"dispatched"`
	SetOperations       int64    `json:"set_operations"`
	TaskRuns            int64    `json:"task_runs"`
	UnknownInstructions int64    `json:"unknown_instructions"`
	Tasks               []string `json:"tasks"`
	ParameterCount      int      `json:"parameter_count"`
	LockPath            string   `json:"lock_path"`
	PID                 int      `json:"pid"`
}

// EnqueueRequest submits one raw instruction with its correlation token.
type EnqueueRequest struct {
	CorrelationToken string `json:"correlation_token"`
	Instruction      string `json:"instruction"`
}

// EnqueueResponse indicates whether the instruction was accepted.
type EnqueueResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

// ParamGetRequest fetches a single parameter by name.
type ParamGetRequest struct {
	Name string `json:"name"`
}

// ParamGetResponse returns the parameter value if present.
type ParamGetResponse struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

// ParamListRequest fetches all parameters.
type ParamListRequest struct{}

// ParamListResponse returns a snapshot of the parameter map.
type ParamListResponse struct {
	Parameters map[string]string `json:"parameters"`
}

// TaskListRequest fetches the registered task names.
type TaskListRequest struct{}

// TaskListResponse returns task names in sorted order.
type TaskListResponse struct {
	Tasks []string `json:"tasks"`
}
