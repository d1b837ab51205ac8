package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of an application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of the whole application
type HealthResponse struct {
	Status    HealthStatus          `json:"status"`
	FlagStore ComponentHealthStatus `json:"flagStore"`
	Users     ComponentHealthStatus `json:"users"`
	Events    ComponentHealthStatus `json:"events"`
}

// UpStatus builds an UP component status with the given details.
func UpStatus(details map[string]string) ComponentHealthStatus {
	if details == nil {
		details = map[string]string{}
	}
	details["message"] = string(StatusUp)
	return ComponentHealthStatus{Status: StatusUp, Details: details}
}

// DownStatus builds a DOWN component status carrying err.
func DownStatus(err error, details map[string]string) ComponentHealthStatus {
	if details == nil {
		details = map[string]string{}
	}
	details["message"] = err.Error()
	return ComponentHealthStatus{Status: StatusDown, Details: details}
}
