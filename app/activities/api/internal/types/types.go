// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ActivityDetail is one activity as rendered on the wire. The activity name is
// the key of the enclosing map, not a field.
type ActivityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ListActivitiesResponse maps activity name to its details.
type ListActivitiesResponse map[string]ActivityDetail

type SignupRequest struct {
	ActivityName string `path:"activityName"`
	Email        string `form:"email"`
}

type SignupResponse struct {
	Message string `json:"message"`
}

type UnregisterRequest struct {
	ActivityName string `path:"activityName"`
	Email        string `form:"email"`
}

type UnregisterResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}
