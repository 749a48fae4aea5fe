package api

// Response is the envelope for every JSON reply.
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// StatusData reports the controller state.
type StatusData struct {
	Current    string   `json:"current"`
	Paused     bool     `json:"paused"`
	Animations []string `json:"animations"`
	Curves     []string `json:"curves"`
}

// SwitchRequest selects the animation to crossfade to.
type SwitchRequest struct {
	Name string `json:"name" binding:"required"`
}
