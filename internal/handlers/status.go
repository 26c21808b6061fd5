package handlers

// StatusInput is the body of every admin status-transition endpoint.
type StatusInput struct {
	Status string `json:"status" binding:"required"`
}
