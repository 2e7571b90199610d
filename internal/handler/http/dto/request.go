package dto

// ReactionTargetURI binds the target id from the route.
type ReactionTargetURI struct {
	TargetID string `uri:"targetID" binding:"required,max=64"`
}

// ToggleReactionRequest is the form body of a reaction toggle.
type ToggleReactionRequest struct {
	Direction string `form:"direction" binding:"required,reactiondirection"`
}

// LoginRequest accepts JSON or form credentials.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required,username"`
	Password string `json:"password" form:"password" binding:"required"`
}

// RegisterRequest creates an account.
type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=32,username"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}
