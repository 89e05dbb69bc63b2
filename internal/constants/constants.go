package constants

// ContextKeyUserID is the gin context and session key holding the
// authenticated user's id.
const ContextKeyUserID = "user_id"

// SessionName is the cookie name of the browser session.
const SessionName = "sprintboard_session"
