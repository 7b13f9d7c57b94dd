package welcome

// Message is the fixed greeting returned by the root route.
const Message = "Welcome to my api."

// Welcome is the greeting payload.
type Welcome struct {
	Msgs string `json:"msgs" doc:"Welcome message" example:"Welcome to my api."`
}
