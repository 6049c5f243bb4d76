package gemini

// Defaults for the Gemini Generative Language API.
const (
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel  = "gemini-1.5-flash"
)

// Roles accepted by the Gemini API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)
