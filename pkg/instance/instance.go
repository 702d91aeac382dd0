package instance

import "github.com/ballinwear/assistant-backend/pkg/env"

// GetID returns the hosting platform's instance identifier or "local".
func GetID() string {
	return env.FirstOf("local", "RENDER_INSTANCE_ID", "DYNO", "HOSTNAME")
}
