package instance

import "os"

// GetID names the running process for log correlation: DYNO on Heroku-style
// hosts, then SHOP_INSTANCE_ID, else "local".
func GetID() string {
	for _, key := range []string{"DYNO", "SHOP_INSTANCE_ID"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "local"
}
