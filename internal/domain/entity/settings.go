package entity

// Settings holds shop-wide billing options
type Settings struct {
	GSTEnabled bool `json:"gstEnabled"`
}

// DefaultSettings is used whenever no valid settings are stored
func DefaultSettings() Settings {
	return Settings{GSTEnabled: true}
}
