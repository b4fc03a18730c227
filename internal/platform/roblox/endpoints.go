package roblox

// Endpoints holds the base URLs of the Roblox API hosts. Overridable so
// tests can point every host at a stub server.
type Endpoints struct {
	Users           string
	Economy         string
	AccountSettings string
	Friends         string
	Groups          string
	Games           string
	Badges          string
	Auth            string
}

// DefaultEndpoints returns the production Roblox API hosts.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Users:           "https://users.roblox.com",
		Economy:         "https://economy.roblox.com",
		AccountSettings: "https://accountsettings.roblox.com",
		Friends:         "https://friends.roblox.com",
		Groups:          "https://groups.roblox.com",
		Games:           "https://games.roblox.com",
		Badges:          "https://badges.roblox.com",
		Auth:            "https://auth.roblox.com",
	}
}
