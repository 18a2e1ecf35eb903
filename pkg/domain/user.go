package domain

// UserPolicy is the subset of a user's server-side policy read by the client.
type UserPolicy struct {
	IsAdministrator          bool `json:"IsAdministrator"`
	IsDisabled               bool `json:"IsDisabled,omitempty"`
	EnableContentDeletion    bool `json:"EnableContentDeletion,omitempty"`
	EnableContentDownloading bool `json:"EnableContentDownloading,omitempty"`
}

// User is the authenticated media-server user the requests are issued for.
type User struct {
	ID       string      `json:"Id"`
	Name     string      `json:"Name"`
	ServerID string      `json:"ServerId,omitempty"`
	Policy   *UserPolicy `json:"Policy,omitempty"`
}

// IsAdministrator reports whether the user's policy grants administrator rights.
// A nil user or a user without a policy is not an administrator.
func (u *User) IsAdministrator() bool {
	if u == nil || u.Policy == nil {
		return false
	}

	return u.Policy.IsAdministrator
}
