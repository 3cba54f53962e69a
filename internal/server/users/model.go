package users

// User is the authoritative account record persisted in profiles.json.
// Registration creates it with HasProfile=false; the first profile save
// promotes it.
type User struct {
	Email        string   `json:"email"`
	PasswordHash string   `json:"passwordHash"`
	HasProfile   bool     `json:"hasProfile"`
	Name         string   `json:"name"`
	Pronouns     string   `json:"pronouns"`
	Bio          string   `json:"bio"`
	CoverURL     string   `json:"coverUrl"`
	AvatarURL    string   `json:"avatarUrl"`
	Favourites   []string `json:"favourites"`
}

// Profile is the external view of a User: everything except the credential.
type Profile struct {
	Email      string   `json:"email"`
	HasProfile bool     `json:"hasProfile"`
	Name       string   `json:"name"`
	Pronouns   string   `json:"pronouns"`
	Bio        string   `json:"bio"`
	CoverURL   string   `json:"coverUrl"`
	AvatarURL  string   `json:"avatarUrl"`
	Favourites []string `json:"favourites"`
}

func (u *User) Profile() *Profile {
	favourites := u.Favourites
	if favourites == nil {
		favourites = []string{}
	}
	return &Profile{
		Email:      u.Email,
		HasProfile: u.HasProfile,
		Name:       u.Name,
		Pronouns:   u.Pronouns,
		Bio:        u.Bio,
		CoverURL:   u.CoverURL,
		AvatarURL:  u.AvatarURL,
		Favourites: favourites,
	}
}
