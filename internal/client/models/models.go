// Package models holds the client-side views of server records.
package models

// Profile is the server's view of an account, minus the credential.
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

// ProfileUpdate mirrors the createProfile request body. nil fields are
// omitted from the request and keep their stored values on the server.
type ProfileUpdate struct {
	Name       *string   `json:"name,omitempty"`
	Pronouns   *string   `json:"pronouns,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	CoverURL   *string   `json:"coverUrl,omitempty"`
	AvatarURL  *string   `json:"avatarUrl,omitempty"`
	Favourites *[]string `json:"favourites,omitempty"`
}

type Trip struct {
	ID        string       `json:"id"`
	Location  string       `json:"location"`
	Image     string       `json:"image"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Entries   []DiaryEntry `json:"entries"`
}

type DiaryEntry struct {
	EntryID string `json:"entryId"`
	Date    string `json:"date"`
	Text    string `json:"text"`
}
