package models

// Profile is the singleton record behind the Hero and About sections
type Profile struct {
	Name              string      `json:"name"`
	Roles             []string    `json:"roles"`
	Bio               string      `json:"bio"`
	AvatarURL         string      `json:"avatarUrl"`
	Email             string      `json:"email"`
	ResumeURL         string      `json:"resumeUrl"`
	Phone             string      `json:"phone"`
	Location          string      `json:"location"`
	YearsOfExperience FlexString  `json:"experience"`
	SocialLinks       SocialLinks `json:"socialLinks"`
}

// SocialLinks holds the profile's external accounts. Twitter is optional.
type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter,omitempty"`
}
