package domain

type User struct {
	ID               int32  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PasswordHash     string `json:"-"`
	StoreName        string `json:"store_name,omitempty"`
	StoreAddress     string `json:"store_address,omitempty"`
	StoreContact     string `json:"store_contact,omitempty"`
	StoreCountryCode string `json:"store_country_code,omitempty"`
	ProfilePhoto     string `json:"profile_photo,omitempty"`
	ProfileComplete  bool   `json:"profile_complete"`
	EmailVerified    bool   `json:"email_verified"`
	PhoneVerified    bool   `json:"phone_verified"`
	CreatedOn        string `json:"created_on"`
}
