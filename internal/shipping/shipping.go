package shipping

// Profile is a saved delivery form tied to a device, so returning
// customers do not retype their details at checkout.
type Profile struct {
	ProfileID int    `json:"profileId"`
	DeviceID  string `json:"deviceId"`
	Label     string `json:"label,omitempty"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
