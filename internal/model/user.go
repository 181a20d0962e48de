package model

// User is an account created (or refreshed) at Whop OAuth-callback time.
// There are no local credentials; Whop owns authentication.
// swagger:model User
type User struct {
	UUIDBase
	WhopUserID string `gorm:"size:100;uniqueIndex;not null" json:"whopUserId"`
	Email      string `gorm:"size:100;index" json:"email"`
	Name       string `gorm:"size:100" json:"name"`
}

func (User) TableName() string {
	return "users"
}
