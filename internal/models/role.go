package models

// Role is a catalog of professional roles a user can claim.
type Role struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Role) TableName() string { return "core_roles" }

type UserRole struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_user_role" json:"user_id"`
	RoleID string `gorm:"type:uuid;not null;uniqueIndex:idx_user_role" json:"role_id"`
	Role   *Role  `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (UserRole) TableName() string { return "core_user_roles" }
