package schema

// Registry holds the board settings. Its presence marks an installed forum.
type Registry struct {
	RegistryID int     `gorm:"primaryKey;type:int"`
	Name       string  `gorm:"type:varchar(50)"`
	Value      *string `gorm:"type:text"`
	BoardID    *int    `gorm:"type:int"`
}

// Board is one forum board.
type Board struct {
	BoardID           int     `gorm:"primaryKey;type:int"`
	Name              string  `gorm:"type:varchar(50)"`
	AllowThreaded     bool
	MembershipAppName *string `gorm:"type:varchar(255)"`
	RolesAppName      *string `gorm:"type:varchar(255)"`
}

// Models returns the checked models in check order.
func Models() []any {
	return []any{Registry{}, Board{}}
}
