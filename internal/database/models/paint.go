package models

// Paint is one pot in the collector's inventory. Stock drives the
// low-stock alert list.
type Paint struct {
	BaseModel
	Name         string    `json:"name" gorm:"size:100;not null;index" validate:"required,min=1,max=100"`
	Manufacturer string    `json:"manufacturer" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	PaintType    PaintType `json:"paint_type" gorm:"size:20;not null" validate:"required"`
	ColorScheme  string    `json:"color_scheme" gorm:"size:50"`
	RGBCode      string    `json:"rgb_code,omitempty" gorm:"size:10"`
	Stock        int       `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
}

// TableName returns the table name for Paint
func (Paint) TableName() string {
	return "paints"
}
