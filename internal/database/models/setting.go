package models

// Setting is a key/value row for persisted preferences that live
// outside the entity collections, such as the minimum stock threshold.
type Setting struct {
	Key   string `json:"key" gorm:"size:100;primaryKey"`
	Value string `json:"value" gorm:"size:500;not null"`
}

// SettingMinStockThreshold is the key for the low-stock alert cutoff.
const SettingMinStockThreshold = "min_stock_threshold"

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
