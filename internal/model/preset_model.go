package model

type ServicePreset struct {
	Name  string `gorm:"type:varchar(255);primaryKey"`
	Color string `gorm:"type:varchar(9)"`
	Icon  string `gorm:"type:varchar(100)"`
	URL   string `gorm:"type:text"`
}

func (ServicePreset) TableName() string {
	return "service_presets"
}
