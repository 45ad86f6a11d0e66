// File: entities/recipe.go
package entities

// Recipe is the storage row for a catalog recipe. Ingredients and Steps hold
// JSON-encoded lists; see recipe.ToEntity for the encoding.
type Recipe struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"column:Name" json:"name"`
	Image       string `gorm:"column:Image" json:"image"`
	Ingredients string `gorm:"column:Ingredients;type:text" json:"ingredients"`
	Steps       string `gorm:"column:Steps;type:text" json:"steps"`
	SourceURL   string `gorm:"column:SourceURL" json:"source_url"`
	IsFavorite  bool   `gorm:"column:IsFavorite" json:"is_favorite"`
	Category    string `gorm:"column:Category;index" json:"category"`

	Timestamp
}

func (Recipe) TableName() string {
	return "recipes"
}
