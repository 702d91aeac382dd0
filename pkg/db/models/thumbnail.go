package models

// Thumbnail is the single display image of a product.
type Thumbnail struct {
	ProductID         int    `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	ThumbnailURL      string `gorm:"column:thumbnail_url;type:varchar(255);not null"`
	ThumbnailPublicID string `gorm:"column:thumbnail_public_id;type:varchar(255);not null"`
}

func (Thumbnail) TableName() string {
	return "thumbnails"
}
