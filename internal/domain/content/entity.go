package content

import (
	"database/sql/driver"
	"fmt"
	"time"

	"crewsite/internal/pkg/utils"
)

// SiteContentID is the fixed primary key of the editable site text.
const SiteContentID = "site_content_singleton"

type Event struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

func (Event) TableName() string { return "events" }

type TeamMember struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `json:"role"`
	Bio       *string   `gorm:"type:text" json:"bio"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (TeamMember) TableName() string { return "team_members" }

type GalleryItem struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Title       *string   `json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url;not null" json:"imageUrl"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

func (GalleryItem) TableName() string { return "gallery_items" }

type Video struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  *string   `gorm:"type:text" json:"description"`
	VideoURL     string    `gorm:"column:video_url;not null" json:"videoUrl"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url" json:"thumbnailUrl"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}

func (Video) TableName() string { return "videos" }

type Feature struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FeatureList is stored as a JSON text column.
type FeatureList []Feature

func (FeatureList) GormDataType() string { return "text" }

func (f FeatureList) Value() (driver.Value, error) {
	return utils.ListToString([]Feature(f)), nil
}

func (f *FeatureList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = FeatureList{}
	case string:
		*f = utils.StringToList[Feature](v)
	case []byte:
		*f = utils.StringToList[Feature](string(v))
	default:
		return fmt.Errorf("scan features: unsupported type %T", src)
	}
	return nil
}

type SiteContent struct {
	ID                   string      `gorm:"primaryKey;size:64" json:"id"`
	HeroTitle            string      `json:"heroTitle"`
	HeroSubtitle         string      `json:"heroSubtitle"`
	HeroPrimaryCTA       string      `gorm:"column:hero_primary_cta" json:"heroPrimaryCTA"`
	HeroSecondaryCTA     string      `gorm:"column:hero_secondary_cta" json:"heroSecondaryCTA"`
	CommunityTitle       string      `json:"communityTitle"`
	CommunityDescription string      `gorm:"type:text" json:"communityDescription"`
	CommunityCTA         string      `gorm:"column:community_cta" json:"communityCTA"`
	AboutTitle           string      `json:"aboutTitle"`
	AboutDescription     string      `gorm:"type:text" json:"aboutDescription"`
	ContactEmail         string      `json:"contactEmail"`
	ContactPhone         string      `json:"contactPhone"`
	ContactAddress       string      `json:"contactAddress"`
	FooterTagline        string      `json:"footerTagline"`
	Features             FeatureList `gorm:"column:features" json:"features"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

func (SiteContent) TableName() string { return "site_content" }

// Models lists the tables owned by this package.
func Models() []any {
	return []any{&Event{}, &TeamMember{}, &GalleryItem{}, &Video{}, &SiteContent{}}
}
