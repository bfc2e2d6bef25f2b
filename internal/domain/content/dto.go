package content

import "time"

// Creator builds a stored record from validated create input.
type Creator[T any] interface {
	NewRecord(id string, now time.Time) T
}

// Patch reports the columns a partial update writes. Nil fields are absent.
type Patch interface {
	Changes() map[string]any
}

type setter map[string]any

func (s setter) str(col string, v *string) {
	if v != nil {
		s[col] = *v
	}
}

/* -------- Event -------- */

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Date        string `json:"date" validate:"required,max=100"`
	Location    string `json:"location" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required"`
	Featured    bool   `json:"featured"`
}

func (r CreateEventRequest) NewRecord(id string, now time.Time) Event {
	return Event{
		ID:          id,
		Title:       r.Title,
		Date:        r.Date,
		Location:    r.Location,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Featured:    r.Featured,
		CreatedAt:   now,
	}
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Date        *string `json:"date" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Featured    *bool   `json:"featured"`
}

func (r UpdateEventRequest) Changes() map[string]any {
	s := setter{}
	s.str("title", r.Title)
	s.str("date", r.Date)
	s.str("location", r.Location)
	s.str("description", r.Description)
	s.str("image_url", r.ImageURL)
	if r.Featured != nil {
		s["featured"] = *r.Featured
	}
	return s
}

/* -------- TeamMember -------- */

type CreateTeamMemberRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Role     string  `json:"role" validate:"required,max=200"`
	Bio      *string `json:"bio"`
	ImageURL string  `json:"imageUrl" validate:"required"`
}

func (r CreateTeamMemberRequest) NewRecord(id string, now time.Time) TeamMember {
	return TeamMember{
		ID:        id,
		Name:      r.Name,
		Role:      r.Role,
		Bio:       r.Bio,
		ImageURL:  r.ImageURL,
		CreatedAt: now,
	}
}

type UpdateTeamMemberRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Role     *string `json:"role" validate:"omitempty,max=200"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"imageUrl"`
}

func (r UpdateTeamMemberRequest) Changes() map[string]any {
	s := setter{}
	s.str("name", r.Name)
	s.str("role", r.Role)
	s.str("bio", r.Bio)
	s.str("image_url", r.ImageURL)
	return s
}

/* -------- GalleryItem -------- */

type CreateGalleryItemRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
}

func (r CreateGalleryItemRequest) NewRecord(id string, now time.Time) GalleryItem {
	return GalleryItem{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		CreatedAt:   now,
	}
}

type UpdateGalleryItemRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (r UpdateGalleryItemRequest) Changes() map[string]any {
	s := setter{}
	s.str("title", r.Title)
	s.str("description", r.Description)
	s.str("image_url", r.ImageURL)
	return s
}

/* -------- Video -------- */

type CreateVideoRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Description  *string `json:"description"`
	VideoURL     string  `json:"videoUrl" validate:"required"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

func (r CreateVideoRequest) NewRecord(id string, now time.Time) Video {
	return Video{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		VideoURL:     r.VideoURL,
		ThumbnailURL: r.ThumbnailURL,
		CreatedAt:    now,
	}
}

type UpdateVideoRequest struct {
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"videoUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

func (r UpdateVideoRequest) Changes() map[string]any {
	s := setter{}
	s.str("title", r.Title)
	s.str("description", r.Description)
	s.str("video_url", r.VideoURL)
	s.str("thumbnail_url", r.ThumbnailURL)
	return s
}

/* -------- SiteContent -------- */

type UpdateSiteContentRequest struct {
	HeroTitle            *string    `json:"heroTitle"`
	HeroSubtitle         *string    `json:"heroSubtitle"`
	HeroPrimaryCTA       *string    `json:"heroPrimaryCTA"`
	HeroSecondaryCTA     *string    `json:"heroSecondaryCTA"`
	CommunityTitle       *string    `json:"communityTitle"`
	CommunityDescription *string    `json:"communityDescription"`
	CommunityCTA         *string    `json:"communityCTA"`
	Features             *[]Feature `json:"features" validate:"omitempty,dive"`
	AboutTitle           *string    `json:"aboutTitle"`
	AboutDescription     *string    `json:"aboutDescription"`
	ContactEmail         *string    `json:"contactEmail" validate:"omitempty,max=255"`
	ContactPhone         *string    `json:"contactPhone" validate:"omitempty,max=50"`
	ContactAddress       *string    `json:"contactAddress"`
	FooterTagline        *string    `json:"footerTagline"`
}

func (r UpdateSiteContentRequest) Changes() map[string]any {
	s := setter{}
	s.str("hero_title", r.HeroTitle)
	s.str("hero_subtitle", r.HeroSubtitle)
	s.str("hero_primary_cta", r.HeroPrimaryCTA)
	s.str("hero_secondary_cta", r.HeroSecondaryCTA)
	s.str("community_title", r.CommunityTitle)
	s.str("community_description", r.CommunityDescription)
	s.str("community_cta", r.CommunityCTA)
	s.str("about_title", r.AboutTitle)
	s.str("about_description", r.AboutDescription)
	s.str("contact_email", r.ContactEmail)
	s.str("contact_phone", r.ContactPhone)
	s.str("contact_address", r.ContactAddress)
	s.str("footer_tagline", r.FooterTagline)
	if r.Features != nil {
		s["features"] = FeatureList(*r.Features)
	}
	return s
}
