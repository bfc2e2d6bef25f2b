package content

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crewsite/internal/realtime"
)

type (
	EventService   = Service[Event, CreateEventRequest, UpdateEventRequest]
	TeamService    = Service[TeamMember, CreateTeamMemberRequest, UpdateTeamMemberRequest]
	GalleryService = Service[GalleryItem, CreateGalleryItemRequest, UpdateGalleryItemRequest]
	VideoService   = Service[Video, CreateVideoRequest, UpdateVideoRequest]
)

// Module bundles the services of every content resource.
type Module struct {
	Events  *EventService
	Team    *TeamService
	Gallery *GalleryService
	Videos  *VideoService
	Site    *SiteService
}

func NewModule(db *gorm.DB, notifier Notifier, listLimit int) *Module {
	return &Module{
		Events:  NewService[Event, CreateEventRequest, UpdateEventRequest](db, notifier, realtime.TypeEvents, listLimit),
		Team:    NewService[TeamMember, CreateTeamMemberRequest, UpdateTeamMemberRequest](db, notifier, realtime.TypeTeam, listLimit),
		Gallery: NewService[GalleryItem, CreateGalleryItemRequest, UpdateGalleryItemRequest](db, notifier, realtime.TypeGallery, listLimit),
		Videos:  NewService[Video, CreateVideoRequest, UpdateVideoRequest](db, notifier, realtime.TypeVideos, listLimit),
		Site:    NewSiteService(db, notifier),
	}
}

func (m *Module) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	NewHandler(m.Events, Messages{
		NotFound: "Event not found",
		Deleted:  "Événement supprimé avec succès",
	}).RegisterRoutes(api, "/events", auth)

	NewHandler(m.Team, Messages{
		NotFound: "Team member not found",
		Deleted:  "Membre supprimé avec succès",
	}).RegisterRoutes(api, "/team", auth)

	NewHandler(m.Gallery, Messages{
		NotFound: "Gallery item not found",
		Deleted:  "Image supprimée avec succès",
	}).RegisterRoutes(api, "/gallery", auth)

	NewHandler(m.Videos, Messages{
		NotFound: "Video not found",
		Deleted:  "Vidéo supprimée avec succès",
	}).RegisterRoutes(api, "/videos", auth)

	NewSiteHandler(m.Site).RegisterRoutes(api, auth)
}
