package bootstrap

import (
	"time"

	"crewsite/internal/domain/content"
)

func str(s string) *string { return &s }

// Records are stamped a second apart so list order matches seed order.
func stamp(now time.Time, i int) time.Time {
	return now.Add(-time.Duration(i) * time.Second)
}

func defaultSiteContent(now time.Time) content.SiteContent {
	return content.SiteContent{
		HeroTitle:            "BREAKDANCE CREW",
		HeroSubtitle:         "Cultures Urbaines – Événements – Expositions",
		HeroPrimaryCTA:       "Découvrir nos événements",
		HeroSecondaryCTA:     "Voir les vidéos",
		CommunityTitle:       "Rejoignez Le Mouvement",
		CommunityDescription: "Ateliers, battles, spectacles et expositions pour tous les âges et tous les niveaux. Rejoignez la communauté !",
		CommunityCTA:         "Contactez-nous",
		AboutTitle:           "À Propos de Nous",
		AboutDescription:     "Fondé avec la passion des cultures urbaines, le crew rassemble des artistes de tous horizons unis par l'amour du mouvement et de l'expression artistique.",
		ContactEmail:         "contact@example.com",
		ContactPhone:         "",
		ContactAddress:       "Ain, France",
		FooterTagline:        "Cultures Urbaines – Événements – Expositions",
		Features: content.FeatureList{
			{
				Title:       "Danse Urbaine & Breakdance",
				Description: "Hip-hop, breakdance, freestyle. Plus de 120 ateliers organisés pour les jeunes de 7 à 18 ans",
				Icon:        "users",
			},
			{
				Title:       "Événements & Spectacles",
				Description: "Plus de 30 représentations artistiques par an. Battles, expositions et créations originales",
				Icon:        "calendar",
			},
			{
				Title:       "Cultures Urbaines",
				Description: "Slam, rap, graffiti, beatmaking, DJing et freestyle football. Toutes les disciplines urbaines réunies",
				Icon:        "image",
			},
		},
		UpdatedAt: now,
	}
}

func defaultEvents(now time.Time) []content.Event {
	return []content.Event{
		{
			ID:          "event-1",
			Title:       "Exposition Vibrations Urbaines 2025",
			Date:        "10 Déc 2025 - 20 Jan 2026",
			Location:    "Bourg-en-Bresse, Ain (01)",
			Description: "Une exposition retraçant le processus créatif du projet Vibrations Urbaines et les ateliers proposés aux habitants. Photos, vidéos et installations.",
			ImageURL:    "/images/events/vibrations-urbaines.jpeg",
			Featured:    true,
			CreatedAt:   stamp(now, 0),
		},
		{
			ID:          "event-2",
			Title:       "Battle des Élèves",
			Date:        "12 Déc 2025",
			Location:    "Salle de l'Alagnier, Bourg-en-Bresse",
			Description: "Breaking 3vs3 Junior & All Style 1vs1. Un événement gratuit pour les jeunes talents. Horaires: 18h30 - 20h30",
			ImageURL:    "/images/events/battle-eleves.jpeg",
			Featured:    true,
			CreatedAt:   stamp(now, 1),
		},
		{
			ID:          "event-3",
			Title:       "Ateliers Cultures Urbaines",
			Date:        "En continu - 2025/2026",
			Location:    "Département de l'Ain (01)",
			Description: "Ateliers hebdomadaires de danse urbaine, breakdance, slam, graffiti et beatmaking pour jeunes de 7 à 18 ans.",
			ImageURL:    "/images/events/ateliers.jpeg",
			Featured:    false,
			CreatedAt:   stamp(now, 2),
		},
	}
}

func defaultTeam(now time.Time) []content.TeamMember {
	return []content.TeamMember{
		{
			ID:        "team-1",
			Name:      "B-Boy Master",
			Role:      "Danseur Principal / Instructeur",
			Bio:       str("Passionné de breakdance depuis plus de 10 ans"),
			ImageURL:  "/images/team/master.jpeg",
			CreatedAt: stamp(now, 0),
		},
		{
			ID:        "team-2",
			Name:      "B-Boy Artist",
			Role:      "Chorégraphe / Performer",
			Bio:       str("Expert en freestyle et battles"),
			ImageURL:  "/images/team/artist.jpeg",
			CreatedAt: stamp(now, 1),
		},
	}
}

func defaultGallery(now time.Time) []content.GalleryItem {
	return []content.GalleryItem{
		{
			ID:          "gallery-1",
			Title:       str("Session Training"),
			Description: str("Entraînement intensif du crew"),
			ImageURL:    "/images/gallery/training.jpeg",
			CreatedAt:   stamp(now, 0),
		},
		{
			ID:          "gallery-2",
			Title:       str("Performance Urbaine"),
			Description: str("Show dans les rues"),
			ImageURL:    "/images/gallery/performance.jpeg",
			CreatedAt:   stamp(now, 1),
		},
		{
			ID:          "gallery-3",
			Title:       str("Vibrations Urbaines"),
			Description: str("Exposition culturelle"),
			ImageURL:    "/images/gallery/vibrations.jpeg",
			CreatedAt:   stamp(now, 2),
		},
	}
}

func defaultVideos(now time.Time) []content.Video {
	return []content.Video{
		{
			ID:           "video-1",
			Title:        "Breakdance Crew - Session d'Accueil",
			Description:  str("Découvrez notre crew en action lors d'une session d'entraînement"),
			VideoURL:     "/videos/session-accueil.mp4",
			ThumbnailURL: str("/images/gallery/training.jpeg"),
			CreatedAt:    stamp(now, 0),
		},
		{
			ID:           "video-2",
			Title:        "Démonstration Battle",
			Description:  str("Nos meilleurs moves en compétition"),
			VideoURL:     "/videos/demonstration-battle.mp4",
			ThumbnailURL: str("/images/gallery/performance.jpeg"),
			CreatedAt:    stamp(now, 1),
		},
	}
}
