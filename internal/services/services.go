package services

import "meme-localizer/internal/meme_localizer"

// Services holds all application services
type Services struct {
	MemeLocalizerService *meme_localizer.MemeLocalizerService
}

// NewServices creates and initializes all services
func NewServices(localizerService *meme_localizer.MemeLocalizerService) *Services {
	return &Services{
		MemeLocalizerService: localizerService,
	}
}
