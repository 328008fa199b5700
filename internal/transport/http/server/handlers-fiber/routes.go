package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterHandlers mounts the page and the JSON API on r.
func RegisterHandlers(r fiber.Router, h *Handler) {
	r.Get("/", h.GetIndex)

	api := r.Group("/api")
	api.Get("/teams", h.GetTeams)
	api.Post("/teams", h.PostTeam)
	api.Get("/teams/:id", h.GetTeam)
	api.Put("/teams/:id", h.PutTeam)
	api.Delete("/teams/:id", h.DeleteTeam)
	api.Post("/teams/:id/members", h.PostTeamMember)
	api.Get("/teams/:id/members", h.GetTeamMembers)
	api.Put("/members/:id", h.PutMember)
	api.Delete("/members/:id", h.DeleteMember)
	api.Get("/github/status", h.GetGitHubStatus)
	api.Post("/github/sync", h.PostGitHubSync)
}
