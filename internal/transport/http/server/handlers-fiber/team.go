package handlers_fiber

import (
	"net/http"

	"team-directory/internal/mapper"
	"team-directory/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetTeams lists all teams ordered by name.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamList(teams))
}

// PostTeam creates a team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body dto.CreateTeamRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	team, err := h.uc.CreateTeam(c.Context(), body.Name, body.Description)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOTeam(*team))
}

// GetTeam returns a team with its members.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	team, err := h.uc.Team(c.Context(), id, true)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamWithMembers(*team))
}

// PutTeam replaces team name and description.
func (h *Handler) PutTeam(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var body dto.UpdateTeamRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	team, err := h.uc.UpdateTeam(c.Context(), id, mapper.FromDTOTeamUpdate(body))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamWithMembers(*team))
}

// DeleteTeam removes a team and its members.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTeam(c.Context(), id); err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.Status{Status: "deleted"})
}
