package handlers_fiber

import (
	"net/http"

	"team-directory/internal/mapper"
	"team-directory/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostTeamMember adds a member to a team.
func (h *Handler) PostTeamMember(c *fiber.Ctx) error {
	teamID, err := paramID(c)
	if err != nil {
		return err
	}
	var body dto.AddMemberRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	m, err := h.uc.AddMember(c.Context(), teamID, body.Name, body.Email, body.Role)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOMember(*m))
}

// GetTeamMembers lists members of a team.
func (h *Handler) GetTeamMembers(c *fiber.Ctx) error {
	teamID, err := paramID(c)
	if err != nil {
		return err
	}

	members, err := h.uc.ListMembers(c.Context(), teamID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMemberList(members))
}

// PutMember replaces member fields.
func (h *Handler) PutMember(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var body dto.UpdateMemberRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	m, err := h.uc.UpdateMember(c.Context(), id, mapper.FromDTOMemberUpdate(body))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMember(*m))
}

// DeleteMember removes a member.
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMember(c.Context(), id); err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.Status{Status: "deleted"})
}
