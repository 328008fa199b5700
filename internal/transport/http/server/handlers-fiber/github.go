package handlers_fiber

import (
	"net/http"

	"team-directory/internal/mapper"
	"team-directory/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetGitHubStatus reports whether a default organization is configured.
func (h *Handler) GetGitHubStatus(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSyncStatus(h.uc.SyncStatus()))
}

// PostGitHubSync imports the organization's teams and members.
func (h *Handler) PostGitHubSync(c *fiber.Ctx) error {
	var body dto.SyncRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	summary, err := h.uc.Sync(c.Context(), body.Organization)
	if err != nil {
		h.observeSync("failure")
		h.log.Warnw("sync failed", "organization", body.Organization, "error", err)
		return h.writeError(c, err)
	}
	h.observeSync("success")
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSyncSummary(summary))
}

func (h *Handler) observeSync(outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveSync(outcome)
	}
}
