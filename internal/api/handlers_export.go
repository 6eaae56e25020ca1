package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	summary, err := handler.exportService.BuildSummary(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportReport(c *fiber.Ctx) error {
	now := handler.now()
	report, err := handler.exportService.BuildReport(c.Context(), now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/plain; charset=utf-8", buildExportFilename(now))
	return c.SendString(report)
}

// WipeAll deletes every collection. There is no undo.
func (handler *Handler) WipeAll(c *fiber.Ctx) error {
	if err := handler.wipeService.WipeAll(c.Context()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func buildExportFilename(now time.Time) string {
	return fmt.Sprintf("fittrack-export-%s.txt", now.Format("2006-01-02"))
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
