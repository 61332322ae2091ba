package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the role-tiered demonstration endpoints. The
// interesting behavior lives entirely in the middleware guarding them.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) All(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Public content"})
}

func (h *ContentHandler) User(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "User content"})
}

func (h *ContentHandler) Moderator(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Moderator content"})
}

func (h *ContentHandler) Admin(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Admin content"})
}
