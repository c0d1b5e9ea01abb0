package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadHandler stores truck images under the upload directory.
type UploadHandler struct {
	dir string
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// Upload godoc
// @Summary Upload a truck image
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("No file uploaded"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		logrus.WithError(err).Error("create upload dir")
		return respondError(c, err)
	}

	// Timestamped, sanitized name so uploads never collide or escape
	// the upload directory.
	safe := unsafeFilenameChars.ReplaceAllString(filepath.Base(fileHeader.Filename), "_")
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), safe)

	dst, err := os.Create(filepath.Join(h.dir, filename))
	if err != nil {
		logrus.WithError(err).Error("create upload file")
		return respondError(c, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		logrus.WithError(err).Error("write upload file")
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, OK(map[string]string{
		"url":      "/uploads/" + filename,
		"filename": filename,
	}))
}
