package handlers

import (
	"net/http"
	"strings"

	"keshwala/database/repository/objectstore"
	"keshwala/middleware"
	"keshwala/models"
	"keshwala/services/storage"
	"keshwala/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxUploadSize caps image uploads.
const MaxUploadSize = 10 << 20

// StorageHandler handles image uploads and deletes.
type StorageHandler struct {
	StorageSvc storage.StorageService
	// Files is set when uploads are kept in process and served from /files.
	Files  *objectstore.MemoryStore
	owners *storage.Owners
	logger *zap.Logger
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, files *objectstore.MemoryStore, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Files: files, owners: storage.NewOwners(), logger: logger}
}

// UploadImageHandler stores the multipart "file" under the optional "folder".
// The content type is detected from the file itself and must be an image.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)
	folder := c.PostForm("folder")
	if folder != "" && !storage.AllowedFolder(folder) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid folder", "allowed folders are "+strings.Join(storage.ImageFolders, ", "))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not read file", err.Error())
		return
	}
	defer f.Close()

	body, contentType, err := storage.SniffImage(f)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Only images can be uploaded", contentType)
		return
	}

	res := h.StorageSvc.UploadImage(c.Request.Context(), body, fileHeader.Filename, folder, contentType)
	if up, rerr := res.Unwrap(); rerr == nil {
		h.owners.Record(up.Path, user.UID)
		h.logger.Info("Image uploaded", zap.String("path", up.Path), zap.String("uid", user.UID))
	}
	respond(c, http.StatusCreated, res)
}

// DeleteFileHandler removes the image at ?path=. Only images in the upload
// folders can be deleted, and only by the account that uploaded them.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)
	path := strings.TrimPrefix(c.Query("path"), "/")
	if path == "" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Path is required", "")
		return
	}
	if !storage.InImageFolder(path) || !h.owners.Owns(path, user.UID) {
		h.logger.Warn("Delete refused", zap.String("path", path), zap.String("uid", user.UID))
		utils.JSONError(c, http.StatusForbidden, "You can only delete images you uploaded", path)
		return
	}
	res := h.StorageSvc.DeleteFile(c.Request.Context(), path)
	if rerr := res.Err(); rerr != nil {
		failureJSON(c, rerr)
		return
	}
	h.owners.Forget(path)
	c.Status(http.StatusNoContent)
}

// ServeFileHandler serves objects held by the in-process file store. Anything
// that is not an image is sent as a download.
func (h *StorageHandler) ServeFileHandler(c *gin.Context) {
	if h.Files == nil {
		c.Status(http.StatusNotFound)
		return
	}
	data, contentType, ok := h.Files.Get(strings.TrimPrefix(c.Param("path"), "/"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Header("X-Content-Type-Options", "nosniff")
	if !strings.HasPrefix(contentType, "image/") {
		c.Header("Content-Disposition", "attachment")
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}
