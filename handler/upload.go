package handler

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mvtechguy/faseyha-portal/config"
	"github.com/mvtechguy/faseyha-portal/pkg/logger"
	"github.com/mvtechguy/faseyha-portal/service"
)

// Upload slot keys as sent by the intake forms
const (
	slotLogo             = "logo"
	slotRegistration     = "registration"
	slotAdditionalPrefix = "additional_"
)

type UploadHandler struct {
	storage service.BlobStorage
	cfg     *config.UploadConfig
}

func NewUploadHandler(storage service.BlobStorage, cfg *config.UploadConfig) *UploadHandler {
	return &UploadHandler{storage: storage, cfg: cfg}
}

// uploadEntry pairs a slot key with the file submitted under it
type uploadEntry struct {
	slot   string
	header *multipart.FileHeader
}

// Upload handles POST /api/upload. Every file is validated before any file
// is written, so a rejected request leaves no orphans behind.
func (h *UploadHandler) Upload(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.cfg.MaxFileSizeBytes()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	entries := collectFiles(c.Request.MultipartForm)

	// Validate everything first: one bad file rejects the whole request
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.header.Filename))
		if !h.cfg.ExtensionAllowed(ext) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Invalid file type for %s. Allowed types: %s",
					entry.header.Filename, h.allowedTypesLabel()),
			})
			return
		}

		if entry.header.Size > h.cfg.MaxFileSizeBytes() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("File %s exceeds maximum size of %dMB",
					entry.header.Filename, h.cfg.MaxFileSizeMB),
			})
			return
		}
	}

	result := gin.H{}
	var additionalDocs []string

	for _, entry := range entries {
		publicPath, err := h.storeFile(c, entry.header)
		if err != nil {
			logger.Error(c.Request.Context(), "failed to store uploaded file",
				"error", err,
				"filename", entry.header.Filename,
				"slot", entry.slot,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload files. Please try again."})
			return
		}

		switch {
		case entry.slot == slotLogo:
			result["logo"] = publicPath
		case entry.slot == slotRegistration:
			result["registrationDocument"] = publicPath
		case strings.HasPrefix(entry.slot, slotAdditionalPrefix):
			additionalDocs = append(additionalDocs, publicPath)
		}

		logger.Info(c.Request.Context(), "file stored",
			"filename", entry.header.Filename,
			"slot", entry.slot,
			"public_path", publicPath,
			"size", entry.header.Size,
		)
	}

	if len(additionalDocs) > 0 {
		// The submit payload carries this slot as a JSON-encoded list
		encoded, err := json.Marshal(additionalDocs)
		if err != nil {
			logger.Error(c.Request.Context(), "failed to encode additional docs", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload files. Please try again."})
			return
		}
		result["additionalDocs"] = string(encoded)
	}

	c.JSON(http.StatusOK, result)
}

// storeFile writes one uploaded file under a fresh collision-resistant name
func (h *UploadHandler) storeFile(c *gin.Context, header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := service.UniqueFileName(header.Filename)
	contentType := header.Header.Get("Content-Type")

	return h.storage.Save(c.Request.Context(), name, src, header.Size, contentType)
}

// allowedTypesLabel renders the extension allow-list for error messages,
// e.g. "JPG, PNG, GIF, PDF, DOC, DOCX"
func (h *UploadHandler) allowedTypesLabel() string {
	seen := make(map[string]bool)
	var labels []string
	for _, ext := range h.cfg.AllowedExtensions {
		label := strings.ToUpper(strings.TrimPrefix(ext, "."))
		// JPG and JPEG collapse to one entry
		if label == "JPEG" && seen["JPG"] {
			continue
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}

// collectFiles gathers the file headers of the known slots. The logo and
// registration slots take a single file each; additional_<n> slots are
// ordered by their numeric suffix, which is the order the form assigned.
func collectFiles(form *multipart.Form) []uploadEntry {
	var entries []uploadEntry
	if form == nil {
		return entries
	}

	if headers := form.File[slotLogo]; len(headers) > 0 {
		entries = append(entries, uploadEntry{slot: slotLogo, header: headers[0]})
	}
	if headers := form.File[slotRegistration]; len(headers) > 0 {
		entries = append(entries, uploadEntry{slot: slotRegistration, header: headers[0]})
	}

	var additionalKeys []string
	for key := range form.File {
		if strings.HasPrefix(key, slotAdditionalPrefix) {
			additionalKeys = append(additionalKeys, key)
		}
	}
	sort.Slice(additionalKeys, func(i, j int) bool {
		ni, erri := strconv.Atoi(strings.TrimPrefix(additionalKeys[i], slotAdditionalPrefix))
		nj, errj := strconv.Atoi(strings.TrimPrefix(additionalKeys[j], slotAdditionalPrefix))
		if erri == nil && errj == nil {
			return ni < nj
		}
		return additionalKeys[i] < additionalKeys[j]
	})

	for _, key := range additionalKeys {
		if headers := form.File[key]; len(headers) > 0 {
			entries = append(entries, uploadEntry{slot: key, header: headers[0]})
		}
	}

	return entries
}
