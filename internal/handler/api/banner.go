package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "market-admin/internal/handler/dto/request"
	"market-admin/internal/handler/httperr"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

const maxBannerImage = 5 << 20

type BannerHandler struct {
	cmds commands.BannerCommands
}

func NewBannerHandler(cmds commands.BannerCommands) *BannerHandler {
	return &BannerHandler{cmds: cmds}
}

// @Summary Create banner
// @Tags banners
// @Accept multipart/form-data
// @Produce json
// @Param banner_type_id formData int true "Banner type"
// @Param link formData string false "Target link"
// @Param image formData file true "Banner image"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /banners [post]
func (h *BannerHandler) Create(c *gin.Context) {
	upload, ok := bindBannerUpload(c)
	if !ok {
		return
	}
	respondMutation(c, http.StatusCreated, "Failed to create banner")(h.cmds.Create(c.Request.Context(), upload))
}

// @Summary Update banner
// @Tags banners
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Banner ID"
// @Param banner_type_id formData int true "Banner type"
// @Param link formData string false "Target link"
// @Param image formData file false "Replacement image"
// @Success 200 {object} resdto.MessageResponse
// @Router /banners/{id} [put]
func (h *BannerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	upload, ok := bindBannerUpload(c)
	if !ok {
		return
	}
	respondMutation(c, http.StatusOK, "Failed to update banner")(h.cmds.Update(c.Request.Context(), id, upload))
}

// @Summary Delete banner
// @Tags banners
// @Produce json
// @Param id path int true "Banner ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /banners/{id} [delete]
func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondMutation(c, http.StatusOK, "Failed to delete banner")(h.cmds.Delete(c.Request.Context(), id))
}

// @Summary Create banner type
// @Tags banners
// @Accept json
// @Produce json
// @Param request body reqdto.BannerTypeRequest true "Banner type"
// @Success 201 {object} resdto.MessageResponse
// @Router /banner-types [post]
func (h *BannerHandler) CreateType(c *gin.Context) {
	var req reqdto.BannerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	respondMutation(c, http.StatusCreated, "Failed to create banner type")(h.cmds.CreateType(c.Request.Context(), req.Name))
}

// @Summary Delete banner type
// @Tags banners
// @Produce json
// @Param id path int true "Banner type ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /banner-types/{id} [delete]
func (h *BannerHandler) DeleteType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondMutation(c, http.StatusOK, "Failed to delete banner type")(h.cmds.DeleteType(c.Request.Context(), id))
}

// bindBannerUpload reads the form fields and the optional "image" file.
func bindBannerUpload(c *gin.Context) (readmodel.BannerUpload, bool) {
	var form reqdto.BannerForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid form", nil)
		return readmodel.BannerUpload{}, false
	}
	upload := readmodel.BannerUpload{BannerTypeID: form.BannerTypeID, Link: form.Link}

	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return upload, true
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image", nil)
		return readmodel.BannerUpload{}, false
	}
	if fh.Size > maxBannerImage {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, nil, "Image too large", nil)
		return readmodel.BannerUpload{}, false
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image", nil)
		return readmodel.BannerUpload{}, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image", nil)
		return readmodel.BannerUpload{}, false
	}
	upload.FileName = fh.Filename
	upload.Image = data
	return upload, true
}
