package handlers

import (
	"errors"
	"io"
	"net/http"

	"medcrew/models"
	"medcrew/services/profile"
	"medcrew/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes the document checklist and the profile-info forms.
type ProfileHandler struct {
	Svc profile.ProfileService
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Svc: svc}
}

func accountID(c *gin.Context) string {
	id, _ := c.Get("accountID")
	s, _ := id.(string)
	return s
}

// SetDocumentHandler stages one uploaded file under a document slot.
func (h *ProfileHandler) SetDocumentHandler(c *gin.Context) {
	key := models.DocumentKey(c.Param("key"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read file", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read file", err.Error())
		return
	}

	doc := models.DocumentFile{
		Name:        fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}
	if err := h.Svc.SetDocument(c.Request.Context(), accountID(c), key, doc); err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document staged", "key": key})
}

// GetDocumentSetHandler returns the staged checklist state.
func (h *ProfileHandler) GetDocumentSetHandler(c *gin.Context) {
	set, err := h.Svc.GetDocumentSet(c.Request.Context(), accountID(c))
	if err != nil {
		respondProfileError(c, err)
		return
	}
	group, err := h.Svc.CurrentGroup(c.Request.Context(), accountID(c))
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": set, "group": group.String()})
}

// AdvanceHandler moves the checklist to the next group.
func (h *ProfileHandler) AdvanceHandler(c *gin.Context) {
	group, err := h.Svc.Advance(c.Request.Context(), accountID(c))
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group.String()})
}

// RetreatHandler moves the checklist one group back.
func (h *ProfileHandler) RetreatHandler(c *gin.Context) {
	group, err := h.Svc.Retreat(c.Request.Context(), accountID(c))
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group.String()})
}

// SubmitHandler uploads every staged document and persists the aggregate record.
func (h *ProfileHandler) SubmitHandler(c *gin.Context) {
	if err := h.Svc.Submit(c.Request.Context(), accountID(c)); err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "documents submitted"})
}

// FinishEarlyHandler submits once the required groups are satisfied.
func (h *ProfileHandler) FinishEarlyHandler(c *gin.Context) {
	if err := h.Svc.FinishEarly(c.Request.Context(), accountID(c)); err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "documents submitted"})
}

// GetDocumentRecordHandler returns the most recent submitted document record.
func (h *ProfileHandler) GetDocumentRecordHandler(c *gin.Context) {
	record, err := h.Svc.GetDocumentRecord(c.Request.Context(), accountID(c))
	if err != nil {
		respondProfileError(c, err)
		return
	}
	if record == nil {
		utils.JSONError(c, http.StatusNotFound, "no documents submitted yet", "")
		return
	}
	c.JSON(http.StatusOK, record)
}

// SavePersonalInfoHandler persists the personal info form.
func (h *ProfileHandler) SavePersonalInfoHandler(c *gin.Context) {
	var info models.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	id, err := h.Svc.SavePersonalInfo(c.Request.Context(), accountID(c), info)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// SaveProfessionalInfoHandler persists the professional info form.
func (h *ProfileHandler) SaveProfessionalInfoHandler(c *gin.Context) {
	var info models.ProfessionalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	id, err := h.Svc.SaveProfessionalInfo(c.Request.Context(), accountID(c), info)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// SaveFinancialInfoHandler persists the financial info form.
func (h *ProfileHandler) SaveFinancialInfoHandler(c *gin.Context) {
	var info models.FinancialInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	id, err := h.Svc.SaveFinancialInfo(c.Request.Context(), accountID(c), info)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func respondProfileError(c *gin.Context, err error) {
	var validationErr profile.ValidationError
	var preconditionErr profile.PreconditionError
	var partialErr profile.PartialFailureError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, validationErr.Message, validationErr.Field)
	case errors.As(err, &preconditionErr):
		utils.JSONError(c, http.StatusUnauthorized, preconditionErr.Message, "")
	case errors.Is(err, profile.ErrSubmitInFlight):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.As(err, &partialErr):
		utils.JSONError(c, http.StatusBadGateway, partialErr.Error(), "")
	default:
		utils.GetLogger().Error("profile handler failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "")
	}
}
