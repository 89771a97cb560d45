package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focusboard/internal/service"
)

type LectureHandler struct {
	lectureService *service.LectureService
}

type createLectureRequest struct {
	Course string `json:"course"`
	Title  string `json:"title"`
	Date   string `json:"date"`
}

type patchLectureRequest struct {
	Course   *string `json:"course"`
	Title    *string `json:"title"`
	Date     *string `json:"date"`
	Attended *bool   `json:"attended"`
}

func NewLectureHandler(lectureService *service.LectureService) *LectureHandler {
	return &LectureHandler{lectureService: lectureService}
}

func (h *LectureHandler) List(c *gin.Context) {
	lectures, apiErr := h.lectureService.List(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lectures": lectures})
}

func (h *LectureHandler) Create(c *gin.Context) {
	var req createLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	lecture, apiErr := h.lectureService.Create(c.Request.Context(), service.CreateLectureInput{
		Course: req.Course,
		Title:  req.Title,
		Date:   req.Date,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lecture": lecture})
}

func (h *LectureHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req patchLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	lecture, apiErr := h.lectureService.Patch(c.Request.Context(), id, service.PatchLectureInput{
		Course:   req.Course,
		Title:    req.Title,
		Date:     req.Date,
		Attended: req.Attended,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lecture": lecture})
}
