package handlers

import (
	"little_lemon/internal/middleware"
	"little_lemon/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves one staff group; routes for Manager and Delivery Crew
// each get their own instance.
type StaffHandler struct {
	group        string
	staffService services.StaffService
}

func NewStaffHandler(group string, staffService services.StaffService) *StaffHandler {
	return &StaffHandler{group: group, staffService: staffService}
}

func (h *StaffHandler) ListMembers(c *gin.Context) {
	users, err := h.staffService.ListMembers(middleware.Principal(c), h.group)
	if err != nil {
		respondError(c, err)
		return
	}

	members := make([]gin.H, 0, len(users))
	for _, u := range users {
		members = append(members, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
	}
	c.JSON(http.StatusOK, members)
}

func (h *StaffHandler) AddMember(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.staffService.AddToGroup(middleware.Principal(c), h.group, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username, "email": user.Email})
}

func (h *StaffHandler) RemoveMember(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.staffService.RemoveFromGroupByID(middleware.Principal(c), h.group, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User has been removed from " + h.group})
}
