package handlers

import (
	"net/http"
	"strconv"

	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for member operations
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// AddMember handles POST /api/v1/members
func (h *MemberHandler) AddMember(c *gin.Context) {
	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := h.memberService.AddMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateSentiment handles PATCH /api/v1/members/:id/sentiment
func (h *MemberHandler) UpdateSentiment(c *gin.Context) {
	var body struct {
		Sentiment string `json:"sentiment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := service.UpdateSentimentRequest{
		MemberID:  c.Param("id"),
		Sentiment: body.Sentiment,
	}
	member, err := h.memberService.UpdateSentiment(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember handles DELETE /api/v1/members/:id. The member's
// sentiment logs are removed in the same transaction.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member deleted successfully"})
}

// SearchMembers handles GET /api/v1/teams/:id/members with optional
// q, page and page_size query parameters
func (h *MemberHandler) SearchMembers(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	page, err := parsePositiveInt(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	pageSize, err := parsePositiveInt(c.DefaultQuery("page_size", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page size"})
		return
	}

	result, err := h.memberService.SearchMembers(teamID, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parsePositiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
