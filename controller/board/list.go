package board

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"trelloapp/dto"
	"trelloapp/services"
)

func AddList(c *gin.Context, svc *services.BoardService) {
	var req dto.AddListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	list, err := svc.AddList(ctx, c.Param("id"), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// DeleteList returns 204 even when the title was not on the board; deletion
// of an absent list is a no-op, not an error.
func DeleteList(c *gin.Context, svc *services.BoardService) {
	ctx := context.Background()
	if err := svc.DeleteList(ctx, c.Param("id"), c.Param("listTitle")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
