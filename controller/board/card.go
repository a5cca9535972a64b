package board

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"trelloapp/dto"
	"trelloapp/model"
	"trelloapp/services"
)

func AddCard(c *gin.Context, svc *services.BoardService) {
	var req dto.AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	card := model.Card{
		Title:         req.Title,
		Description:   req.Description,
		AssignedUsers: req.AssignedUsers,
	}

	ctx := context.Background()
	created, err := svc.AddCard(ctx, c.Param("id"), c.Param("listTitle"), card)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func DeleteCard(c *gin.Context, svc *services.BoardService) {
	ctx := context.Background()
	if err := svc.DeleteCard(ctx, c.Param("id"), c.Param("listTitle"), c.Param("cardTitle")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
