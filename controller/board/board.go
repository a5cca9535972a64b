package board

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"trelloapp/apperr"
	"trelloapp/dto"
	"trelloapp/model"
	"trelloapp/services"
)

// BoardController registers the whole /api/boards surface. The board id
// parameter is named :id on every nested route so the router tree stays
// consistent.
func BoardController(router *gin.Engine, svc *services.BoardService) {
	routes := router.Group("/api/boards")
	{
		routes.GET("", func(c *gin.Context) {
			GetAllBoards(c, svc)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetBoardByID(c, svc)
		})
		routes.GET("/user/:userId", func(c *gin.Context) {
			GetBoardsByUser(c, svc)
		})
		routes.POST("", func(c *gin.Context) {
			CreateBoard(c, svc)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateBoard(c, svc)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteBoard(c, svc)
		})

		routes.POST("/:id/lists", func(c *gin.Context) {
			AddList(c, svc)
		})
		routes.DELETE("/:id/lists/:listTitle", func(c *gin.Context) {
			DeleteList(c, svc)
		})
		routes.POST("/:id/lists/:listTitle/cards", func(c *gin.Context) {
			AddCard(c, svc)
		})
		routes.DELETE("/:id/lists/:listTitle/cards/:cardTitle", func(c *gin.Context) {
			DeleteCard(c, svc)
		})
	}
}

func GetAllBoards(c *gin.Context, svc *services.BoardService) {
	ctx := context.Background()
	boards, err := svc.GetAllBoards(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

func GetBoardByID(c *gin.Context, svc *services.BoardService) {
	ctx := context.Background()
	board, err := svc.GetBoardByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func GetBoardsByUser(c *gin.Context, svc *services.BoardService) {
	ctx := context.Background()
	boards, err := svc.GetBoardsByOwner(ctx, c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

func CreateBoard(c *gin.Context, svc *services.BoardService) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	board, err := svc.CreateBoard(ctx, req.Name, req.Owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

func UpdateBoard(c *gin.Context, svc *services.BoardService) {
	var req model.Board
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if c.Param("id") != req.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board id does not match the path"})
		return
	}

	ctx := context.Background()
	board, err := svc.UpdateBoard(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func DeleteBoard(c *gin.Context, svc *services.BoardService) {
	ctx := context.Background()
	if err := svc.DeleteBoard(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError translates the service error kinds into response statuses.
// The service layer itself never sees HTTP.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.BadRequest:
		status = http.StatusBadRequest
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.Conflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
