package delivery

import (
	"net/http"

	"b4nkd-backend/internal/category/usecase"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
	}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.ComputeCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Something went wrong while computing user categories.",
		})
		return
	}

	counts := make(map[string]int)
	for _, uc := range categories {
		counts[string(uc.Category)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User categories computed successfully.",
		"data": gin.H{
			"users":  categories,
			"counts": counts,
			"total":  len(categories),
		},
	})
}
