package menu

import (
	"log"
	"net/http"
	"strings"

	"arabica_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// 🔎 GET /api/menu/search?q= — recherche plein texte via Elasticsearch
func SearchMenu(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le paramètre 'q' est obligatoire"})
		return
	}

	results, err := services.SearchMenu(query)
	if err != nil {
		log.Printf("❌ Erreur recherche Elasticsearch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}
