package handlers

import (
	"log"
	"net/http"
	"time"

	"arabica_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

const galleryPrefix = "gallery"

// 🖼️ POST /api/admin/gallery — upload d'une image vers MinIO (admin)
func UploadGalleryImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'image' est obligatoire"})
		return
	}

	objectName, err := services.UploadGalleryImage(galleryPrefix, file)
	if err != nil {
		log.Printf("❌ Erreur upload MinIO: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload de l'image"})
		return
	}

	log.Printf("📤 Image %s envoyée vers MinIO", objectName)
	c.JSON(http.StatusCreated, gin.H{"message": "Image envoyée", "object": objectName})
}

// 🖼️ GET /api/gallery — liste publique avec URLs signées temporaires
func GetGallery(c *gin.Context) {
	ctx := c.Request.Context()

	objects, err := services.ListGalleryObjects(ctx, galleryPrefix)
	if err != nil {
		log.Printf("❌ Erreur listage MinIO: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération de la galerie"})
		return
	}

	images := []gin.H{}
	for _, objectName := range objects {
		url, err := services.GenerateSignedURL(ctx, objectName, 1*time.Hour)
		if err != nil {
			log.Printf("⚠️ Erreur URL signée pour %s: %v", objectName, err)
			continue
		}
		images = append(images, gin.H{"object": objectName, "url": url})
	}

	c.JSON(http.StatusOK, gin.H{"images": images, "count": len(images)})
}
